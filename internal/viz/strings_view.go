package viz

import (
	"fmt"
	"strings"

	"github.com/michaeljayl/graphicsn/internal/demo"
	"github.com/michaeljayl/graphicsn/internal/scene"
)

type stringsControls struct {
	s    *demo.Strings
	seen *scene.Graph // graph at the last rebuilt call
}

// NewStringsModel returns the live viewer for s.
func NewStringsModel(s *demo.Strings, opts Options) (Model, error) {
	return newModel(s, &stringsControls{s: s}, opts)
}

func (c *stringsControls) rebuilt() bool {
	g, _ := c.s.Scene()
	if g == c.seen {
		return false
	}
	c.seen = g
	return true
}

func (*stringsControls) overlay(*Wireframe) {}

func (c *stringsControls) rows(s styles) string {
	cfg := c.s.Config()
	st := c.s.Stats()
	var digits strings.Builder
	for i := 0; i < cfg.Base; i++ {
		if i > 0 {
			digits.WriteByte(' ')
		}
		if cfg.DigitEnabled(i) {
			fmt.Fprintf(&digits, "%d", i)
		} else {
			digits.WriteByte('.')
		}
	}
	color := "per digit"
	if cfg.OneColor {
		color = cfg.Color
	}
	return s.row("Model", cfg.Model) +
		s.row("Depth n", fmt.Sprintf("%d", cfg.N)) +
		s.row("Base", fmt.Sprintf("%d", cfg.Base)) +
		s.row("Digits", digits.String()) +
		s.row("Color", color) +
		s.row("Copies", fmt.Sprintf("%d", st.DigitsGraphs)) +
		s.row("Meshes", fmt.Sprintf("%d", st.Meshes))
}

func (*stringsControls) help() string { return "N:Depth B:Base M:Model 0-9:Digit C:Color" }
