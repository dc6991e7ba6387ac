package viz

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/michaeljayl/graphicsn/internal/demo"
)

const (
	normalColor  = "#ffff00"
	normalLength = 3 // in ball radii
)

type kleinControls struct {
	k *demo.Klein
}

// NewKleinModel returns the live viewer for k.
func NewKleinModel(k *demo.Klein, opts Options) (Model, error) {
	return newModel(k, kleinControls{k: k}, opts)
}

func (kleinControls) rebuilt() bool { return false }

// overlay draws the signed surface normal under the ball, so the flip at
// each seam crossing is visible.
func (c kleinControls) overlay(wf *Wireframe) {
	if !c.k.BallVisible() {
		return
	}
	w := c.k.Walker()
	n := w.Normal()
	if n == (r3.Vec{}) {
		return
	}
	start := w.Place()
	wf.AddEdge(start, r3.Add(start, r3.Scale(normalLength*w.Offset, n)), normalColor)
}

func (c kleinControls) rows(s styles) string {
	cfg := c.k.Config()
	w := c.k.Walker()
	ball := "hidden"
	if c.k.BallVisible() {
		ball = "walking"
	}
	return s.row("Color", cfg.Color) +
		s.row("Opacity", fmt.Sprintf("%.2f", cfg.Opacity)) +
		s.row("Ball", ball) +
		s.row("Speed", fmt.Sprintf("%.3f/s", cfg.Speed)) +
		s.row("u, v", fmt.Sprintf("%.3f, %.3f", w.Pos.U, w.Pos.V)) +
		s.row("Sign", fmt.Sprintf("%+.0f", w.Sign)) +
		s.row("Crossings", fmt.Sprintf("%d", w.Crossings))
}

func (kleinControls) help() string { return "B:Ball [ ]:V O:Opacity S:Speed" }
