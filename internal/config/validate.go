package config

import (
	"github.com/lucasb-eyer/go-colorful"
)

// ModelNames lists the digit layouts in menu order. It mirrors layout.Models
// without importing it.
var ModelNames = []string{
	"keyboard",
	"keyboard lengthened",
	"keyboard lofted",
	"boxes",
	"boxes lofted",
	"squares",
	"squares lofted",
	"disks",
	"disks lofted",
	"spheres",
}

func (c *Config) Validate() error {
	switch c.Demo {
	case "klein", "strings":
	default:
		return invalid("demo", c.Demo, "want klein or strings")
	}
	if err := c.Klein.Validate(); err != nil {
		return err
	}
	if err := c.Strings.Validate(); err != nil {
		return err
	}
	if c.Viewer.FPS < 1 || c.Viewer.FPS > 240 {
		return invalid("viewer.fps", c.Viewer.FPS, "want 1..240")
	}
	return nil
}

func (k Klein) Validate() error {
	if _, err := colorful.Hex(k.Color); err != nil {
		return invalid("color", k.Color, "want #rrggbb")
	}
	if k.Opacity < 0 || k.Opacity > 1 {
		return invalid("opacity", k.Opacity, "want 0..1")
	}
	if k.V < 0 || k.V > MaxV {
		return invalid("v", k.V, "want 0..%g", MaxV)
	}
	if k.USegments < 1 || k.VSegments < 1 {
		return invalid("segments", [2]int{k.USegments, k.VSegments}, "want at least 1")
	}
	if k.Speed < 0 {
		return invalid("speed", k.Speed, "want >= 0")
	}
	return nil
}

func (s Strings) Validate() error {
	if s.N < MinN || s.N > MaxN {
		return invalid("n", s.N, "want %d..%d", MinN, MaxN)
	}
	if s.Base < MinBase || s.Base > MaxBase {
		return invalid("base", s.Base, "want %d..%d", MinBase, MaxBase)
	}
	known := false
	for _, name := range ModelNames {
		if name == s.Model {
			known = true
			break
		}
	}
	if !known {
		return invalid("model", s.Model, "unknown model")
	}
	if _, err := colorful.Hex(s.Color); err != nil {
		return invalid("color", s.Color, "want #rrggbb")
	}
	return nil
}
