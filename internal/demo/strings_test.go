package demo

import (
	"errors"
	"testing"

	"github.com/michaeljayl/graphicsn/internal/config"
	"github.com/michaeljayl/graphicsn/internal/scene"
)

func TestStrings_New(t *testing.T) {
	cfg := config.DefaultStrings()
	cfg.N, cfg.Base = 2, 3
	s, err := NewStrings(cfg, nil)
	if err != nil {
		t.Fatalf("NewStrings: %v", err)
	}
	if got := s.Stats().DigitsGraphs; got != 4 {
		t.Errorf("digits graphs = %d, want 4", got)
	}
	g, root := s.Scene()
	if g.CountMeshes(root) != 12 {
		t.Errorf("meshes = %d, want 12", g.CountMeshes(root))
	}
}

func TestStrings_ApplyRebuilds(t *testing.T) {
	s, _ := NewStrings(config.DefaultStrings(), nil)
	g0, _ := s.Scene()

	cfg := s.Config()
	cfg.N = 3
	cfg.Model = "spheres"
	cfg = cfg.WithDigit(1, false)
	if err := s.Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	g1, root := s.Scene()
	if g1 == g0 {
		t.Error("tree rebuilt in place")
	}
	if got := s.Stats().DigitsGraphs; got != 3 {
		t.Errorf("digits graphs = %d, want 3", got)
	}
	g1.Walk(root, func(_ scene.NodeID, n *scene.Node, _ scene.Affine) bool {
		if n.Digit == 1 {
			t.Errorf("disabled digit in %q", n.Name)
		}
		return true
	})
}

func TestStrings_RejectKeepsTree(t *testing.T) {
	s, _ := NewStrings(config.DefaultStrings(), nil)
	g0, r0 := s.Scene()
	before := s.Config()

	tests := []struct {
		name string
		edit func(*config.Strings)
	}{
		{"n too deep", func(c *config.Strings) { c.N = 9 }},
		{"base too small", func(c *config.Strings) { c.Base = 1 }},
		{"unknown model", func(c *config.Strings) { c.Model = "pyramids" }},
		{"bad color", func(c *config.Strings) { c.Color = "nope" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := before
			tt.edit(&cfg)
			err := s.Apply(cfg)
			if !errors.Is(err, config.ErrInvalidParameter) {
				t.Fatalf("Apply = %v, want ErrInvalidParameter", err)
			}
			g, r := s.Scene()
			if g != g0 || r != r0 {
				t.Error("tree replaced after rejected Apply")
			}
			if s.Config().N != before.N || s.Config().Model != before.Model {
				t.Error("config changed after rejected Apply")
			}
		})
	}
}

func TestStrings_OneColor(t *testing.T) {
	cfg := config.DefaultStrings()
	cfg.OneColor = true
	cfg.Color = "#ff8800"
	s, err := NewStrings(cfg, nil)
	if err != nil {
		t.Fatalf("NewStrings: %v", err)
	}
	g, root := s.Scene()
	g.Walk(root, func(_ scene.NodeID, n *scene.Node, _ scene.Affine) bool {
		if n.IsMesh() && n.Material != s.SharedMaterial() {
			t.Errorf("%s does not use the shared material", n.Name)
		}
		return true
	})
	if got := s.SharedMaterial().Hex(); got != "#ff8800" {
		t.Errorf("shared color = %s, want #ff8800", got)
	}

	// a color change alone keeps the tree and recolors it
	cfg.Color = "#0000ff"
	if err := s.Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if g2, _ := s.Scene(); g2 != g {
		t.Error("color change rebuilt the tree")
	}
	if got := s.SharedMaterial().Hex(); got != "#0000ff" {
		t.Errorf("shared color = %s, want #0000ff", got)
	}
}
