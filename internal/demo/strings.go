package demo

import (
	"log/slog"
	"slices"

	"github.com/michaeljayl/graphicsn/internal/config"
	"github.com/michaeljayl/graphicsn/internal/layout"
	"github.com/michaeljayl/graphicsn/internal/scene"
	"github.com/michaeljayl/graphicsn/internal/stringsys"
)

const stringsCamera = 8

// Strings shows a string system. Each structural change builds a new tree
// in a fresh graph and swaps it in whole.
type Strings struct {
	log *slog.Logger
	cfg config.Strings

	graph  *scene.Graph
	root   scene.NodeID
	stats  stringsys.Stats
	shared *scene.Material
}

func NewStrings(cfg config.Strings, log *slog.Logger) (*Strings, error) {
	s := &Strings{log: orDiscard(log).With("demo", "strings")}
	color, err := scene.ParseColor(config.DefaultStringsColor)
	if err != nil {
		return nil, err
	}
	s.shared = scene.NewMaterial(color)
	if err := s.rebuild(cfg); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Strings) Name() string { return "strings" }

func (s *Strings) Scene() (*scene.Graph, scene.NodeID) { return s.graph, s.root }

func (s *Strings) CameraDistance() float64 { return stringsCamera }

func (s *Strings) Config() config.Strings { return s.cfg }

// Stats describes the tree currently shown.
func (s *Strings) Stats() stringsys.Stats { return s.stats }

// SharedMaterial is the material every unit uses in one-color mode.
func (s *Strings) SharedMaterial() *scene.Material { return s.shared }

// Apply switches to cfg, rebuilding the tree when its shape changes. On
// error the previous tree and settings stay in place.
func (s *Strings) Apply(cfg config.Strings) error {
	if !structural(s.cfg, cfg) {
		if err := cfg.Validate(); err != nil {
			s.log.Warn("settings rejected", "err", err)
			return err
		}
		s.cfg = cfg
		s.Tick(0)
		return nil
	}
	if err := s.rebuild(cfg); err != nil {
		s.log.Warn("settings rejected", "err", err)
		return err
	}
	return nil
}

// structural reports whether going from a to b needs a new tree. Color
// alone does not: it only reaches the tree through the shared material.
func structural(a, b config.Strings) bool {
	return a.N != b.N || a.Base != b.Base || a.Model != b.Model ||
		a.OneColor != b.OneColor || !slices.Equal(a.Include(), b.Include())
}

func (s *Strings) Reload(cfg *config.Config) error { return s.Apply(cfg.Strings) }

func (s *Strings) rebuild(cfg config.Strings) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	model, err := layout.Parse(cfg.Model)
	if err != nil {
		return err
	}
	var mat *scene.Material
	if cfg.OneColor {
		mat = s.shared
	}

	g := scene.New()
	root, err := stringsys.Build(g, cfg.N, cfg.Base, model, cfg.Include(), mat)
	if err != nil {
		return err
	}
	s.graph, s.root, s.cfg = g, root, cfg
	s.stats = stringsys.Measure(g, root)
	s.Tick(0)
	s.log.Info("string system rebuilt",
		"n", cfg.N, "base", cfg.Base, "model", cfg.Model,
		"digits_graphs", s.stats.DigitsGraphs, "meshes", s.stats.Meshes)
	return nil
}

// Tick keeps the shared material on the configured color.
func (s *Strings) Tick(float64) {
	if !s.cfg.OneColor {
		return
	}
	if c, err := scene.ParseColor(s.cfg.Color); err == nil {
		s.shared.Color = c
	}
}
