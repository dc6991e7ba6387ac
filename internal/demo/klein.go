package demo

import (
	"log/slog"

	"github.com/michaeljayl/graphicsn/internal/config"
	"github.com/michaeljayl/graphicsn/internal/hub"
	"github.com/michaeljayl/graphicsn/internal/scene"
	"github.com/michaeljayl/graphicsn/internal/surface"
)

const (
	kleinShininess = 50
	ballColor      = "#ff0000"
	ballSegments   = 24
	kleinCamera    = 64
)

// Klein shows the bottle with an optional ball walking over it.
//
// The bottle is drawn twice from one tessellation, once per face side, so
// both faces take the surface color.
type Klein struct {
	log *slog.Logger
	cfg config.Klein

	graph       *scene.Graph
	root        scene.NodeID
	front, back scene.NodeID
	ball        scene.NodeID
	frontMat    *scene.Material
	backMat     *scene.Material

	walker *surface.Walker
	hub    *hub.Hub
}

// NewKlein builds the scene for cfg. The ball starts hidden unless
// cfg.ShowBall is set.
func NewKlein(cfg config.Klein, log *slog.Logger) (*Klein, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	k := &Klein{
		log:    orDiscard(log).With("demo", "klein"),
		graph:  scene.New(),
		walker: surface.NewWalker(),
		hub:    hub.New(),
	}

	color, _ := scene.ParseColor(cfg.Color)
	k.frontMat = scene.NewMaterial(color)
	k.frontMat.Shininess = kleinShininess
	k.backMat = scene.NewMaterial(color)
	k.backMat.Shininess = kleinShininess
	k.backMat.Side = scene.BackSide

	g := k.graph
	k.root = g.NewGroup("world")
	bottle := g.NewGroup("klein")
	shape := tessellate(cfg)
	k.front = g.NewMesh("front", shape, k.frontMat)
	k.back = g.NewMesh("back", shape, k.backMat)
	g.Add(bottle, k.front, k.back)

	red, _ := scene.ParseColor(ballColor)
	k.ball = g.NewMesh("ball", scene.Sphere{Radius: k.walker.Offset, Segments: ballSegments}, scene.NewMaterial(red))
	g.Add(k.root, bottle, k.ball)
	k.walker.Track(g, k.ball)

	k.cfg = cfg
	k.apply(cfg, true)
	k.log.Info("scene built", "u_segments", cfg.USegments, "v_segments", cfg.VSegments)
	return k, nil
}

func tessellate(cfg config.Klein) scene.Surface {
	return scene.Surface{Grid: surface.Tessellate(surface.Klein, cfg.USegments, cfg.VSegments)}
}

func (k *Klein) Name() string { return "klein" }

func (k *Klein) Scene() (*scene.Graph, scene.NodeID) { return k.graph, k.root }

func (k *Klein) CameraDistance() float64 { return kleinCamera }

// Config returns the settings currently in effect.
func (k *Klein) Config() config.Klein { return k.cfg }

func (k *Klein) Walker() *surface.Walker { return k.walker }

// BallVisible reports whether the ball is shown and moving.
func (k *Klein) BallVisible() bool {
	return k.graph.Node(k.ball).Visible && k.hub.Registered(k.walker)
}

// Apply switches to cfg. An invalid cfg is returned as an error and the
// current settings stay in effect.
func (k *Klein) Apply(cfg config.Klein) error {
	if err := cfg.Validate(); err != nil {
		k.log.Warn("settings rejected", "err", err)
		return err
	}
	k.apply(cfg, false)
	k.cfg = cfg
	return nil
}

func (k *Klein) apply(cfg config.Klein, initial bool) {
	prev := k.cfg
	color, _ := scene.ParseColor(cfg.Color)
	for _, m := range []*scene.Material{k.frontMat, k.backMat} {
		m.Color = color
		m.Opacity = cfg.Opacity
	}

	if !initial && (cfg.USegments != prev.USegments || cfg.VSegments != prev.VSegments) {
		shape := tessellate(cfg)
		k.graph.Node(k.front).Shape = shape
		k.graph.Node(k.back).Shape = shape
		k.log.Info("surface retessellated", "u_segments", cfg.USegments, "v_segments", cfg.VSegments)
	}
	k.walker.Speed = cfg.Speed

	if initial || cfg.ShowBall != prev.ShowBall || cfg.V != prev.V {
		k.walker.SetV(cfg.V)
		k.graph.Node(k.ball).Visible = cfg.ShowBall
		if cfg.ShowBall {
			k.hub.Register(k.walker)
		} else {
			k.hub.Unregister(k.walker)
		}
	}
}

func (k *Klein) Reload(cfg *config.Config) error { return k.Apply(cfg.Klein) }

// Tick advances every registered animator by dt seconds.
func (k *Klein) Tick(dt float64) {
	before := k.walker.Crossings
	k.hub.Notify(dt)
	if k.walker.Crossings != before {
		k.log.Debug("seam crossed", "crossings", k.walker.Crossings, "sign", k.walker.Sign, "v", k.walker.Pos.V)
	}
}
