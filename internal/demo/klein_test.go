package demo

import (
	"errors"
	"testing"

	"github.com/michaeljayl/graphicsn/internal/config"
	"github.com/michaeljayl/graphicsn/internal/scene"
)

func smallKlein() config.Klein {
	cfg := config.DefaultKlein()
	cfg.USegments, cfg.VSegments = 16, 8
	return cfg
}

func TestKlein_New(t *testing.T) {
	k, err := NewKlein(smallKlein(), nil)
	if err != nil {
		t.Fatalf("NewKlein: %v", err)
	}
	g, root := k.Scene()
	if got := g.CountMeshes(root); got != 2 {
		t.Errorf("visible meshes = %d, want 2 (ball hidden)", got)
	}
	if k.BallVisible() {
		t.Error("ball visible by default")
	}
	if k.frontMat.Side != scene.FrontSide || k.backMat.Side != scene.BackSide {
		t.Error("face sides not split")
	}
	surf := g.Node(k.front).Shape.(scene.Surface)
	if len(surf.Grid) != 17 || len(surf.Grid[0]) != 9 {
		t.Errorf("grid = %dx%d, want 17x9", len(surf.Grid), len(surf.Grid[0]))
	}
}

func TestKlein_BallToggle(t *testing.T) {
	k, _ := NewKlein(smallKlein(), nil)
	start := k.walker.Pos

	k.Tick(1)
	if k.walker.Pos != start {
		t.Error("hidden ball moved")
	}

	cfg := k.Config()
	cfg.ShowBall = true
	if err := k.Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if !k.BallVisible() {
		t.Fatal("ball not shown")
	}
	k.Tick(1)
	if k.walker.Pos == start {
		t.Error("shown ball did not move")
	}
	pos := k.graph.Node(k.ball).Pose.Pos
	if pos != k.walker.World() {
		t.Errorf("ball node at %v, walker at %v", pos, k.walker.World())
	}

	cfg.ShowBall = false
	k.Apply(cfg)
	if k.BallVisible() || k.hub.Len() != 0 {
		t.Error("ball still active after hide")
	}
}

func TestKlein_SetV(t *testing.T) {
	k, _ := NewKlein(smallKlein(), nil)
	cfg := k.Config()
	cfg.ShowBall = true
	k.Apply(cfg)
	k.Tick(2)
	u := k.walker.Pos.U

	cfg.V = 0.2
	if err := k.Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if k.walker.Pos.V != 0.2 || k.walker.Pos.U != u {
		t.Errorf("pos = %+v, want u=%v v=0.2", k.walker.Pos, u)
	}
}

func TestKlein_ColorAndOpacity(t *testing.T) {
	k, _ := NewKlein(smallKlein(), nil)
	cfg := k.Config()
	cfg.Color = "#00ff00"
	cfg.Opacity = 0.4
	if err := k.Apply(cfg); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	for _, m := range []*scene.Material{k.frontMat, k.backMat} {
		if m.Hex() != "#00ff00" || m.Opacity != 0.4 {
			t.Errorf("material = %s/%v, want #00ff00/0.4", m.Hex(), m.Opacity)
		}
	}
}

func TestKlein_RejectKeepsState(t *testing.T) {
	k, _ := NewKlein(smallKlein(), nil)
	before := k.Config()

	bad := before
	bad.Opacity = 2
	bad.V = 0.3
	err := k.Apply(bad)
	if !errors.Is(err, config.ErrInvalidParameter) {
		t.Fatalf("Apply = %v, want ErrInvalidParameter", err)
	}
	if k.Config() != before {
		t.Error("config changed after rejected Apply")
	}
	if k.walker.Pos.V != before.V {
		t.Errorf("v = %v, want %v", k.walker.Pos.V, before.V)
	}
	if k.frontMat.Opacity != before.Opacity {
		t.Errorf("opacity = %v, want %v", k.frontMat.Opacity, before.Opacity)
	}
}

func TestKlein_Retessellate(t *testing.T) {
	k, _ := NewKlein(smallKlein(), nil)
	cfg := k.Config()
	cfg.USegments = 4
	k.Apply(cfg)
	if got := len(k.graph.Node(k.back).Shape.(scene.Surface).Grid); got != 5 {
		t.Errorf("rows = %d, want 5", got)
	}
}

func TestNewKlein_Invalid(t *testing.T) {
	cfg := smallKlein()
	cfg.Color = "blue"
	if _, err := NewKlein(cfg, nil); err == nil {
		t.Error("NewKlein accepted a bad color")
	}
}
