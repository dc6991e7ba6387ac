package viz

import (
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/michaeljayl/graphicsn/internal/scene"
	"github.com/michaeljayl/graphicsn/internal/surface"
)

func TestWireframe_Shapes(t *testing.T) {
	opts := WireOptions{Segments: 8, GridLines: 4}
	tests := []struct {
		name  string
		shape scene.Shape
		want  int
	}{
		{"box", scene.Box{W: 1, H: 1, D: 1}, 12},
		{"cylinder", scene.Cylinder{Radius: 1, Height: 1, Segments: 24}, 8 + 8 + 4},
		{"sphere", scene.Sphere{Radius: 1, Segments: 6}, 18},
		// 5x5 grid at stride 2: rows 0,2,4 with 2 edges each, both ways
		{"surface", scene.Surface{Grid: surface.Tessellate(surface.Klein, 4, 4)}, 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := scene.New()
			id := g.NewMesh(tt.name, tt.shape, scene.HueMaterial(0, 2))
			w := NewWireframe()
			w.FromScene(g, id, opts)
			if len(w.Edges) != tt.want {
				t.Errorf("edges = %d, want %d", len(w.Edges), tt.want)
			}
			if w.Edges[0].Color != "#ff0000" {
				t.Errorf("color = %q, want #ff0000", w.Edges[0].Color)
			}
		})
	}
}

func TestWireframe_SkipsHidden(t *testing.T) {
	g := scene.New()
	root := g.NewGroup("root")
	box := g.NewMesh("box", scene.Box{W: 1, H: 1, D: 1}, nil)
	g.Add(root, box)
	g.Node(box).Visible = false

	w := NewWireframe()
	w.FromScene(g, root, DefaultWireOptions())
	if len(w.Edges) != 0 {
		t.Errorf("edges = %d, want 0", len(w.Edges))
	}
}

func TestWireframe_UsesWorldTransform(t *testing.T) {
	g := scene.New()
	root := g.NewGroup("root")
	g.Node(root).SetPos(10, 0, 0)
	box := g.NewMesh("box", scene.Box{W: 2, H: 2, D: 2}, nil)
	g.Add(root, box)

	w := NewWireframe()
	w.FromScene(g, root, DefaultWireOptions())
	for _, e := range w.Edges {
		if e.Start.X < 9-1e-9 || e.Start.X > 11+1e-9 {
			t.Fatalf("edge start %v outside translated box", e.Start)
		}
	}
}

func TestCamera_ProjectCentre(t *testing.T) {
	cam := NewCamera()
	cam.RotX, cam.RotY = 0, 0
	x, y, _, ok := cam.Project(r3.Vec{}, 100, 80)
	if !ok || x != 50 || y != 40 {
		t.Errorf("Project(origin) = (%d, %d, %v), want (50, 40, true)", x, y, ok)
	}
	// +y is up on screen
	_, yUp, _, _ := cam.Project(r3.Vec{Y: 0.5}, 100, 80)
	if yUp >= 40 {
		t.Errorf("Project(+y).y = %d, want < 40", yUp)
	}
}

func TestCamera_FitFrames(t *testing.T) {
	g := scene.New()
	box := g.NewMesh("box", scene.Box{W: 40, H: 40, D: 40}, nil)
	g.Node(box).SetPos(100, 0, 0)

	cam := NewCamera()
	cam.Fit(g.Bounds(box))
	if cam.Target.X != 100 {
		t.Errorf("target = %v, want x=100", cam.Target)
	}
	c := NewCanvas(40, 20)
	w := NewWireframe()
	w.FromScene(g, box, DefaultWireOptions())
	sw, sh := c.Dots()
	if got := len(Project(w, cam, sw, sh)); got != 12 {
		t.Errorf("projected edges = %d, want 12", got)
	}
	Render3D(c, w, cam)
	if c.Count() == 0 {
		t.Error("fitted box drew nothing")
	}
}

func TestProject_FarthestFirst(t *testing.T) {
	w := NewWireframe()
	w.AddEdge(r3.Vec{Z: 0.5}, r3.Vec{Z: 0.5}, "near")
	w.AddEdge(r3.Vec{Z: -0.5}, r3.Vec{Z: -0.5}, "far")
	cam := NewCamera()
	cam.RotX, cam.RotY = 0, 0
	got := Project(w, cam, 50, 50)
	if len(got) != 2 || got[0].Color != "far" {
		t.Errorf("order = %+v, want far first", got)
	}
}
