package viz

import "github.com/michaeljayl/graphicsn/internal/demo"

// FitCamera returns the default camera framing d's scene.
func FitCamera(d demo.Demo) *Camera {
	cam := NewCamera()
	g, root := d.Scene()
	cam.Fit(g.Bounds(root))
	return cam
}

// Snapshot draws one frame of d onto a w x h cell canvas and returns it
// with the projected edges, for exporters that keep colour.
func Snapshot(d demo.Demo, cam *Camera, w, h int, opts WireOptions) (*Canvas, []ProjectedEdge) {
	c := NewCanvas(w, h)
	wire := NewWireframe()
	g, root := d.Scene()
	wire.FromScene(g, root, opts)
	sw, sh := c.Dots()
	edges := Project(wire, cam, sw, sh)
	for _, e := range edges {
		c.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
	}
	return c, edges
}
