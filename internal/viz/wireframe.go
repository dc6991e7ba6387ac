package viz

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/michaeljayl/graphicsn/internal/scene"
)

// Edge is a world-space segment. Color is the #rrggbb of the material it
// came from, empty for uncoloured helpers.
type Edge struct {
	Start, End r3.Vec
	Color      string
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0, 256)} }

func (w *Wireframe) AddEdge(s, e r3.Vec, color string) {
	w.Edges = append(w.Edges, Edge{Start: s, End: e, Color: color})
}

func (w *Wireframe) Clear() { w.Edges = w.Edges[:0] }

// WireOptions bounds how much detail curved shapes get.
type WireOptions struct {
	// Segments caps cylinder and sphere rings.
	Segments int
	// GridLines caps the u and v lines drawn for a surface.
	GridLines int
}

func DefaultWireOptions() WireOptions {
	return WireOptions{Segments: 12, GridLines: 32}
}

// FromScene appends the outline of every visible mesh under root.
func (w *Wireframe) FromScene(g *scene.Graph, root scene.NodeID, opts WireOptions) {
	g.Walk(root, func(_ scene.NodeID, n *scene.Node, world scene.Affine) bool {
		if !n.IsMesh() {
			return true
		}
		color := ""
		if n.Material != nil {
			color = n.Material.Hex()
		}
		switch s := n.Shape.(type) {
		case scene.Box:
			w.box(world, s, color)
		case scene.Cylinder:
			w.cylinder(world, s, segments(s.Segments, opts.Segments), color)
		case scene.Sphere:
			w.sphere(world, s, segments(s.Segments, opts.Segments), color)
		case scene.Surface:
			w.surface(world, s, opts.GridLines, color)
		}
		return true
	})
}

func segments(shape, limit int) int {
	n := shape
	if limit > 0 && (n == 0 || n > limit) {
		n = limit
	}
	return max(n, 3)
}

var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func (w *Wireframe) box(world scene.Affine, b scene.Box, color string) {
	var v [8]r3.Vec
	for i := range v {
		p := r3.Vec{X: -b.W / 2, Y: -b.H / 2, Z: -b.D / 2}
		if i&1 != 0 {
			p.X = b.W / 2
		}
		if i&2 != 0 {
			p.Y = b.H / 2
		}
		if i&4 != 0 {
			p.Z = b.D / 2
		}
		v[i] = world.Apply(p)
	}
	for _, e := range boxEdges {
		w.AddEdge(v[e[0]], v[e[1]], color)
	}
}

// ring returns n points of a circle of radius r in the plane spanned by a
// and b, centred on c.
func ring(c, a, b r3.Vec, r float64, n int) []r3.Vec {
	pts := make([]r3.Vec, n)
	for i := range pts {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = r3.Add(c, r3.Add(r3.Scale(r*math.Cos(t), a), r3.Scale(r*math.Sin(t), b)))
	}
	return pts
}

func (w *Wireframe) loop(world scene.Affine, pts []r3.Vec, color string) {
	for i := range pts {
		w.AddEdge(world.Apply(pts[i]), world.Apply(pts[(i+1)%len(pts)]), color)
	}
}

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
	axisZ = r3.Vec{Z: 1}
)

func (w *Wireframe) cylinder(world scene.Affine, c scene.Cylinder, n int, color string) {
	top := ring(r3.Vec{Y: c.Height / 2}, axisX, axisZ, c.Radius, n)
	bot := ring(r3.Vec{Y: -c.Height / 2}, axisX, axisZ, c.Radius, n)
	w.loop(world, top, color)
	w.loop(world, bot, color)
	for i := 0; i < n; i += max(1, n/4) {
		w.AddEdge(world.Apply(top[i]), world.Apply(bot[i]), color)
	}
}

func (w *Wireframe) sphere(world scene.Affine, s scene.Sphere, n int, color string) {
	w.loop(world, ring(r3.Vec{}, axisX, axisZ, s.Radius, n), color)
	w.loop(world, ring(r3.Vec{}, axisX, axisY, s.Radius, n), color)
	w.loop(world, ring(r3.Vec{}, axisY, axisZ, s.Radius, n), color)
}

// surface draws every stride-th u and v line of the grid.
func (w *Wireframe) surface(world scene.Affine, s scene.Surface, lines int, color string) {
	rows := len(s.Grid)
	if rows == 0 {
		return
	}
	cols := len(s.Grid[0])
	ru, rv := stride(rows, lines), stride(cols, lines)
	for i := 0; i < rows; i += ru {
		for j := 0; j+rv < cols; j += rv {
			w.AddEdge(world.Apply(s.Grid[i][j]), world.Apply(s.Grid[i][j+rv]), color)
		}
	}
	for j := 0; j < cols; j += rv {
		for i := 0; i+ru < rows; i += ru {
			w.AddEdge(world.Apply(s.Grid[i][j]), world.Apply(s.Grid[i+ru][j]), color)
		}
	}
}

func stride(n, lines int) int {
	if lines <= 0 || n <= lines {
		return 1
	}
	return (n + lines - 1) / lines
}

// ProjectedEdge is an edge in screen space.
type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Depth          float64
	Color          string
}

// Project maps the wireframe to a sw x sh screen, farthest edges first.
// Edges with neither end on screen are dropped.
func Project(w *Wireframe, cam *Camera, sw, sh int) []ProjectedEdge {
	out := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, ok1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, ok2 := cam.Project(e.End, sw, sh)
		if ok1 || ok2 {
			out = append(out, ProjectedEdge{X1: x1, Y1: y1, X2: x2, Y2: y2, Depth: (d1 + d2) / 2, Color: e.Color})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Depth < out[j].Depth })
	return out
}

// Render3D draws the wireframe onto the canvas.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.Dots()
	for _, e := range Project(w, cam, sw, sh) {
		c.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
	}
}

// CreateAxesWireframe returns the three world axes of length l.
func CreateAxesWireframe(l float64) *Wireframe {
	w := NewWireframe()
	w.AddEdge(r3.Vec{}, r3.Scale(l, axisX), "#ff0000")
	w.AddEdge(r3.Vec{}, r3.Scale(l, axisY), "#00ff00")
	w.AddEdge(r3.Vec{}, r3.Scale(l, axisZ), "#0000ff")
	return w
}
