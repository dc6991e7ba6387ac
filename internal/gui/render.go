package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/michaeljayl/graphicsn/internal/scene"
)

// renderer draws scene graphs and keeps the triangulation of each surface
// grid until the grid is replaced.
type renderer struct {
	tris map[*[]r3.Vec]*surfaceMesh
}

type surfaceMesh struct {
	front, back [][3]r3.Vec
}

func newRenderer() *renderer {
	return &renderer{tris: make(map[*[]r3.Vec]*surfaceMesh)}
}

// triangles returns the cached triangulation of grid, building the requested
// side on first use. Grids no longer drawn are evicted by prune.
func (r *renderer) triangles(grid [][]r3.Vec, back bool, seen map[*[]r3.Vec]bool) [][3]r3.Vec {
	if len(grid) == 0 {
		return nil
	}
	key := &grid[0]
	seen[key] = true
	m, ok := r.tris[key]
	if !ok {
		m = &surfaceMesh{}
		r.tris[key] = m
	}
	if back {
		if m.back == nil {
			m.back = surfaceTriangles(grid, true)
		}
		return m.back
	}
	if m.front == nil {
		m.front = surfaceTriangles(grid, false)
	}
	return m.front
}

func (r *renderer) prune(seen map[*[]r3.Vec]bool) {
	for key := range r.tris {
		if !seen[key] {
			delete(r.tris, key)
		}
	}
}

// draw renders the graph under root and drops cached surfaces it no longer
// contains.
func (r *renderer) draw(g *scene.Graph, root scene.NodeID) {
	seen := make(map[*[]r3.Vec]bool, len(r.tris))
	r.drawNode(g, root, seen)
	r.prune(seen)
}

// drawNode replays the graph through the rlgl matrix stack: each node
// pushes T*R*S, draws its leaf and recurses.
func (r *renderer) drawNode(g *scene.Graph, id scene.NodeID, seen map[*[]r3.Vec]bool) {
	n := g.Node(id)
	if n == nil || !n.Visible {
		return
	}
	p := n.Pose
	rl.PushMatrix()
	rl.Translatef(float32(p.Pos.X), float32(p.Pos.Y), float32(p.Pos.Z))
	if p.Angle != 0 {
		rl.Rotatef(float32(p.Angle*180/math.Pi), float32(p.Axis.X), float32(p.Axis.Y), float32(p.Axis.Z))
	}
	rl.Scalef(float32(p.Scale.X), float32(p.Scale.Y), float32(p.Scale.Z))

	if n.IsMesh() {
		r.drawShape(n.Shape, n.Material, seen)
	}
	for _, k := range g.Children(id) {
		r.drawNode(g, k, seen)
	}
	rl.PopMatrix()
}

func (r *renderer) drawShape(s scene.Shape, m *scene.Material, seen map[*[]r3.Vec]bool) {
	col := toColor(m)
	origin := rl.NewVector3(0, 0, 0)
	switch s := s.(type) {
	case scene.Box:
		rl.DrawCube(origin, float32(s.W), float32(s.H), float32(s.D), col)
		rl.DrawCubeWires(origin, float32(s.W), float32(s.H), float32(s.D), rl.ColorAlpha(rl.Black, 0.3))
	case scene.Cylinder:
		base := rl.NewVector3(0, float32(-s.Height/2), 0)
		rad := float32(s.Radius)
		rl.DrawCylinder(base, rad, rad, float32(s.Height), int32(max(s.Segments, 3)), col)
	case scene.Sphere:
		seg := int32(max(s.Segments, 3))
		rl.DrawSphereEx(origin, float32(s.Radius), seg, seg, col)
	case scene.Surface:
		back := m != nil && m.Side == scene.BackSide
		for _, t := range r.triangles(s.Grid, back, seen) {
			rl.DrawTriangle3D(vec(t[0]), vec(t[1]), vec(t[2]), col)
		}
	}
}

func vec(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// toColor converts a material to an RGBA colour carrying its opacity.
func toColor(m *scene.Material) rl.Color {
	if m == nil {
		return rl.LightGray
	}
	r, g, b := m.Color.Clamped().RGB255()
	a := uint8(math.Round(math.Max(0, math.Min(1, m.Opacity)) * 255))
	return rl.NewColor(r, g, b, a)
}

// surfaceTriangles splits each grid quad in two. Back faces use the
// opposite winding so culling shows them from the other side.
func surfaceTriangles(grid [][]r3.Vec, back bool) [][3]r3.Vec {
	if len(grid) < 2 {
		return nil
	}
	out := make([][3]r3.Vec, 0, 2*(len(grid)-1)*(len(grid[0])-1))
	for i := 0; i+1 < len(grid); i++ {
		for j := 0; j+1 < len(grid[i]) && j+1 < len(grid[i+1]); j++ {
			a, b, c, d := grid[i][j], grid[i+1][j], grid[i+1][j+1], grid[i][j+1]
			if back {
				out = append(out, [3]r3.Vec{a, c, b}, [3]r3.Vec{a, d, c})
			} else {
				out = append(out, [3]r3.Vec{a, b, c}, [3]r3.Vec{a, c, d})
			}
		}
	}
	return out
}
