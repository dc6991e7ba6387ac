package surface

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/michaeljayl/graphicsn/internal/scene"
)

const (
	DefaultSpeed  = 0.07
	DefaultOffset = 0.5
	DefaultEps    = 0.01
)

// UV is a point or direction in parameter space.
type UV struct {
	U, V float64
}

// Walker moves a scene node over a parametric surface, riding Offset above
// it along the surface normal.
type Walker struct {
	Surf   Func
	Pos    UV
	Dir    UV
	Speed  float64 // parameter units per second
	Offset float64
	Eps    float64
	// Klein enables the u seam stitch. Without it u wraps like a torus.
	Klein bool
	// Sign is +1 or -1 and flips on every u seam crossing.
	Sign      float64
	Crossings int

	graph  *scene.Graph
	target scene.NodeID
	world  r3.Vec
}

// NewWalker returns a walker on the Klein bottle with the default start
// state: u=0, v=0.5, heading along +u.
func NewWalker() *Walker {
	return &Walker{
		Surf:   Klein,
		Pos:    UV{0, 0.5},
		Dir:    UV{1, 0},
		Speed:  DefaultSpeed,
		Offset: DefaultOffset,
		Eps:    DefaultEps,
		Klein:  true,
		Sign:   1,
		target: scene.None,
	}
}

// Track makes Advance write the walker position into node id of g.
func (w *Walker) Track(g *scene.Graph, id scene.NodeID) {
	w.graph, w.target = g, id
}

// SetV moves the walker to parameter v, keeping u.
func (w *Walker) SetV(v float64) {
	w.Pos.V = v
}

// World returns the last computed world position.
func (w *Walker) World() r3.Vec { return w.world }

// Advance steps the walker by dt seconds and moves the tracked node.
func (w *Walker) Advance(dt float64) {
	p := w.Step(dt)
	if w.graph == nil {
		return
	}
	if n := w.graph.Node(w.target); n != nil {
		n.SetPos(p.X, p.Y, p.Z)
	}
}

// Step moves the parameter position by dt*Speed along Dir, applies the wrap
// and stitch rules, and returns the offset world position.
func (w *Walker) Step(dt float64) r3.Vec {
	pos := UV{
		U: w.Pos.U + w.Dir.U*dt*w.Speed,
		V: w.Pos.V + w.Dir.V*dt*w.Speed,
	}
	if pos.V >= 1 {
		pos.V--
	}
	if pos.U >= 1 {
		pos.U--
		if w.Klein {
			pos.V = 0.5 - pos.V
			if pos.V <= 0 {
				pos.V++
			}
			w.Sign = -w.Sign
			w.Crossings++
		}
	}
	w.Pos = pos
	w.world = w.place(pos)
	return w.world
}

// Place recomputes the world position at the current parameters without
// moving.
func (w *Walker) Place() r3.Vec {
	w.world = w.place(w.Pos)
	return w.world
}

func (w *Walker) place(pos UV) r3.Vec {
	p := w.Surf(pos.U, pos.V)
	du := r3.Sub(w.Surf(math.Min(1, pos.U+w.Eps), pos.V), p)
	dv := r3.Sub(w.Surf(pos.U, math.Min(1, pos.V+w.Eps)), p)
	n := r3.Cross(du, dv)
	if r3.Norm(n) == 0 {
		return p
	}
	return r3.Add(p, r3.Scale(w.Sign*w.Offset, r3.Unit(n)))
}

// Normal returns the signed unit normal at the current position.
func (w *Walker) Normal() r3.Vec {
	d := r3.Sub(w.place(w.Pos), w.Surf(w.Pos.U, w.Pos.V))
	if w.Offset == 0 || r3.Norm(d) == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/w.Offset, d)
}
