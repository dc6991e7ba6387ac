package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// AABB is an axis-aligned bounding box in world space.
type AABB struct {
	Min, Max r3.Vec
}

// EmptyAABB returns a box that contains nothing; extending it by any point
// yields that point.
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: r3.Vec{X: inf, Y: inf, Z: inf},
		Max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
}

func (b AABB) Empty() bool { return b.Min.X > b.Max.X }

func (b AABB) Extend(p r3.Vec) AABB {
	b.Min = r3.Vec{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
	b.Max = r3.Vec{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
	return b
}

func (b AABB) Union(o AABB) AABB {
	if o.Empty() {
		return b
	}
	return b.Extend(o.Min).Extend(o.Max)
}

func (b AABB) Center() r3.Vec { return r3.Scale(0.5, r3.Add(b.Min, b.Max)) }

func (b AABB) Size() r3.Vec { return r3.Sub(b.Max, b.Min) }

// Contains reports whether o lies inside b, allowing tol of slack.
func (b AABB) Contains(o AABB, tol float64) bool {
	return o.Min.X >= b.Min.X-tol && o.Min.Y >= b.Min.Y-tol && o.Min.Z >= b.Min.Z-tol &&
		o.Max.X <= b.Max.X+tol && o.Max.Y <= b.Max.Y+tol && o.Max.Z <= b.Max.Z+tol
}

// LocalBounds returns the extent of s around its own origin.
func LocalBounds(s Shape) AABB {
	var h r3.Vec
	switch s := s.(type) {
	case Box:
		h = r3.Vec{X: s.W / 2, Y: s.H / 2, Z: s.D / 2}
	case Cylinder:
		h = r3.Vec{X: s.Radius, Y: s.Height / 2, Z: s.Radius}
	case Sphere:
		h = r3.Vec{X: s.Radius, Y: s.Radius, Z: s.Radius}
	case Surface:
		b := EmptyAABB()
		for _, row := range s.Grid {
			for _, p := range row {
				b = b.Extend(p)
			}
		}
		return b
	default:
		return EmptyAABB()
	}
	return AABB{Min: r3.Scale(-1, h), Max: h}
}

// WorldBounds returns the box around shape s placed by world. The local box
// is transformed corner by corner, so rotated shapes get a conservative fit.
func WorldBounds(s Shape, world Affine) AABB {
	out := EmptyAABB()
	lb := LocalBounds(s)
	if lb.Empty() {
		return out
	}
	for c := 0; c < 8; c++ {
		p := lb.Min
		if c&1 != 0 {
			p.X = lb.Max.X
		}
		if c&2 != 0 {
			p.Y = lb.Max.Y
		}
		if c&4 != 0 {
			p.Z = lb.Max.Z
		}
		out = out.Extend(world.Apply(p))
	}
	return out
}

// Bounds returns the world-space box around every visible mesh under root.
// root itself is placed by its own pose; its ancestors are ignored.
func (g *Graph) Bounds(root NodeID) AABB {
	out := EmptyAABB()
	g.Walk(root, func(_ NodeID, n *Node, world Affine) bool {
		if n.IsMesh() {
			out = out.Union(WorldBounds(n.Shape, world))
		}
		return true
	})
	return out
}
