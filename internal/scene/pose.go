package scene

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Pose is the local transform of a node: scale first, then rotation about
// Axis by Angle radians, then translation by Pos.
type Pose struct {
	Pos   r3.Vec
	Axis  r3.Vec
	Angle float64
	Scale r3.Vec
}

// IdentityPose returns a pose that leaves points unchanged.
func IdentityPose() Pose {
	return Pose{Axis: r3.Vec{Y: 1}, Scale: r3.Vec{X: 1, Y: 1, Z: 1}}
}

// Affine returns the local transform of the pose.
func (p Pose) Affine() Affine {
	rot := func(v r3.Vec) r3.Vec { return v }
	if p.Angle != 0 && r3.Norm(p.Axis) > 0 {
		r := r3.NewRotation(p.Angle, r3.Unit(p.Axis))
		rot = r.Rotate
	}
	return Affine{
		Origin: p.Pos,
		X:      rot(r3.Vec{X: p.Scale.X}),
		Y:      rot(r3.Vec{Y: p.Scale.Y}),
		Z:      rot(r3.Vec{Z: p.Scale.Z}),
	}
}

// Affine is an affine map stored as the images of the basis vectors plus a
// translation.
type Affine struct {
	Origin  r3.Vec
	X, Y, Z r3.Vec
}

// Identity returns the identity map.
func Identity() Affine {
	return Affine{X: r3.Vec{X: 1}, Y: r3.Vec{Y: 1}, Z: r3.Vec{Z: 1}}
}

// Linear applies only the linear part of a to v.
func (a Affine) Linear(v r3.Vec) r3.Vec {
	return r3.Add(r3.Add(r3.Scale(v.X, a.X), r3.Scale(v.Y, a.Y)), r3.Scale(v.Z, a.Z))
}

// Apply maps the point p.
func (a Affine) Apply(p r3.Vec) r3.Vec {
	return r3.Add(a.Origin, a.Linear(p))
}

// Mul returns the composition a∘b (b applied first).
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		Origin: a.Apply(b.Origin),
		X:      a.Linear(b.X),
		Y:      a.Linear(b.Y),
		Z:      a.Linear(b.Z),
	}
}

// ApproxEqual reports whether a and b differ by at most tol in every
// component.
func (a Affine) ApproxEqual(b Affine, tol float64) bool {
	near := func(p, q r3.Vec) bool {
		return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol && math.Abs(p.Z-q.Z) <= tol
	}
	return near(a.Origin, b.Origin) && near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}
