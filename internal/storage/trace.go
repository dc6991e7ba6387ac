package storage

import (
	"errors"
	"fmt"
	"math"

	"github.com/michaeljayl/graphicsn/internal/surface"
)

// ErrStep is returned by Record when dt cannot be sampled: it is not
// positive, or one step moves the walker a whole parameter period or more.
var ErrStep = errors.New("storage: bad trace step")

// Sample is one walker step: time, parameter position, world position and
// orientation sign.
type Sample struct {
	T, U, V float64
	X, Y, Z float64
	Sign    int
}

type Trace []Sample

// Crossings counts sign flips between consecutive samples.
func (tr Trace) Crossings() int {
	n := 0
	for i := 1; i < len(tr); i++ {
		if tr[i].Sign != tr[i-1].Sign {
			n++
		}
	}
	return n
}

// Column returns one named series (t, u, v, x, y, z or sign), or nil for an
// unknown name.
func (tr Trace) Column(name string) []float64 {
	var pick func(Sample) float64
	switch name {
	case "t":
		pick = func(s Sample) float64 { return s.T }
	case "u":
		pick = func(s Sample) float64 { return s.U }
	case "v":
		pick = func(s Sample) float64 { return s.V }
	case "x":
		pick = func(s Sample) float64 { return s.X }
	case "y":
		pick = func(s Sample) float64 { return s.Y }
	case "z":
		pick = func(s Sample) float64 { return s.Z }
	case "sign":
		pick = func(s Sample) float64 { return float64(s.Sign) }
	default:
		return nil
	}
	out := make([]float64, len(tr))
	for i, s := range tr {
		out[i] = pick(s)
	}
	return out
}

// Record advances w headless for duration seconds in dt steps and samples
// it after every step. The starting state is sample zero. A step longer than
// one parameter period in u or v is rejected, since the walker wraps once.
func Record(w *surface.Walker, duration, dt float64) (Trace, error) {
	if dt <= 0 || duration < 0 {
		return nil, fmt.Errorf("%w: dt %g, duration %g", ErrStep, dt, duration)
	}
	du := dt * w.Speed * math.Abs(w.Dir.U)
	dv := dt * w.Speed * math.Abs(w.Dir.V)
	if du > 1 || dv > 1 {
		return nil, fmt.Errorf("%w: dt*speed moves %g in u and %g in v, want at most 1", ErrStep, du, dv)
	}
	steps := int(duration/dt + 1e-9)
	trace := make(Trace, 0, steps+1)

	sample := func(t float64) {
		p := w.World()
		trace = append(trace, Sample{
			T: t, U: w.Pos.U, V: w.Pos.V,
			X: p.X, Y: p.Y, Z: p.Z,
			Sign: int(w.Sign),
		})
	}

	w.Place()
	sample(0)
	for i := 1; i <= steps; i++ {
		w.Step(dt)
		sample(float64(i) * dt)
	}
	return trace, nil
}
