package surface

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Dickson bottle shape constants.
const (
	kleinA = 6.0
	kleinB = 4.0
	kleinC = 16.0
)

// Func maps a parameter pair in [0,1)² to a point in space.
type Func func(u, v float64) r3.Vec

// Klein is the figure-8 (Dickson) immersion of the Klein bottle. For
// u < 0.5 the tube follows the outer loop; for u >= 0.5 it runs back through
// itself with the cross-section reversed, which is what glues the two ends
// with a reflection.
func Klein(u, v float64) r3.Vec {
	up := u * 2 * math.Pi
	vp := v * 2 * math.Pi
	cosu, sinu := math.Cos(up), math.Sin(up)
	cosv, sinv := math.Cos(vp), math.Sin(vp)
	ru := kleinB * (1 - cosu/2)

	var x, y float64
	if up < math.Pi {
		x = kleinA*cosu*(1+sinu) + ru*cosu*cosv
		y = kleinC*sinu + ru*sinu*cosv
	} else {
		x = kleinA*cosu*(1+sinu) + ru*math.Cos(vp+math.Pi)
		y = kleinC * sinu
	}
	return r3.Vec{X: x, Y: y, Z: ru * sinv}
}

// Tessellate samples f on a (uSegs+1) x (vSegs+1) grid covering [0,1]².
func Tessellate(f Func, uSegs, vSegs int) [][]r3.Vec {
	if uSegs < 1 {
		uSegs = 1
	}
	if vSegs < 1 {
		vSegs = 1
	}
	grid := make([][]r3.Vec, uSegs+1)
	for i := range grid {
		u := float64(i) / float64(uSegs)
		row := make([]r3.Vec, vSegs+1)
		for j := range row {
			row[j] = f(u, float64(j)/float64(vSegs))
		}
		grid[i] = row
	}
	return grid
}
