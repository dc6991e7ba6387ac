package viz

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/michaeljayl/graphicsn/internal/scene"
)

// Camera looks at Target from +z after rotating the world by RotX, RotY and
// RotZ. Extent is the world half-size that fills half the smaller screen
// side at Zoom 1.
type Camera struct {
	Target           r3.Vec
	Extent           float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Extent: 1, RotX: -0.4, RotY: 0.6, Zoom: 1}
}

// Fit centres the camera on b and sizes Extent to its bounding sphere, so
// the whole box stays on screen from any orbit angle.
func (c *Camera) Fit(b scene.AABB) {
	if b.Empty() {
		return
	}
	c.Target = b.Center()
	c.Extent = 0.5 * r3.Norm(b.Size()) * 1.1
	if c.Extent <= 0 {
		c.Extent = 1
	}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// view maps p into camera space: relative to Target, rotated, then zoomed.
func (c *Camera) view(p r3.Vec) r3.Vec {
	p = r3.Sub(p, c.Target)
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return r3.Scale(c.Zoom, p)
}

// Project maps p to screen (x, y) on a sw x sh surface with a mild
// perspective. depth grows towards the viewer; ok is false when p is behind
// the eye or off screen.
func (c *Camera) Project(p r3.Vec, sw, sh int) (x, y int, depth float64, ok bool) {
	v := c.view(p)
	eye := 4 * c.Extent
	if v.Z >= eye*0.95 {
		return 0, 0, 0, false
	}
	persp := eye / (eye - v.Z)
	half := 0.5 * float64(min(sw, sh)) / c.Extent
	x = int(math.Round(v.X*persp*half)) + sw/2
	y = int(math.Round(-v.Y*persp*half)) + sh/2
	return x, y, v.Z, x >= 0 && x < sw && y >= 0 && y < sh
}
