package layout

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/michaeljayl/graphicsn/internal/scene"
)

const (
	sphereRadius   = 1.0
	sphereSpread   = 5.0
	sphereShrink   = 0.4
	sphereSegments = 24
)

// spherePositions are the fixed directions of the twelve digits: the six
// axis directions at distance 1, then again at distance 2.
var spherePositions = [12]r3.Vec{
	{X: 0, Y: 1, Z: 0}, {X: 0, Y: -1, Z: 0},
	{X: 1, Y: 0, Z: 0}, {X: -1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1}, {X: 0, Y: 0, Z: -1},
	{X: 0, Y: 2, Z: 0}, {X: 0, Y: -2, Z: 0},
	{X: 2, Y: 0, Z: 0}, {X: -2, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 2}, {X: 0, Y: 0, Z: -2},
}

func spherePos(i int) r3.Vec {
	return r3.Scale(sphereSpread, spherePositions[i])
}

func spheresDigits(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID {
	root := g.NewGroup("spheres")
	for _, i := range include {
		p := spherePos(i)
		unit(g, root, scene.Sphere{Radius: sphereRadius, Segments: sphereSegments}, i, base, mat).
			SetPos(p.X, p.Y, p.Z)
	}
	return root
}

func spheresSlot(g *scene.Graph, i, base int, child scene.NodeID) scene.NodeID {
	p := spherePos(i)
	id, n := slot(g, i, child)
	n.SetPos(p.X, p.Y, p.Z).SetScale(sphereShrink, sphereShrink, sphereShrink)
	return id
}
