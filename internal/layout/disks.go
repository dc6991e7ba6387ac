package layout

import (
	"fmt"
	"math"

	"github.com/michaeljayl/graphicsn/internal/scene"
)

const (
	diskDepth    = 0.05
	diskRadius   = 0.5
	diskOffset   = 3.0
	diskShrink   = 0.25
	loftRadius   = 2.0
	loftHeight   = 1.0
	loftOffset   = 6.0
	diskSegments = 24
)

func diskAngle(i, base int) float64 {
	return float64(i) * 2 * math.Pi / float64(base)
}

// spoke is a group turned to digit i's angle around y.
func spoke(g *scene.Graph, parent scene.NodeID, i, base int) scene.NodeID {
	id := g.NewGroup(fmt.Sprintf("spoke %d", i))
	n := g.Node(id)
	n.Digit = i
	n.SetRotationY(diskAngle(i, base))
	g.Add(parent, id)
	return id
}

func disksDigits(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID {
	root := g.NewGroup("disks")
	for _, i := range include {
		s := spoke(g, root, i, base)
		unit(g, s, scene.Cylinder{Radius: diskRadius, Height: diskDepth, Segments: diskSegments}, i, base, mat).
			SetPos(diskOffset, 0, 0)
	}
	return root
}

func disksSlot(g *scene.Graph, i, base int, child scene.NodeID) scene.NodeID {
	g.Node(child).SetScale(diskShrink, 1/float64(base), diskShrink).SetPos(diskOffset, 0, 0)
	id, n := slot(g, i, child)
	n.SetRotationY(diskAngle(i, base))
	return id
}

func disksLoftedDigits(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID {
	root := g.NewGroup("disks lofted")
	for _, i := range include {
		s := spoke(g, root, i, base)
		h := loftHeight*float64(i) + epsilon
		unit(g, s, scene.Cylinder{Radius: loftRadius, Height: h, Segments: diskSegments}, i, base, mat).
			SetPos(loftOffset, 0.5*loftHeight*float64(i), 0)
	}
	return root
}

func disksLoftedSlot(g *scene.Graph, i, base int, child scene.NodeID) scene.NodeID {
	g.Node(child).SetScale(diskShrink, 1/float64(base), diskShrink).SetPos(loftOffset, 0, 0)
	id, n := slot(g, i, child)
	n.SetPos(0, float64(i)*loftHeight+epsilon, 0).SetRotationY(diskAngle(i, base))
	return id
}
