package layout

import "github.com/michaeljayl/graphicsn/internal/scene"

// Keyboards lie along z, one key per digit, and grow along +x with depth.
const (
	keyLength = 1.0  // along x
	keyWidth  = 1.0  // along z; a keyboard is keyWidth*base wide
	keyDepth  = 0.25 // along y
	loftStep  = 2 * keyDepth
	epsilon   = 0.0001
)

func keyZ(i, base int) float64 {
	return -0.5*float64(base-1)*keyWidth + float64(i)*keyWidth
}

func keyboardDigits(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID {
	root := g.NewGroup("keyboard")
	for _, i := range include {
		unit(g, root, scene.Box{W: keyLength, H: keyDepth, D: keyWidth}, i, base, mat).
			SetPos(0, 0.5*keyDepth, keyZ(i, base))
	}
	return root
}

func keyboardSlot(g *scene.Graph, i, base int, child scene.NodeID) scene.NodeID {
	id, n := slot(g, i, child)
	n.SetPos(keyLength, 0, keyZ(i, base)).SetScale(1, 1, 1/float64(base))
	return id
}

// lengthened: key i is i keys long, and its sub-keyboard starts at its tip.
func lengthenedDigits(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID {
	root := g.NewGroup("keyboard lengthened")
	for _, i := range include {
		l := keyLength*float64(i) + epsilon
		unit(g, root, scene.Box{W: l, H: keyDepth, D: keyWidth}, i, base, mat).
			SetPos(0.5*l, 0.5*keyDepth, keyZ(i, base))
	}
	return root
}

func lengthenedSlot(g *scene.Graph, i, base int, child scene.NodeID) scene.NodeID {
	b := float64(base)
	g.Node(child).SetScale(1/b, 1, 1/b)
	id, n := slot(g, i, child)
	n.SetPos(keyLength*float64(i)+epsilon, 0, keyZ(i, base))
	return id
}

// lofted: key i is i steps tall, and its sub-keyboard sits on top of it.
func keyboardLoftedDigits(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID {
	root := g.NewGroup("keyboard lofted")
	for _, i := range include {
		h := float64(i)*loftStep + epsilon
		unit(g, root, scene.Box{W: keyLength, H: h, D: keyWidth}, i, base, mat).
			SetPos(0, float64(i)*keyDepth, keyZ(i, base))
	}
	return root
}

func keyboardLoftedSlot(g *scene.Graph, i, base int, child scene.NodeID) scene.NodeID {
	b := float64(base)
	c := g.Node(child)
	c.Pose.Pos.X = keyLength
	c.Pose.Scale.Y = 1/b + epsilon
	id, n := slot(g, i, child)
	n.SetPos(0, 2*float64(i)*keyDepth, keyZ(i, base)).SetScale(1, 1, 1/b)
	return id
}
