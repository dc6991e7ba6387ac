package layout

import "github.com/michaeljayl/graphicsn/internal/scene"

const (
	boxX   = 1.0 // side along x
	boxZ   = 3.0 // side along z
	boxGap = 0.5
	boxFit = 0.8 // x shrink of a nested row
)

func boxPitch() float64 { return boxZ + boxGap }

func boxZPos(i, base int) float64 {
	return -0.5*float64(base-1)*boxPitch() + float64(i)*boxPitch()
}

// boxFitZ shrinks a whole row of base boxes to the z extent of one box.
func boxFitZ(base int) float64 {
	return boxZ / (float64(base-1)*boxPitch() + boxZ)
}

func boxesDigits(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID {
	root := g.NewGroup("boxes")
	for _, i := range include {
		unit(g, root, scene.Box{W: boxX, H: keyDepth, D: boxZ}, i, base, mat).
			SetPos(0, 0.5*keyDepth, boxZPos(i, base))
	}
	return root
}

func boxesSlot(g *scene.Graph, i, base int, child scene.NodeID) scene.NodeID {
	id, n := slot(g, i, child)
	n.SetPos(0, keyDepth, boxZPos(i, base)).SetScale(boxFit, 1, boxFitZ(base))
	return id
}

func boxesLoftedDigits(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID {
	root := g.NewGroup("boxes lofted")
	for _, i := range include {
		h := keyDepth*float64(i) + epsilon
		unit(g, root, scene.Box{W: boxX, H: h, D: boxZ}, i, base, mat).
			SetPos(0, 0.5*keyDepth*float64(i), boxZPos(i, base))
	}
	return root
}

func boxesLoftedSlot(g *scene.Graph, i, base int, child scene.NodeID) scene.NodeID {
	id, n := slot(g, i, child)
	n.SetPos(0, float64(i)*keyDepth+epsilon, boxZPos(i, base)).
		SetScale(boxFit, 1/float64(base)+epsilon, boxFitZ(base))
	return id
}
