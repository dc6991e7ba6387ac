package layout

import (
	"math"

	"github.com/michaeljayl/graphicsn/internal/scene"
)

const (
	squareSide   = 1.0 // in the xz plane
	squareHeight = 0.2
)

// grid places digit i at row i%rows, column i/rows of a near-square grid.
type grid struct {
	rows, cols int
}

func gridFor(base int) grid {
	rows := int(math.Floor(math.Sqrt(float64(base))))
	return grid{rows: rows, cols: (base-1)/rows + 1}
}

func (gr grid) cell(i int) (x, z float64) {
	row, col := i%gr.rows, i/gr.rows
	minZ := -0.5 * float64(gr.rows-1) * squareSide
	return float64(col) * squareSide, minZ + float64(row)*squareSide
}

// slotX is the x offset that puts a shrunken grid over cell column col.
func (gr grid) slotX(i int) float64 {
	col := i / gr.rows
	return float64(col)*squareSide - 0.5*squareSide + (0.5/float64(gr.cols))*squareSide
}

func squaresDigits(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID {
	root := g.NewGroup("squares")
	gr := gridFor(base)
	for _, i := range include {
		x, z := gr.cell(i)
		unit(g, root, scene.Box{W: squareSide, H: squareHeight, D: squareSide}, i, base, mat).
			SetPos(x, 0.5*squareHeight, z)
	}
	return root
}

func squaresSlot(g *scene.Graph, i, base int, child scene.NodeID) scene.NodeID {
	gr := gridFor(base)
	_, z := gr.cell(i)
	id, n := slot(g, i, child)
	n.SetPos(gr.slotX(i), squareHeight, z).
		SetScale(1/float64(gr.cols), 1, 1/float64(gr.rows))
	return id
}

func squaresLoftedDigits(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID {
	root := g.NewGroup("squares lofted")
	gr := gridFor(base)
	for _, i := range include {
		x, z := gr.cell(i)
		h := squareHeight*float64(i) + epsilon
		unit(g, root, scene.Box{W: squareSide, H: h, D: squareSide}, i, base, mat).
			SetPos(x, 0.5*squareHeight*float64(i), z)
	}
	return root
}

func squaresLoftedSlot(g *scene.Graph, i, base int, child scene.NodeID) scene.NodeID {
	gr := gridFor(base)
	_, z := gr.cell(i)
	id, n := slot(g, i, child)
	n.SetPos(gr.slotX(i), float64(i)*squareHeight+epsilon, z).
		SetScale(1/float64(gr.cols), 1/float64(base)+epsilon, 1/float64(gr.rows))
	return id
}
