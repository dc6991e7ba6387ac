package layout_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/michaeljayl/graphicsn/internal/layout"
	"github.com/michaeljayl/graphicsn/internal/scene"
)

func all(base int) []int {
	out := make([]int, base)
	for i := range out {
		out[i] = i
	}
	return out
}

// unitBounds returns the box of the mesh for digit i, placed by every
// transform between root and the mesh.
func unitBounds(g *scene.Graph, root scene.NodeID, i int) scene.AABB {
	b := scene.EmptyAABB()
	g.Walk(root, func(_ scene.NodeID, n *scene.Node, world scene.Affine) bool {
		if n.IsMesh() && n.Digit == i {
			b = b.Union(scene.WorldBounds(n.Shape, world))
		}
		return true
	})
	return b
}

// meshCentroid averages the world origins of the meshes under root.
func meshCentroid(g *scene.Graph, root scene.NodeID) r3.Vec {
	var sum r3.Vec
	count := 0
	g.Walk(root, func(_ scene.NodeID, n *scene.Node, world scene.Affine) bool {
		if n.IsMesh() {
			sum = r3.Add(sum, world.Origin)
			count++
		}
		return true
	})
	return r3.Scale(1/float64(count), sum)
}

// nested builds digit i's unit alongside a transformed copy of the whole
// digits graph in i's slot.
func nested(m layout.Model, base, i int) (g *scene.Graph, digits, slot scene.NodeID) {
	g = scene.New()
	digits = m.DigitsGraph(g, base, all(base), nil)
	slot = m.Transform(g, i, base, g.Clone(digits), 2)
	return g, digits, slot
}

var _ = Describe("Catalog", func() {
	It("lists every model in menu order", func() {
		Expect(layout.Names()).To(Equal([]string{
			"keyboard", "keyboard lengthened", "keyboard lofted",
			"boxes", "boxes lofted", "squares", "squares lofted",
			"disks", "disks lofted", "spheres",
		}))
		Expect(layout.Models()).To(HaveLen(10))
	})

	It("parses names back to models", func() {
		for _, m := range layout.Models() {
			got, err := layout.Parse(m.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(m))
		}
	})

	It("rejects unknown names", func() {
		_, err := layout.Parse("hexagons")
		Expect(err).To(MatchError(layout.ErrUnknownModel))
	})

	It("caps spheres at twelve digits", func() {
		Expect(layout.Spheres.Supports(12)).To(BeTrue())
		Expect(layout.Spheres.Supports(13)).To(BeFalse())
		Expect(layout.Keyboard.Supports(40)).To(BeTrue())
		Expect(layout.Model(42).Supports(2)).To(BeFalse())
	})
})

var _ = Describe("DigitsGraph", func() {
	It("builds one unit per included digit", func() {
		for _, m := range layout.Models() {
			g := scene.New()
			root := m.DigitsGraph(g, 5, []int{0, 2, 4}, nil)
			Expect(g.CountMeshes(root)).To(Equal(3), m.String())
		}
	})

	It("colours units by hue unless a material is shared", func() {
		g := scene.New()
		root := layout.Keyboard.DigitsGraph(g, 3, all(3), nil)
		seen := map[string]bool{}
		g.Walk(root, func(_ scene.NodeID, n *scene.Node, _ scene.Affine) bool {
			if n.IsMesh() {
				seen[n.Material.Hex()] = true
			}
			return true
		})
		Expect(seen).To(HaveLen(3))

		blue, err := scene.ParseColor("#3366ff")
		Expect(err).NotTo(HaveOccurred())
		shared := scene.NewMaterial(blue)
		root = layout.Keyboard.DigitsGraph(g, 3, all(3), shared)
		g.Walk(root, func(_ scene.NodeID, n *scene.Node, _ scene.Affine) bool {
			if n.IsMesh() {
				Expect(n.Material).To(BeIdenticalTo(shared))
			}
			return true
		})
	})

	It("tags every unit with its digit", func() {
		g := scene.New()
		root := layout.Squares.DigitsGraph(g, 4, []int{1, 3}, nil)
		var digits []int
		g.Walk(root, func(_ scene.NodeID, n *scene.Node, _ scene.Affine) bool {
			if n.IsMesh() {
				digits = append(digits, n.Digit)
			}
			return true
		})
		Expect(digits).To(Equal([]int{1, 3}))
	})
})

var _ = Describe("Transform", func() {
	const tol = 1e-6

	DescribeTable("keeps the nested copy inside digit i's footprint",
		func(m layout.Model, base int) {
			for i := 0; i < base; i++ {
				g, digits, slot := nested(m, base, i)
				unit := unitBounds(g, digits, i)
				sub := g.Bounds(slot)
				Expect(sub.Min.Z).To(BeNumerically(">=", unit.Min.Z-tol), "z min, digit %d", i)
				Expect(sub.Max.Z).To(BeNumerically("<=", unit.Max.Z+tol), "z max, digit %d", i)
			}
		},
		Entry("keyboard", layout.Keyboard, 3),
		Entry("keyboard lengthened", layout.KeyboardLengthened, 3),
		Entry("keyboard lofted", layout.KeyboardLofted, 3),
		Entry("boxes", layout.Boxes, 3),
		Entry("boxes at a wide base", layout.Boxes, 9),
		Entry("boxes lofted", layout.BoxesLofted, 3),
	)

	DescribeTable("spans digit i's z extent exactly on keyboards and boxes",
		func(m layout.Model, base int) {
			for i := 0; i < base; i++ {
				g, digits, slot := nested(m, base, i)
				unit := unitBounds(g, digits, i)
				sub := g.Bounds(slot)
				Expect(sub.Min.Z).To(BeNumerically("~", unit.Min.Z, tol))
				Expect(sub.Max.Z).To(BeNumerically("~", unit.Max.Z, tol))
			}
		},
		Entry("keyboard", layout.Keyboard, 4),
		Entry("boxes", layout.Boxes, 4),
		Entry("boxes lofted", layout.BoxesLofted, 9),
	)

	DescribeTable("fits the nested grid onto digit i's square",
		func(m layout.Model, base int) {
			for i := 0; i < base; i++ {
				g, digits, slot := nested(m, base, i)
				unit := unitBounds(g, digits, i)
				sub := g.Bounds(slot)
				Expect(sub.Min.X).To(BeNumerically(">=", unit.Min.X-tol))
				Expect(sub.Max.X).To(BeNumerically("<=", unit.Max.X+tol))
				Expect(sub.Min.Z).To(BeNumerically(">=", unit.Min.Z-tol))
				Expect(sub.Max.Z).To(BeNumerically("<=", unit.Max.Z+tol))
			}
		},
		Entry("squares", layout.Squares, 4),
		Entry("squares at a ragged base", layout.Squares, 5),
		Entry("squares lofted", layout.SquaresLofted, 4),
	)

	DescribeTable("centres the nested ring on digit i",
		func(m layout.Model, base int) {
			for i := 0; i < base; i++ {
				g, digits, slot := nested(m, base, i)
				want := unitBounds(g, digits, i).Center()
				got := meshCentroid(g, slot)
				Expect(got.X).To(BeNumerically("~", want.X, tol))
				Expect(got.Z).To(BeNumerically("~", want.Z, tol))
			}
		},
		Entry("disks", layout.Disks, 5),
		Entry("disks lofted", layout.DisksLofted, 3),
		Entry("spheres", layout.Spheres, 6),
		Entry("spheres at full base", layout.Spheres, 12),
	)

	It("stacks lofted copies on top of their unit", func() {
		for _, m := range []layout.Model{layout.KeyboardLofted, layout.BoxesLofted, layout.SquaresLofted} {
			g, digits, slot := nested(m, 4, 3)
			unit := unitBounds(g, digits, 3)
			sub := g.Bounds(slot)
			Expect(sub.Min.Y).To(BeNumerically(">=", unit.Max.Y-1e-3), m.String())
		}
	})

	It("tags the slot with its digit", func() {
		g := scene.New()
		child := layout.Keyboard.DigitsGraph(g, 3, all(3), nil)
		slot := layout.Keyboard.Transform(g, 2, 3, child, 2)
		Expect(g.Node(slot).Digit).To(Equal(2))
		Expect(g.Children(slot)).To(Equal([]scene.NodeID{child}))
	})
})
