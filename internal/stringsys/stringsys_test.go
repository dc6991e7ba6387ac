package stringsys_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/michaeljayl/graphicsn/internal/config"
	"github.com/michaeljayl/graphicsn/internal/layout"
	"github.com/michaeljayl/graphicsn/internal/scene"
	"github.com/michaeljayl/graphicsn/internal/stringsys"
)

type flatNode struct {
	Name     string
	Pose     scene.Pose
	Digit    int
	Mesh     bool
	Children int
}

// flatten lists the tree in walk order with each node's local parameters.
func flatten(g *scene.Graph, root scene.NodeID) []flatNode {
	var out []flatNode
	g.Walk(root, func(id scene.NodeID, n *scene.Node, _ scene.Affine) bool {
		out = append(out, flatNode{
			Name:     n.Name,
			Pose:     n.Pose,
			Digit:    n.Digit,
			Mesh:     n.IsMesh(),
			Children: len(g.Children(id)),
		})
		return true
	})
	return out
}

func build(n, base int, m layout.Model, include []int) (*scene.Graph, scene.NodeID) {
	g := scene.New()
	root, err := stringsys.Build(g, n, base, m, include, nil)
	Expect(err).NotTo(HaveOccurred())
	return g, root
}

var _ = Describe("Build", func() {
	It("returns a lone digits graph at depth one", func() {
		g, root := build(1, 3, layout.Keyboard, []int{0, 1, 2})
		st := stringsys.Measure(g, root)
		Expect(st.DigitsGraphs).To(Equal(1))
		Expect(st.Meshes).To(Equal(3))
		Expect(g.Node(root).Name).To(Equal(stringsys.DigitsName))
	})

	It("holds four digits graphs for two levels of base three", func() {
		g, root := build(2, 3, layout.Keyboard, []int{0, 1, 2})
		st := stringsys.Measure(g, root)
		Expect(st.DigitsGraphs).To(Equal(4))
		Expect(st.Meshes).To(Equal(12))
		Expect(g.Children(root)).To(HaveLen(4))
	})

	DescribeTable("matches the geometric series of digits graphs",
		func(m layout.Model, n, base int, include []int) {
			g, root := build(n, base, m, include)
			st := stringsys.Measure(g, root)
			Expect(st.DigitsGraphs).To(Equal(stringsys.ExpectedDigitsGraphs(n, len(include))))
			Expect(st.Meshes).To(Equal(st.DigitsGraphs * len(include)))
		},
		Entry("keyboard", layout.Keyboard, 3, 2, []int{0, 1}),
		Entry("boxes lofted", layout.BoxesLofted, 3, 4, []int{0, 1, 3}),
		Entry("squares", layout.Squares, 4, 3, []int{0, 1, 2}),
		Entry("disks", layout.Disks, 2, 6, []int{0, 1, 2, 3, 4, 5}),
		Entry("spheres", layout.Spheres, 3, 12, []int{0, 5, 11}),
	)

	It("is deterministic", func() {
		for _, m := range layout.Models() {
			g1, r1 := build(3, 4, m, []int{0, 1, 3})
			g2, r2 := build(3, 4, m, []int{0, 1, 3})
			Expect(flatten(g1, r1)).To(Equal(flatten(g2, r2)), m.String())
		}
	})

	It("never instantiates excluded digits", func() {
		for _, m := range layout.Models() {
			g, root := build(4, 4, m, []int{0, 2})
			g.Walk(root, func(_ scene.NodeID, n *scene.Node, _ scene.Affine) bool {
				Expect(n.Digit).NotTo(BeElementOf(1, 3), m.String())
				return true
			})
		}
	})

	It("treats include as a set", func() {
		g1, r1 := build(2, 4, layout.Squares, []int{3, 0, 3, 2})
		g2, r2 := build(2, 4, layout.Squares, []int{0, 2, 3})
		Expect(flatten(g1, r1)).To(Equal(flatten(g2, r2)))
	})

	It("gives siblings independent poses", func() {
		g, root := build(3, 3, layout.Keyboard, []int{0, 1, 2})
		kids := g.Children(root)
		a := g.Children(kids[1])[0]
		b := g.Children(kids[2])[0]
		Expect(a).NotTo(Equal(b))

		g.Node(a).SetPos(100, 100, 100)
		Expect(g.Node(b).Pose.Pos).NotTo(Equal(r3.Vec{X: 100, Y: 100, Z: 100}))
	})

	It("shares a given material across every unit", func() {
		g := scene.New()
		mat := scene.NewMaterial(scene.HueMaterial(1, 3).Color)
		root, err := stringsys.Build(g, 3, 3, layout.Disks, []int{0, 1, 2}, mat)
		Expect(err).NotTo(HaveOccurred())
		g.Walk(root, func(_ scene.NodeID, n *scene.Node, _ scene.Affine) bool {
			if n.IsMesh() {
				Expect(n.Material).To(BeIdenticalTo(mat))
			}
			return true
		})
	})

	DescribeTable("rejects invalid input",
		func(n, base int, m layout.Model, include []int, field string) {
			g := scene.New()
			before := g.Len()
			_, err := stringsys.Build(g, n, base, m, include, nil)
			Expect(err).To(MatchError(config.ErrInvalidParameter))

			var perr *config.InvalidParameterError
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Field).To(Equal(field))
			Expect(g.Len()).To(Equal(before))
		},
		Entry("depth zero", 0, 3, layout.Keyboard, []int{0}, "n"),
		Entry("unary base", 3, 1, layout.Keyboard, []int{0}, "base"),
		Entry("digit past base", 2, 3, layout.Keyboard, []int{0, 3}, "digit"),
		Entry("negative digit", 2, 3, layout.Boxes, []int{-1}, "digit"),
		Entry("too many spheres", 2, 13, layout.Spheres, []int{0}, "base"),
	)
})

var _ = Describe("ExpectedDigitsGraphs", func() {
	It("sums the powers of k below n", func() {
		Expect(stringsys.ExpectedDigitsGraphs(1, 5)).To(Equal(1))
		Expect(stringsys.ExpectedDigitsGraphs(2, 3)).To(Equal(4))
		Expect(stringsys.ExpectedDigitsGraphs(3, 2)).To(Equal(7))
		Expect(stringsys.ExpectedDigitsGraphs(4, 0)).To(Equal(1))
	})
})
