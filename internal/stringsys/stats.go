package stringsys

import "github.com/michaeljayl/graphicsn/internal/scene"

// Stats summarizes a built tree.
type Stats struct {
	DigitsGraphs int `json:"digits_graphs"`
	Meshes       int `json:"meshes"`
	Groups       int `json:"groups"`
	Depth        int `json:"depth"`
}

// Measure counts the visible structure under root.
func Measure(g *scene.Graph, root scene.NodeID) Stats {
	st := Stats{
		Meshes: g.CountMeshes(root),
		Groups: g.CountGroups(root),
		Depth:  g.Depth(root),
	}
	g.Walk(root, func(_ scene.NodeID, n *scene.Node, _ scene.Affine) bool {
		if n.Name == DigitsName {
			st.DigitsGraphs++
		}
		return true
	})
	return st
}

// ExpectedDigitsGraphs is the number of digits-graph copies in a tree of
// depth n over k digits: 1 + k + k^2 + ... + k^(n-1).
func ExpectedDigitsGraphs(n, k int) int {
	total, pow := 0, 1
	for j := 0; j < n; j++ {
		total += pow
		pow *= k
	}
	return total
}
