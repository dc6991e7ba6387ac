package export

import (
	"encoding/json"
	"io"

	"github.com/michaeljayl/graphicsn/internal/scene"
)

// TreeNode is the JSON form of one scene node and its visible subtree.
type TreeNode struct {
	Name     string      `json:"name"`
	Kind     string      `json:"kind"`
	Digit    *int        `json:"digit,omitempty"`
	Pos      [3]float64  `json:"pos"`
	Scale    [3]float64  `json:"scale"`
	Axis     *[3]float64 `json:"axis,omitempty"`
	Angle    float64     `json:"angle,omitempty"`
	Color    string      `json:"color,omitempty"`
	Children []*TreeNode `json:"children,omitempty"`
	// Elided counts children cut off by the depth limit.
	Elided int `json:"elided,omitempty"`
}

// Tree converts the subtree at root. maxDepth bounds the levels kept, root
// being level 1; zero keeps everything. Hidden nodes are skipped.
func Tree(g *scene.Graph, root scene.NodeID, maxDepth int) *TreeNode {
	return tree(g, root, 1, maxDepth)
}

func tree(g *scene.Graph, id scene.NodeID, level, maxDepth int) *TreeNode {
	n := g.Node(id)
	if n == nil || !n.Visible {
		return nil
	}
	p := n.Pose
	t := &TreeNode{
		Name:  n.Name,
		Kind:  "group",
		Pos:   [3]float64{p.Pos.X, p.Pos.Y, p.Pos.Z},
		Scale: [3]float64{p.Scale.X, p.Scale.Y, p.Scale.Z},
	}
	if n.IsMesh() {
		t.Kind = n.Shape.Kind().String()
	}
	if n.Digit >= 0 {
		d := n.Digit
		t.Digit = &d
	}
	if p.Angle != 0 {
		t.Axis = &[3]float64{p.Axis.X, p.Axis.Y, p.Axis.Z}
		t.Angle = p.Angle
	}
	if n.Material != nil {
		t.Color = n.Material.Hex()
	}

	kids := g.Children(id)
	if maxDepth > 0 && level >= maxDepth {
		t.Elided = len(kids)
		return t
	}
	for _, k := range kids {
		if c := tree(g, k, level+1, maxDepth); c != nil {
			t.Children = append(t.Children, c)
		}
	}
	return t
}

// WriteTree encodes the subtree at root as indented JSON.
func WriteTree(w io.Writer, g *scene.Graph, root scene.NodeID, maxDepth int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Tree(g, root, maxDepth))
}
