package scene

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// NodeID indexes a node inside its Graph.
type NodeID int

// None is the zero-value id that never names a node.
const None NodeID = -1

// ErrUnknownNode is returned when an id does not belong to the graph.
var ErrUnknownNode = errors.New("scene: unknown node")

// Node is a transform container, optionally carrying a drawable leaf.
type Node struct {
	Name     string
	Pose     Pose
	Visible  bool
	Shape    Shape
	Material *Material
	// Digit annotates digit units and slots with the digit they place; -1
	// when the node is not tied to a digit.
	Digit int

	children []NodeID
}

// SetPos sets the node position.
func (n *Node) SetPos(x, y, z float64) *Node {
	n.Pose.Pos = r3.Vec{X: x, Y: y, Z: z}
	return n
}

// SetScale sets the node scale.
func (n *Node) SetScale(x, y, z float64) *Node {
	n.Pose.Scale = r3.Vec{X: x, Y: y, Z: z}
	return n
}

// SetRotation sets rotation about axis by angle radians.
func (n *Node) SetRotation(axis r3.Vec, angle float64) *Node {
	n.Pose.Axis = axis
	n.Pose.Angle = angle
	return n
}

// SetRotationY rotates about the y axis.
func (n *Node) SetRotationY(angle float64) *Node {
	return n.SetRotation(r3.Vec{Y: 1}, angle)
}

// IsMesh reports whether the node carries a shape.
func (n *Node) IsMesh() bool { return n.Shape != nil }

// Graph is an arena of nodes.
type Graph struct {
	nodes []*Node
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{nodes: make([]*Node, 0, 64)}
}

func (g *Graph) alloc(n *Node) NodeID {
	g.nodes = append(g.nodes, n)
	return NodeID(len(g.nodes) - 1)
}

// NewGroup allocates an empty container node.
func (g *Graph) NewGroup(name string) NodeID {
	return g.alloc(&Node{Name: name, Pose: IdentityPose(), Visible: true, Digit: -1})
}

// NewMesh allocates a leaf node.
func (g *Graph) NewMesh(name string, s Shape, m *Material) NodeID {
	return g.alloc(&Node{Name: name, Pose: IdentityPose(), Visible: true, Shape: s, Material: m, Digit: -1})
}

// Node returns the node for id, or nil if id is out of range.
func (g *Graph) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(g.nodes) {
		return nil
	}
	return g.nodes[id]
}

// Len returns the number of allocated nodes, attached or not.
func (g *Graph) Len() int { return len(g.nodes) }

// Children returns a copy of the child list of id.
func (g *Graph) Children(id NodeID) []NodeID {
	n := g.Node(id)
	if n == nil {
		return nil
	}
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out
}

// Add appends children to parent, in order.
func (g *Graph) Add(parent NodeID, kids ...NodeID) error {
	p := g.Node(parent)
	if p == nil {
		return ErrUnknownNode
	}
	for _, k := range kids {
		if g.Node(k) == nil {
			return ErrUnknownNode
		}
	}
	p.children = append(p.children, kids...)
	return nil
}

// Remove detaches child from parent. It reports whether child was attached.
func (g *Graph) Remove(parent, child NodeID) bool {
	p := g.Node(parent)
	if p == nil {
		return false
	}
	for i, k := range p.children {
		if k == child {
			p.children = append(p.children[:i], p.children[i+1:]...)
			return true
		}
	}
	return false
}

// Clone deep-copies the subtree rooted at id and returns the new root.
func (g *Graph) Clone(id NodeID) NodeID {
	src := g.Node(id)
	if src == nil {
		return None
	}
	cp := *src
	cp.children = make([]NodeID, 0, len(src.children))
	for _, k := range src.children {
		cp.children = append(cp.children, g.Clone(k))
	}
	return g.alloc(&cp)
}

// Walk visits visible nodes under root depth-first in child order, passing
// each node's world transform. Returning false from fn skips the node's
// children.
func (g *Graph) Walk(root NodeID, fn func(id NodeID, n *Node, world Affine) bool) {
	g.walk(root, Identity(), fn)
}

func (g *Graph) walk(id NodeID, parent Affine, fn func(NodeID, *Node, Affine) bool) {
	n := g.Node(id)
	if n == nil || !n.Visible {
		return
	}
	world := parent.Mul(n.Pose.Affine())
	if !fn(id, n, world) {
		return
	}
	for _, k := range n.children {
		g.walk(k, world, fn)
	}
}

// CountMeshes counts visible leaf nodes under root.
func (g *Graph) CountMeshes(root NodeID) int {
	count := 0
	g.Walk(root, func(_ NodeID, n *Node, _ Affine) bool {
		if n.IsMesh() {
			count++
		}
		return true
	})
	return count
}

// CountGroups counts visible container nodes under root, root included.
func (g *Graph) CountGroups(root NodeID) int {
	count := 0
	g.Walk(root, func(_ NodeID, n *Node, _ Affine) bool {
		if !n.IsMesh() {
			count++
		}
		return true
	})
	return count
}

// Depth returns the number of nodes on the longest root-to-leaf path.
func (g *Graph) Depth(root NodeID) int {
	n := g.Node(root)
	if n == nil {
		return 0
	}
	best := 0
	for _, k := range n.children {
		if d := g.Depth(k); d > best {
			best = d
		}
	}
	return best + 1
}
