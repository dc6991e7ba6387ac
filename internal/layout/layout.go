// Package layout is the catalog of digit layouts used by the string system.
//
// Each [Model] knows how to lay out one unit per digit (DigitsGraph) and how
// to nest a child structure into digit i's slot (Transform). The two agree:
// the slot Transform gives digit i lines up with the unit DigitsGraph gives
// it, so every level of the recursion is a scaled copy of the one above.
package layout

import (
	"errors"
	"fmt"

	"github.com/michaeljayl/graphicsn/internal/scene"
)

// ErrUnknownModel is returned by Parse for names outside the catalog.
var ErrUnknownModel = errors.New("layout: unknown model")

type Model int

const (
	Keyboard Model = iota
	KeyboardLengthened
	KeyboardLofted
	Boxes
	BoxesLofted
	Squares
	SquaresLofted
	Disks
	DisksLofted
	Spheres

	numModels
)

type entry struct {
	name      string
	maxBase   int // 0 means unbounded
	digits    func(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID
	transform func(g *scene.Graph, i, base int, child scene.NodeID) scene.NodeID
}

var catalog = [numModels]entry{
	Keyboard:           {name: "keyboard", digits: keyboardDigits, transform: keyboardSlot},
	KeyboardLengthened: {name: "keyboard lengthened", digits: lengthenedDigits, transform: lengthenedSlot},
	KeyboardLofted:     {name: "keyboard lofted", digits: keyboardLoftedDigits, transform: keyboardLoftedSlot},
	Boxes:              {name: "boxes", digits: boxesDigits, transform: boxesSlot},
	BoxesLofted:        {name: "boxes lofted", digits: boxesLoftedDigits, transform: boxesLoftedSlot},
	Squares:            {name: "squares", digits: squaresDigits, transform: squaresSlot},
	SquaresLofted:      {name: "squares lofted", digits: squaresLoftedDigits, transform: squaresLoftedSlot},
	Disks:              {name: "disks", digits: disksDigits, transform: disksSlot},
	DisksLofted:        {name: "disks lofted", digits: disksLoftedDigits, transform: disksLoftedSlot},
	Spheres:            {name: "spheres", maxBase: len(spherePositions), digits: spheresDigits, transform: spheresSlot},
}

// Models returns every model in menu order.
func Models() []Model {
	out := make([]Model, numModels)
	for i := range out {
		out[i] = Model(i)
	}
	return out
}

// Names returns the model names in menu order.
func Names() []string {
	names := make([]string, numModels)
	for i, e := range catalog {
		names[i] = e.name
	}
	return names
}

func Parse(name string) (Model, error) {
	for i, e := range catalog {
		if e.name == name {
			return Model(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, name)
}

func (m Model) valid() bool { return m >= 0 && m < numModels }

func (m Model) String() string {
	if !m.valid() {
		return fmt.Sprintf("Model(%d)", int(m))
	}
	return catalog[m].name
}

// MaxBase returns the largest base the model can lay out, or 0 when there
// is no limit.
func (m Model) MaxBase() int {
	if !m.valid() {
		return 0
	}
	return catalog[m].maxBase
}

// Supports reports whether the model can lay out base digits.
func (m Model) Supports(base int) bool {
	if !m.valid() || base < 1 {
		return false
	}
	limit := catalog[m].maxBase
	return limit == 0 || base <= limit
}

// DigitsGraph builds one unit per digit in include. A nil mat gives each
// digit its own hue; a non-nil mat is shared by every unit.
func (m Model) DigitsGraph(g *scene.Graph, base int, include []int, mat *scene.Material) scene.NodeID {
	return catalog[m].digits(g, base, include, mat)
}

// Transform wraps child in a container placed at digit i's slot. depth is
// the recursion level being built; none of the current layouts vary with it.
func (m Model) Transform(g *scene.Graph, i, base int, child scene.NodeID, depth int) scene.NodeID {
	return catalog[m].transform(g, i, base, child)
}

// unit allocates the leaf for digit i and attaches it to parent.
func unit(g *scene.Graph, parent scene.NodeID, s scene.Shape, i, base int, mat *scene.Material) *scene.Node {
	if mat == nil {
		mat = scene.HueMaterial(i, base)
	}
	id := g.NewMesh(fmt.Sprintf("digit %d", i), s, mat)
	n := g.Node(id)
	n.Digit = i
	g.Add(parent, id)
	return n
}

// slot allocates a wrapper for digit i holding child.
func slot(g *scene.Graph, i int, child scene.NodeID) (scene.NodeID, *scene.Node) {
	id := g.NewGroup(fmt.Sprintf("slot %d", i))
	n := g.Node(id)
	n.Digit = i
	g.Add(id, child)
	return id, n
}
