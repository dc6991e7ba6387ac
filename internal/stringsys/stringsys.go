// Package stringsys builds the recursive digit-expansion tree of all base-b
// strings of length at most n over a set of digits.
//
// Level n holds one copy of the layout's digits graph plus, for every digit
// i, a copy of level n-1 placed in digit i's slot. Level 1 is a lone digits
// graph. Every copy is a deep clone so sibling transforms never alias.
package stringsys

import (
	"fmt"
	"slices"

	"github.com/michaeljayl/graphicsn/internal/config"
	"github.com/michaeljayl/graphicsn/internal/layout"
	"github.com/michaeljayl/graphicsn/internal/scene"
)

// DigitsName names the root of every digits-graph copy in a built tree.
const DigitsName = "digits"

// Build adds the tree for (n, base, model, include) to g and returns its
// root. include is read as a set: order and duplicates do not matter.
// A nil mat colors each digit by hue. Invalid input is rejected with a
// *config.InvalidParameterError and leaves g untouched.
func Build(g *scene.Graph, n, base int, model layout.Model, include []int, mat *scene.Material) (scene.NodeID, error) {
	digits, err := normalize(n, base, model, include)
	if err != nil {
		return scene.None, err
	}

	proto := model.DigitsGraph(g, base, digits, mat)
	g.Node(proto).Name = DigitsName

	b := builder{g: g, base: base, model: model, digits: digits, proto: proto}
	return b.build(n), nil
}

type builder struct {
	g      *scene.Graph
	base   int
	model  layout.Model
	digits []int
	proto  scene.NodeID
}

func (b *builder) build(n int) scene.NodeID {
	if n <= 1 {
		return b.g.Clone(b.proto)
	}
	child := b.build(n - 1)

	root := b.g.NewGroup(fmt.Sprintf("level %d", n))
	b.g.Add(root, b.g.Clone(b.proto))
	for _, i := range b.digits {
		b.g.Add(root, b.model.Transform(b.g, i, b.base, b.g.Clone(child), n))
	}
	return root
}

func normalize(n, base int, model layout.Model, include []int) ([]int, error) {
	if n < 1 {
		return nil, &config.InvalidParameterError{Field: "n", Value: n, Reason: "want at least 1"}
	}
	if base < 2 {
		return nil, &config.InvalidParameterError{Field: "base", Value: base, Reason: "want at least 2"}
	}
	if !model.Supports(base) {
		return nil, &config.InvalidParameterError{
			Field:  "base",
			Value:  base,
			Reason: fmt.Sprintf("%s supports at most %d digits", model, model.MaxBase()),
		}
	}
	digits := slices.Clone(include)
	for _, d := range digits {
		if d < 0 || d >= base {
			return nil, &config.InvalidParameterError{
				Field:  "digit",
				Value:  d,
				Reason: fmt.Sprintf("want 0..%d", base-1),
			}
		}
	}
	slices.Sort(digits)
	return slices.Compact(digits), nil
}
