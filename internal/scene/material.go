package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Side selects which faces of a surface a material paints.
type Side int

const (
	FrontSide Side = iota
	BackSide
	DoubleSide
)

// Material is shared by pointer between all nodes that use it.
type Material struct {
	Color     colorful.Color
	Opacity   float64
	Shininess float64
	Side      Side
}

// NewMaterial returns an opaque material of the given color.
func NewMaterial(c colorful.Color) *Material {
	return &Material{Color: c, Opacity: 1, Shininess: 80}
}

// HueMaterial returns the material for digit i of base: hue i/base at full
// saturation and half lightness.
func HueMaterial(i, base int) *Material {
	return NewMaterial(colorful.Hsl(360*float64(i)/float64(base), 1.0, 0.5))
}

// ParseColor parses a #rrggbb string.
func ParseColor(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}

// Hex returns the material color as #rrggbb.
func (m *Material) Hex() string {
	return m.Color.Hex()
}
