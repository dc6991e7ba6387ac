package scene

import "gonum.org/v1/gonum/spatial/r3"

// ShapeKind identifies the geometry carried by a leaf node.
type ShapeKind int

const (
	KindBox ShapeKind = iota
	KindCylinder
	KindSphere
	KindSurface
)

func (k ShapeKind) String() string {
	switch k {
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	case KindSphere:
		return "sphere"
	case KindSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// Shape is opaque geometry centred on the node origin. The scene graph never
// looks inside; hosts switch on Kind to draw it.
type Shape interface {
	Kind() ShapeKind
}

// Box is an axis-aligned box with extents W (x), H (y) and D (z).
type Box struct {
	W, H, D float64
}

func (Box) Kind() ShapeKind { return KindBox }

// Cylinder stands along y with the given height.
type Cylinder struct {
	Radius   float64
	Height   float64
	Segments int
}

func (Cylinder) Kind() ShapeKind { return KindCylinder }

// Sphere is a UV sphere.
type Sphere struct {
	Radius   float64
	Segments int
}

func (Sphere) Kind() ShapeKind { return KindSphere }

// Surface is a sampled parametric surface. Grid[i][j] is the point at
// u=i/(len(Grid)-1), v=j/(len(Grid[i])-1). The grid is shared between clones.
type Surface struct {
	Grid [][]r3.Vec
}

func (Surface) Kind() ShapeKind { return KindSurface }
