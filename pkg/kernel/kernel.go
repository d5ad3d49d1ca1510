// Package kernel defines the geometry kernel that produces the surfaces
// highlights are drawn over. Implementations (sdfx) hide their solid
// representation behind Solid and hand back flat triangle meshes.
package kernel

import "fmt"

// Solid is an opaque handle to a kernel solid.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel builds solids and tessellates them.
type Kernel interface {
	// Primitives, centred on the origin
	Box(x, y, z float64) Solid
	Sphere(radius float64) Solid
	Cylinder(height, radius float64) Solid

	// CSG
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid

	Translate(s Solid, x, y, z float64) Solid

	// ToMesh tessellates a solid into an unwelded triangle list.
	ToMesh(s Solid) (*Mesh, error)
}

// Primitive names accepted by Primitive.
const (
	PrimitiveBox      = "box"
	PrimitiveSphere   = "sphere"
	PrimitiveCylinder = "cylinder"
	PrimitiveCapsule  = "capsule"
	PrimitiveDrilled  = "drilled-box"
)

// Primitive builds a named primitive whose largest extent is size.
func Primitive(k Kernel, kind string, size float64) (Solid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("primitive %q: size must be positive, got %g", kind, size)
	}
	switch kind {
	case PrimitiveBox:
		return k.Box(size, size, size), nil
	case PrimitiveSphere:
		return k.Sphere(size / 2), nil
	case PrimitiveCylinder:
		return k.Cylinder(size, size/4), nil
	case PrimitiveCapsule:
		// Z-aligned: a cylinder capped by two spheres of the same radius.
		r := size / 4
		caps := k.Union(k.Translate(k.Sphere(r), 0, 0, size/4), k.Translate(k.Sphere(r), 0, 0, -size/4))
		return k.Union(k.Cylinder(size/2, r), caps), nil
	case PrimitiveDrilled:
		// Cube with a Z-aligned hole through it. The drill overshoots both
		// faces so no skin is left behind.
		return k.Difference(k.Box(size, size, size), k.Cylinder(size*1.5, size/4)), nil
	default:
		return nil, fmt.Errorf("unknown primitive %q", kind)
	}
}
