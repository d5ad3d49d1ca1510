// Package mesh holds the raw triangle data that adjacency graphs and
// highlight sets are built from.
package mesh

import "math"

// Position is a vertex coordinate in mesh space.
type Position [3]float32

// Key is the exact bit pattern of a Position. Two positions with the same
// key are the same logical vertex; -0 and +0 differ, and a NaN only matches
// a NaN with identical payload bits.
type Key [3]uint32

// Key returns the deduplication key for p.
func (p Position) Key() Key {
	return Key{
		math.Float32bits(p[0]),
		math.Float32bits(p[1]),
		math.Float32bits(p[2]),
	}
}

// RawMesh is an indexed triangle list. Triangles holds three indices into
// Vertices per face.
type RawMesh struct {
	Vertices  []Position
	Triangles []int
}

// VertexCount returns the number of vertex slots.
func (m RawMesh) VertexCount() int {
	return len(m.Vertices)
}

// TriangleCount returns the number of complete faces.
func (m RawMesh) TriangleCount() int {
	return len(m.Triangles) / 3
}

// IsEmpty reports whether the mesh has no faces.
func (m RawMesh) IsEmpty() bool {
	return len(m.Triangles) == 0
}

// Clone returns a deep copy whose slices share nothing with m.
func (m RawMesh) Clone() RawMesh {
	return RawMesh{
		Vertices:  append([]Position(nil), m.Vertices...),
		Triangles: append([]int(nil), m.Triangles...),
	}
}

// FromFlat builds a RawMesh from flat float/uint arrays as produced by
// renderers and geometry kernels: three floats per vertex, three indices
// per triangle. A trailing partial vertex is dropped.
func FromFlat(vertices []float32, indices []uint32) RawMesh {
	m := RawMesh{
		Vertices:  make([]Position, len(vertices)/3),
		Triangles: make([]int, len(indices)),
	}
	for i := range m.Vertices {
		m.Vertices[i] = Position{vertices[i*3], vertices[i*3+1], vertices[i*3+2]}
	}
	for i, idx := range indices {
		m.Triangles[i] = int(idx)
	}
	return m
}

// FlattenPositions writes positions as [x0,y0,z0, x1,y1,z1, ...].
func FlattenPositions(ps []Position) []float32 {
	out := make([]float32, 0, len(ps)*3)
	for _, p := range ps {
		out = append(out, p[0], p[1], p[2])
	}
	return out
}
