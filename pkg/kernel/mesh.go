package kernel

import "github.com/chazu/vertexlight/pkg/mesh"

// Mesh is a triangle mesh in the flat layout renderers consume: 3 floats per
// vertex in Vertices and Normals, 3 indices per triangle in Indices.
type Mesh struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// Raw converts the mesh to the indexed form the adjacency builder takes.
func (m *Mesh) Raw() mesh.RawMesh {
	return mesh.FromFlat(m.Vertices, m.Indices)
}
