package meshio

import (
	"strings"
	"testing"

	"github.com/chazu/vertexlight/pkg/mesh"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addPrimitive(doc *gltf.Document, positions [][3]float32, indices []uint32) {
	prim := &gltf.Primitive{
		Attributes: map[string]int{gltf.POSITION: modeler.WritePosition(doc, positions)},
	}
	if indices != nil {
		prim.Indices = gltf.Index(modeler.WriteIndices(doc, indices))
	}
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{Primitives: []*gltf.Primitive{prim}})
}

func TestFromDocumentConcatenatesPrimitives(t *testing.T) {
	doc := gltf.NewDocument()
	addPrimitive(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}}, []uint32{0, 1, 2, 2, 1, 3})
	addPrimitive(doc, [][3]float32{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}}, nil)

	m, err := FromDocument(doc)
	require.NoError(t, err)

	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, mesh.Position{1, 1, 0}, m.Vertices[3])
	assert.Equal(t, mesh.Position{0, 1, 1}, m.Vertices[6])
	assert.Equal(t, []int{0, 1, 2, 2, 1, 3, 4, 5, 6}, m.Triangles)
}

func TestFromDocumentErrors(t *testing.T) {
	empty := gltf.NewDocument()
	_, err := FromDocument(empty)
	assert.True(t, errors.Is(err, ErrNoGeometry))

	lines := gltf.NewDocument()
	addPrimitive(lines, [][3]float32{{0, 0, 0}, {1, 0, 0}}, nil)
	lines.Meshes[0].Primitives[0].Mode = gltf.PrimitiveLines
	_, err = FromDocument(lines)
	assert.True(t, errors.Is(err, ErrNotTriangles))

	noPos := gltf.NewDocument()
	noPos.Meshes = append(noPos.Meshes, &gltf.Mesh{Primitives: []*gltf.Primitive{{Attributes: map[string]int{}}}})
	_, err = FromDocument(noPos)
	assert.True(t, errors.Is(err, ErrNoPositions))
}

func TestFromDocumentMissingAccessor(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"asset":{"version":"2.0"},"meshes":[{"primitives":[{"attributes":{"POSITION":5}}]}]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadAccessor), "got %v", err)

	badIndices := gltf.NewDocument()
	addPrimitive(badIndices, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, []uint32{0, 1, 2})
	badIndices.Meshes[0].Primitives[0].Indices = gltf.Index(99)
	_, err = FromDocument(badIndices)
	assert.True(t, errors.Is(err, ErrBadAccessor), "got %v", err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.glb")
	assert.Error(t, err)
}
