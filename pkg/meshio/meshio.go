// Package meshio reads raw triangle meshes from glTF 2.0 files.
package meshio

import (
	"io"

	"github.com/chazu/vertexlight/pkg/mesh"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Errors
var (
	ErrNoGeometry   = errors.New("gltf document has no triangle geometry")
	ErrNoPositions  = errors.New("gltf primitive has no POSITION attribute")
	ErrNotTriangles = errors.New("gltf primitive is not a triangle list")
	ErrBadAccessor  = errors.New("gltf primitive references a missing accessor")
)

// Load reads a .gltf or .glb file.
func Load(path string) (mesh.RawMesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return mesh.RawMesh{}, errors.Wrapf(err, "meshio: open %s", path)
	}
	return FromDocument(doc)
}

// Decode reads a glTF document from r.
func Decode(r io.Reader) (mesh.RawMesh, error) {
	doc := gltf.NewDocument()
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return mesh.RawMesh{}, errors.Wrap(err, "meshio: decode")
	}
	return FromDocument(doc)
}

// FromDocument concatenates every triangle primitive of every mesh in doc
// into a single RawMesh, offsetting each primitive's indices by the vertices
// already emitted. Node transforms are not applied. Primitives without an
// index accessor are treated as sequential triangle lists.
func FromDocument(doc *gltf.Document) (mesh.RawMesh, error) {
	var out mesh.RawMesh
	for mi, m := range doc.Meshes {
		for pi, p := range m.Primitives {
			if p.Mode != gltf.PrimitiveTriangles {
				return mesh.RawMesh{}, errors.Wrapf(ErrNotTriangles, "mesh %d primitive %d", mi, pi)
			}
			posIdx, ok := p.Attributes[gltf.POSITION]
			if !ok {
				return mesh.RawMesh{}, errors.Wrapf(ErrNoPositions, "mesh %d primitive %d", mi, pi)
			}

			if !hasAccessor(doc, posIdx) {
				return mesh.RawMesh{}, errors.Wrapf(ErrBadAccessor, "mesh %d primitive %d POSITION accessor %d", mi, pi, posIdx)
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return mesh.RawMesh{}, errors.Wrapf(err, "meshio: mesh %d primitive %d positions", mi, pi)
			}

			base := len(out.Vertices)
			for _, pos := range positions {
				out.Vertices = append(out.Vertices, mesh.Position(pos))
			}

			if p.Indices == nil {
				for i := range positions {
					out.Triangles = append(out.Triangles, base+i)
				}
				continue
			}

			if !hasAccessor(doc, *p.Indices) {
				return mesh.RawMesh{}, errors.Wrapf(ErrBadAccessor, "mesh %d primitive %d indices accessor %d", mi, pi, *p.Indices)
			}
			indices, err := modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
			if err != nil {
				return mesh.RawMesh{}, errors.Wrapf(err, "meshio: mesh %d primitive %d indices", mi, pi)
			}
			for _, idx := range indices {
				out.Triangles = append(out.Triangles, base+int(idx))
			}
		}
	}

	if out.IsEmpty() {
		return mesh.RawMesh{}, ErrNoGeometry
	}
	return out, nil
}

func hasAccessor(doc *gltf.Document, i int) bool {
	return i >= 0 && i < len(doc.Accessors) && doc.Accessors[i] != nil
}
