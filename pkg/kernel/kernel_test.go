package kernel

import (
	"testing"

	"github.com/chazu/vertexlight/pkg/mesh"
)

// --- Mesh helper method tests ---

func TestMeshVertexCount(t *testing.T) {
	tests := []struct {
		name     string
		vertices []float32
		want     int
	}{
		{"empty", nil, 0},
		{"one vertex", []float32{1, 2, 3}, 1},
		{"four vertices", []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Vertices: tt.vertices}
			if got := m.VertexCount(); got != tt.want {
				t.Errorf("VertexCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshTriangleCount(t *testing.T) {
	tests := []struct {
		name    string
		indices []uint32
		want    int
	}{
		{"empty", nil, 0},
		{"one triangle", []uint32{0, 1, 2}, 1},
		{"two triangles", []uint32{0, 1, 2, 2, 3, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &Mesh{Indices: tt.indices}
			if got := m.TriangleCount(); got != tt.want {
				t.Errorf("TriangleCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMeshIsEmpty(t *testing.T) {
	if !(&Mesh{}).IsEmpty() {
		t.Error("IsEmpty() = false for empty mesh, want true")
	}
	if (&Mesh{Vertices: []float32{1, 2, 3}}).IsEmpty() {
		t.Error("IsEmpty() = true for non-empty mesh, want false")
	}
}

func TestMeshRaw(t *testing.T) {
	m := &Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 1, 0},
		Indices:  []uint32{0, 1, 2, 2, 3, 0},
	}
	raw := m.Raw()
	if raw.VertexCount() != 4 {
		t.Fatalf("VertexCount() = %d, want 4", raw.VertexCount())
	}
	if raw.Vertices[2] != (mesh.Position{1, 1, 0}) {
		t.Errorf("Vertices[2] = %v, want [1 1 0]", raw.Vertices[2])
	}
	want := []int{0, 1, 2, 2, 3, 0}
	for i, idx := range raw.Triangles {
		if idx != want[i] {
			t.Errorf("Triangles[%d] = %d, want %d", i, idx, want[i])
		}
	}
}

// --- Primitive dispatch with a stub kernel ---

type stubSolid struct {
	kind string
	dims [3]float64
}

func (s *stubSolid) BoundingBox() (min, max [3]float64) {
	return [3]float64{}, s.dims
}

type stubKernel struct{}

func (k *stubKernel) Box(x, y, z float64) Solid {
	return &stubSolid{kind: PrimitiveBox, dims: [3]float64{x, y, z}}
}

func (k *stubKernel) Sphere(r float64) Solid {
	return &stubSolid{kind: PrimitiveSphere, dims: [3]float64{r, r, r}}
}

func (k *stubKernel) Cylinder(h, r float64) Solid {
	return &stubSolid{kind: PrimitiveCylinder, dims: [3]float64{r, r, h}}
}

// The CSG stubs record the operation tree in kind and keep a's dims.
func (k *stubKernel) Union(a, b Solid) Solid {
	sa, sb := a.(*stubSolid), b.(*stubSolid)
	return &stubSolid{kind: "union(" + sa.kind + "," + sb.kind + ")", dims: sa.dims}
}

func (k *stubKernel) Difference(a, b Solid) Solid {
	sa, sb := a.(*stubSolid), b.(*stubSolid)
	return &stubSolid{kind: "difference(" + sa.kind + "," + sb.kind + ")", dims: sa.dims}
}

func (k *stubKernel) Translate(s Solid, _, _, _ float64) Solid {
	ss := s.(*stubSolid)
	return &stubSolid{kind: "move(" + ss.kind + ")", dims: ss.dims}
}

func (k *stubKernel) ToMesh(_ Solid) (*Mesh, error) { return &Mesh{}, nil }

var _ Kernel = (*stubKernel)(nil)

func TestPrimitive(t *testing.T) {
	tests := []struct {
		kind string
		want [3]float64
	}{
		{PrimitiveBox, [3]float64{4, 4, 4}},
		{PrimitiveSphere, [3]float64{2, 2, 2}},
		{PrimitiveCylinder, [3]float64{1, 1, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, err := Primitive(&stubKernel{}, tt.kind, 4)
			if err != nil {
				t.Fatalf("Primitive() error = %v", err)
			}
			got := s.(*stubSolid)
			if got.kind != tt.kind {
				t.Errorf("kind = %q, want %q", got.kind, tt.kind)
			}
			if got.dims != tt.want {
				t.Errorf("dims = %v, want %v", got.dims, tt.want)
			}
		})
	}
}

func TestPrimitiveComposite(t *testing.T) {
	tests := []struct {
		kind string
		want string
		dims [3]float64
	}{
		{PrimitiveCapsule, "union(cylinder,union(move(sphere),move(sphere)))", [3]float64{1, 1, 2}},
		{PrimitiveDrilled, "difference(box,cylinder)", [3]float64{4, 4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			s, err := Primitive(&stubKernel{}, tt.kind, 4)
			if err != nil {
				t.Fatalf("Primitive() error = %v", err)
			}
			got := s.(*stubSolid)
			if got.kind != tt.want {
				t.Errorf("tree = %q, want %q", got.kind, tt.want)
			}
			if got.dims != tt.dims {
				t.Errorf("dims = %v, want %v", got.dims, tt.dims)
			}
		})
	}
}

func TestPrimitiveErrors(t *testing.T) {
	if _, err := Primitive(&stubKernel{}, "torus", 1); err == nil {
		t.Error("expected error for unknown primitive")
	}
	if _, err := Primitive(&stubKernel{}, PrimitiveBox, 0); err == nil {
		t.Error("expected error for zero size")
	}
}
