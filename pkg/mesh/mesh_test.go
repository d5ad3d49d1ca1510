package mesh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionKey(t *testing.T) {
	a := Position{1, 2, 3}
	b := Position{1, 2, 3}
	assert.Equal(t, a.Key(), b.Key())

	negZero := float32(math.Copysign(0, -1))
	assert.NotEqual(t, Position{0, 0, 0}.Key(), Position{negZero, 0, 0}.Key(),
		"signed zeros must not collapse")

	nan := float32(math.NaN())
	assert.Equal(t, Position{nan, 0, 0}.Key(), Position{nan, 0, 0}.Key(),
		"identical NaN bits must collapse")
}

func TestFromFlat(t *testing.T) {
	m := FromFlat(
		[]float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 9},
		[]uint32{0, 1, 2},
	)
	require.Equal(t, 3, m.VertexCount())
	require.Equal(t, 1, m.TriangleCount())
	assert.Equal(t, Position{1, 0, 0}, m.Vertices[1])
	assert.Equal(t, []int{0, 1, 2}, m.Triangles)
	assert.False(t, m.IsEmpty())
}

func TestCloneIsIndependent(t *testing.T) {
	m := RawMesh{
		Vertices:  []Position{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Triangles: []int{0, 1, 2},
	}
	c := m.Clone()
	c.Vertices[0] = Position{5, 5, 5}
	c.Triangles[0] = 2

	assert.Equal(t, Position{0, 0, 0}, m.Vertices[0])
	assert.Equal(t, 0, m.Triangles[0])
}

func TestFlattenPositions(t *testing.T) {
	got := FlattenPositions([]Position{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, got)
	assert.Empty(t, FlattenPositions(nil))
}
