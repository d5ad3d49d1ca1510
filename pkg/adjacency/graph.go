package adjacency

import (
	"github.com/chazu/vertexlight/pkg/mesh"
	"github.com/pkg/errors"
)

// Graph maps original vertex slots to the raw slots they share a triangle
// with. It is immutable once built and safe for concurrent readers.
type Graph struct {
	neighbours [][]int // nil for slots that are not canonical
	canonical  []int
	unique     int
}

// Build constructs the adjacency graph for an indexed triangle list.
//
// Triangles are processed in order. Each corner is resolved to the first slot
// ever seen at its position, and the other two corners of the face (as raw
// slots) are appended to that canonical slot's list. Lists keep insertion
// order and repeat a neighbour once per shared face.
//
// The whole triangle array is validated before any work is done; on failure
// the returned error wraps ErrInvalidMesh and no graph is returned.
func Build(vertices []mesh.Position, triangles []int) (*Graph, error) {
	if err := validate(len(vertices), triangles); err != nil {
		return nil, err
	}

	g := &Graph{
		neighbours: make([][]int, len(vertices)),
		canonical:  make([]int, len(vertices)),
	}

	byPosition := make(map[mesh.Key]int, len(vertices))
	resolve := func(slot int) int {
		k := vertices[slot].Key()
		if c, ok := byPosition[k]; ok {
			return c
		}
		byPosition[k] = slot
		return slot
	}

	for t := 0; t < len(triangles); t += 3 {
		a, b, c := triangles[t], triangles[t+1], triangles[t+2]
		ca, cb, cc := resolve(a), resolve(b), resolve(c)

		g.neighbours[ca] = append(g.neighbours[ca], b, c)
		g.neighbours[cb] = append(g.neighbours[cb], a, c)
		g.neighbours[cc] = append(g.neighbours[cc], a, b)
	}

	// Slots no triangle references still canonicalise through their position
	// when some referenced slot shares it.
	for i, p := range vertices {
		if c, ok := byPosition[p.Key()]; ok {
			g.canonical[i] = c
		} else {
			g.canonical[i] = i
		}
	}
	g.unique = len(byPosition)

	return g, nil
}

func validate(vertexCount int, triangles []int) error {
	if len(triangles)%3 != 0 {
		return errors.Wrapf(ErrInvalidMesh, "triangle index count %d is not a multiple of 3", len(triangles))
	}
	for i, idx := range triangles {
		if idx < 0 || idx >= vertexCount {
			return errors.Wrapf(ErrInvalidMesh, "triangle %d: index %d out of range [0,%d)", i/3, idx, vertexCount)
		}
	}
	return nil
}

// VertexCount returns the number of original vertex slots.
func (g *Graph) VertexCount() int {
	return len(g.canonical)
}

// UniqueCount returns the number of distinct positions referenced by
// triangles.
func (g *Graph) UniqueCount() int {
	return g.unique
}

// Canonical returns the slot that owns the neighbour list for slot i's
// position. Out-of-range slots are returned unchanged.
func (g *Graph) Canonical(i int) int {
	if i < 0 || i >= len(g.canonical) {
		return i
	}
	return g.canonical[i]
}

// IsCanonical reports whether slot i owns a neighbour list.
func (g *Graph) IsCanonical(i int) bool {
	return i >= 0 && i < len(g.canonical) && g.canonical[i] == i
}

// Neighbours returns the list stored under slot i itself. It is empty for
// non-canonical slots. The returned slice must not be modified.
func (g *Graph) Neighbours(i int) []int {
	if i < 0 || i >= len(g.neighbours) {
		return nil
	}
	return g.neighbours[i]
}

// Lookup returns the list stored under Canonical(i).
func (g *Graph) Lookup(i int) []int {
	return g.Neighbours(g.Canonical(i))
}
