// Package highlight maintains the line buffers that outline a set of seed
// vertices and their direct neighbours.
package highlight

import (
	"github.com/chazu/vertexlight/pkg/adjacency"
	"github.com/chazu/vertexlight/pkg/mesh"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// GraphSource hands out the adjacency graph once it exists. It returns
// ErrNotReady while the graph is still being built. *adjacency.Builder
// satisfies it.
type GraphSource interface {
	Graph() (*adjacency.Graph, error)
}

// Sink receives the line buffers after every successful mutation.
type Sink interface {
	SetLines(Lines)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Lines)

// SetLines calls f(l).
func (f SinkFunc) SetLines(l Lines) { f(l) }

// Lines is a snapshot of the highlight geometry. Indices is a flat list of
// pairs into Vertices; each pair is one independent line segment.
type Lines struct {
	Vertices []mesh.Position
	Indices  []int
}

// SegmentCount returns the number of line segments.
func (l Lines) SegmentCount() int {
	return len(l.Indices) / 2
}

// Option configures a Set.
type Option func(*Set)

// WithSink registers a Sink that is handed a fresh Lines snapshot after every
// Add or Remove that changes state.
func WithSink(s Sink) Option {
	return func(set *Set) {
		set.sink = s
	}
}

// Set is the highlight state for one mesh.
//
// Buffer slots are append-only: once an original index has a slot it keeps
// it for the life of the Set, and Remove only drops line segments. Set is not
// safe for concurrent use; callers serialise Add and Remove.
type Set struct {
	src       GraphSource
	positions []mesh.Position

	vertexBuffer []mesh.Position
	indexRemap   map[int]int
	lineIndices  []int
	active       *treeset.Set

	sink Sink
}

// New creates an empty Set over a copy of the mesh vertex positions.
func New(src GraphSource, vertices []mesh.Position, opts ...Option) *Set {
	s := &Set{
		src:        src,
		positions:  append([]mesh.Position(nil), vertices...),
		indexRemap: make(map[int]int),
		active:     treeset.NewWithIntComparator(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add highlights index and its neighbours. Adding an active index is a
// no-op. Segments are appended for every entry in the index's neighbour
// list, duplicates included; segments of other seeds are left alone.
func (s *Set) Add(index int) error {
	g, err := s.graph(index)
	if err != nil {
		return err
	}
	if s.active.Contains(index) {
		return nil
	}

	from := s.slot(index)
	for _, n := range g.Neighbours(index) {
		s.lineIndices = append(s.lineIndices, from, s.slot(n))
	}
	s.active.Add(index)

	s.publish()
	return nil
}

// Remove drops the segments that start at index's slot. The slot itself and
// its position stay in the vertex buffer, and segments from other seeds that
// end at index are kept. Removing an index that is not active is a no-op.
func (s *Set) Remove(index int) error {
	if _, err := s.graph(index); err != nil {
		return err
	}
	if !s.active.Contains(index) {
		return nil
	}

	from := s.indexRemap[index]
	kept := s.lineIndices[:0]
	for i := 0; i+1 < len(s.lineIndices); i += 2 {
		if s.lineIndices[i] == from {
			continue
		}
		kept = append(kept, s.lineIndices[i], s.lineIndices[i+1])
	}
	s.lineIndices = kept
	s.active.Remove(index)

	s.publish()
	return nil
}

// Toggle adds index if it is inactive and removes it otherwise. It reports
// whether index is active afterwards.
func (s *Set) Toggle(index int) (bool, error) {
	if s.IsActive(index) {
		return false, s.Remove(index)
	}
	if err := s.Add(index); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes every active seed in ascending order.
func (s *Set) Clear() error {
	for _, index := range s.Seeds() {
		if err := s.Remove(index); err != nil {
			return err
		}
	}
	return nil
}

// IsActive reports whether index is currently a seed.
func (s *Set) IsActive(index int) bool {
	return s.active.Contains(index)
}

// Seeds returns the active seeds in ascending order.
func (s *Set) Seeds() []int {
	seeds := make([]int, 0, s.active.Size())
	for _, v := range s.active.Values() {
		seeds = append(seeds, v.(int))
	}
	return seeds
}

// Slot returns the vertex buffer slot assigned to an original index.
func (s *Set) Slot(index int) (int, bool) {
	slot, ok := s.indexRemap[index]
	return slot, ok
}

// Lines returns a copy of the current buffers.
func (s *Set) Lines() Lines {
	return Lines{
		Vertices: append([]mesh.Position{}, s.vertexBuffer...),
		Indices:  append([]int{}, s.lineIndices...),
	}
}

// graph checks that index can be operated on and returns the published graph.
func (s *Set) graph(index int) (*adjacency.Graph, error) {
	g, err := s.src.Graph()
	if err != nil {
		klog.Warningf("highlight: rejecting index %d: %v", index, err)
		return nil, err
	}
	if g.VertexCount() != len(s.positions) {
		return nil, errors.Wrapf(ErrMeshMismatch, "graph has %d vertices, snapshot has %d", g.VertexCount(), len(s.positions))
	}
	if index < 0 || index >= len(s.positions) {
		return nil, errors.Wrapf(ErrUnknownIndex, "index %d not in [0,%d)", index, len(s.positions))
	}
	return g, nil
}

// slot resolves or creates the buffer slot for an original index.
func (s *Set) slot(index int) int {
	if slot, ok := s.indexRemap[index]; ok {
		return slot
	}
	s.vertexBuffer = append(s.vertexBuffer, s.positions[index])
	slot := len(s.vertexBuffer) - 1
	s.indexRemap[index] = slot
	return slot
}

func (s *Set) publish() {
	if s.sink != nil {
		s.sink.SetLines(s.Lines())
	}
}
