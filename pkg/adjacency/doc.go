// Package adjacency builds vertex neighbour graphs from indexed triangle
// meshes.
//
// Vertices that share an exact position but occupy different array slots
// are merged: the first slot seen at a position (its canonical slot) owns
// the neighbour list for every slot at that position. Recorded neighbours
// are raw triangle indices and are not canonicalised, so a list may name
// either slot of a duplicated position. Use Graph.Canonical when positional
// identity matters.
//
// Build runs synchronously. Start runs it on a goroutine over a private copy
// of the mesh and publishes the finished graph in one atomic store, so a
// reader sees either no graph or a complete one.
package adjacency
