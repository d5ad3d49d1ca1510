package highlight

import (
	"github.com/chazu/vertexlight/pkg/adjacency"
	"github.com/pkg/errors"
)

// Errors
var (
	// ErrNotReady is returned by Add and Remove before the adjacency graph
	// has been published.
	ErrNotReady = adjacency.ErrNotReady

	ErrUnknownIndex = errors.New("vertex index out of range")
	ErrMeshMismatch = errors.New("graph and vertex snapshot disagree on vertex count")
)
