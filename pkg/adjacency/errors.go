package adjacency

import "github.com/pkg/errors"

// Errors
var (
	ErrInvalidMesh = errors.New("invalid mesh")
	ErrNotReady    = errors.New("adjacency graph not ready")
)
