package adjacency

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/chazu/vertexlight/pkg/mesh"
	"github.com/plan-systems/klog"
)

// Builder runs Build on its own goroutine. There is no cancellation; the
// build always runs to completion.
type Builder struct {
	graph atomic.Pointer[Graph]
	ready atomic.Bool
	done  chan struct{}
	err   error // written before done is closed
}

// Start copies m and begins building its graph in the background.
func Start(m mesh.RawMesh) *Builder {
	b := &Builder{done: make(chan struct{})}
	go b.run(m.Clone())
	return b
}

func (b *Builder) run(m mesh.RawMesh) {
	defer close(b.done)

	klog.V(2).Infof("adjacency: generating neighbour graph (%d vertices, %d triangles)",
		m.VertexCount(), m.TriangleCount())
	start := time.Now()

	g, err := Build(m.Vertices, m.Triangles)
	if err != nil {
		klog.Warningf("adjacency: build failed: %v", err)
		b.err = err
		return
	}

	b.graph.Store(g)
	b.ready.Store(true)
	klog.V(2).Infof("adjacency: finished in %s (%d unique positions)", time.Since(start), g.UniqueCount())
}

// Ready is the readiness flag: true once a graph has been published.
// It stays false if the build failed.
func (b *Builder) Ready() bool {
	return b.ready.Load()
}

// Done is closed when the build finishes, successfully or not.
func (b *Builder) Done() <-chan struct{} {
	return b.done
}

// Graph returns the finished graph. While the build is running it returns
// ErrNotReady; after a failed build it returns the build error.
func (b *Builder) Graph() (*Graph, error) {
	if g := b.graph.Load(); g != nil {
		return g, nil
	}
	select {
	case <-b.done:
		return nil, b.err
	default:
		return nil, ErrNotReady
	}
}

// Wait blocks until the build finishes or ctx is done.
func (b *Builder) Wait(ctx context.Context) (*Graph, error) {
	select {
	case <-b.done:
		return b.Graph()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
