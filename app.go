package main

import (
	"context"
	"sync"

	"github.com/chazu/vertexlight/pkg/adjacency"
	"github.com/chazu/vertexlight/pkg/engine"
	"github.com/chazu/vertexlight/pkg/highlight"
	"github.com/chazu/vertexlight/pkg/kernel"
	"github.com/chazu/vertexlight/pkg/kernel/sdfx"
	"github.com/chazu/vertexlight/pkg/mesh"
	"github.com/chazu/vertexlight/pkg/meshio"
	"github.com/chazu/vertexlight/pkg/pick"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

var (
	errNoMesh = errors.New("no mesh loaded")
	errMiss   = errors.New("no surface under ray")
)

// App is the Wails backend. It owns one highlight session at a time and
// serialises every binding call, so the highlight set only ever sees one
// writer.
type App struct {
	ctx    context.Context
	engine *engine.Engine
	kernel kernel.Kernel

	mu      sync.Mutex
	surface mesh.RawMesh
	builder *adjacency.Builder
	set     *highlight.Set
	lines   highlight.Lines
}

// MeshData is the JSON-serializable surface mesh sent to the frontend.
// Normals parallels Vertices; it is empty for glTF sources, which the
// renderer shades flat.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
}

// LineData is the highlight line list: Indices holds pairs into Vertices.
type LineData struct {
	Vertices []float32 `json:"vertices"`
	Indices  []uint32  `json:"indices"`
	Seeds    []int     `json:"seeds"`
}

// RayData is a pick ray in mesh space, as unprojected by the frontend.
type RayData struct {
	Origin    [3]float32 `json:"origin"`
	Direction [3]float32 `json:"direction"`
}

// LoadResult is returned by the Load bindings.
type LoadResult struct {
	Mesh  MeshData `json:"mesh"`
	Error string   `json:"error,omitempty"`
}

// ToggleResult is returned by Add, Remove, Paint and Erase.
type ToggleResult struct {
	Lines LineData `json:"lines"`
	Seed  int      `json:"seed"`
	Error string   `json:"error,omitempty"`
}

// EvalErrorData is a JSON-serializable script error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// ScriptResult is returned by RunScript.
type ScriptResult struct {
	Lines   LineData        `json:"lines"`
	Applied int             `json:"applied"`
	Errors  []EvalErrorData `json:"errors"`
}

// NewApp creates an App that tessellates primitives with k, or with a
// default sdfx kernel when k is nil.
func NewApp(k kernel.Kernel) *App {
	if k == nil {
		k = sdfx.New()
	}
	return &App{
		engine: engine.NewEngine(),
		kernel: k,
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// LoadPrimitive tessellates a named primitive and starts a new session on it.
func (a *App) LoadPrimitive(kind string, size float64) LoadResult {
	solid, err := kernel.Primitive(a.kernel, kind, size)
	if err != nil {
		return LoadResult{Mesh: emptyMesh(), Error: err.Error()}
	}
	m, err := a.kernel.ToMesh(solid)
	if err != nil {
		klog.Errorf("tessellate %s: %v", kind, err)
		return LoadResult{Mesh: emptyMesh(), Error: "tessellation failed: " + err.Error()}
	}
	return a.begin(m.Raw(), m.Normals, kind)
}

// LoadGLTF reads a .gltf/.glb file and starts a new session on it.
func (a *App) LoadGLTF(path string) LoadResult {
	raw, err := meshio.Load(path)
	if err != nil {
		klog.Errorf("load %s: %v", path, err)
		return LoadResult{Mesh: emptyMesh(), Error: err.Error()}
	}
	return a.begin(raw, nil, path)
}

// begin replaces the current session. The adjacency graph builds in the
// background; toggles fail with a not-ready error until it is published.
func (a *App) begin(raw mesh.RawMesh, normals []float32, name string) LoadResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.surface = raw
	a.builder = adjacency.Start(raw)
	a.lines = highlight.Lines{}
	a.set = highlight.New(a.builder, raw.Vertices, highlight.WithSink(highlight.SinkFunc(func(l highlight.Lines) {
		// Sinks run inside Add/Remove, which already hold a.mu.
		a.lines = l
	})))

	indices := make([]uint32, len(raw.Triangles))
	for i, idx := range raw.Triangles {
		indices[i] = uint32(idx)
	}
	if normals == nil {
		normals = []float32{}
	}
	return LoadResult{Mesh: MeshData{
		Vertices: mesh.FlattenPositions(raw.Vertices),
		Normals:  normals,
		Indices:  indices,
		Name:     name,
	}}
}

// Ready reports whether the current session's adjacency graph is built.
func (a *App) Ready() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.builder != nil && a.builder.Ready()
}

// Add highlights vertex i.
func (a *App) Add(i int) ToggleResult {
	return a.apply(i, func(s *highlight.Set) error { return s.Add(i) })
}

// Remove drops the highlight rooted at vertex i.
func (a *App) Remove(i int) ToggleResult {
	return a.apply(i, func(s *highlight.Set) error { return s.Remove(i) })
}

// Paint highlights the vertex under a ray.
func (a *App) Paint(r RayData) ToggleResult {
	return a.picked(r, (*highlight.Set).Add)
}

// Erase removes the highlight rooted at the vertex under a ray.
func (a *App) Erase(r RayData) ToggleResult {
	return a.picked(r, (*highlight.Set).Remove)
}

func (a *App) picked(r RayData, op func(*highlight.Set, int) error) ToggleResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.set == nil {
		return a.toggleError(-1, errNoMesh)
	}
	seed, ok := pick.Seed(a.surface, pick.Ray{Origin: r.Origin, Direction: r.Direction})
	if !ok {
		return a.toggleError(-1, errMiss)
	}
	// Pick results are raw triangle slots; the neighbour list lives under
	// the canonical slot for that position.
	g, err := a.builder.Graph()
	if err != nil {
		return a.toggleError(seed, err)
	}
	seed = g.Canonical(seed)
	if err := op(a.set, seed); err != nil {
		return a.toggleError(seed, err)
	}
	return ToggleResult{Lines: a.lineData(), Seed: seed}
}

func (a *App) apply(i int, op func(*highlight.Set) error) ToggleResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.set == nil {
		return a.toggleError(i, errNoMesh)
	}
	if err := op(a.set); err != nil {
		return a.toggleError(i, err)
	}
	return ToggleResult{Lines: a.lineData(), Seed: i}
}

// RunScript compiles a toggle script and applies it to the current session.
// Commands before a failing one stay applied.
func (a *App) RunScript(source string) ScriptResult {
	result := ScriptResult{Errors: []EvalErrorData{}}

	script, evalErrs, err := a.engine.Compile(source)
	if err != nil {
		klog.Errorf("RunScript fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		result.Lines = a.Lines()
		return result
	}
	for _, e := range evalErrs {
		result.Errors = append(result.Errors, EvalErrorData{Line: e.Line, Col: e.Col, Message: e.Message})
	}
	if len(evalErrs) > 0 {
		result.Lines = a.Lines()
		return result
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.set == nil {
		result.Errors = append(result.Errors, EvalErrorData{Message: errNoMesh.Error()})
		result.Lines = a.lineData()
		return result
	}
	n, err := script.Apply(a.set)
	result.Applied = n
	if err != nil {
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
	}
	result.Lines = a.lineData()
	return result
}

// Lines returns the current highlight line list.
func (a *App) Lines() LineData {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lineData()
}

func (a *App) toggleError(seed int, err error) ToggleResult {
	return ToggleResult{Lines: a.lineData(), Seed: seed, Error: err.Error()}
}

// lineData converts the last published lines; callers hold a.mu.
func (a *App) lineData() LineData {
	d := LineData{
		Vertices: mesh.FlattenPositions(a.lines.Vertices),
		Indices:  make([]uint32, len(a.lines.Indices)),
		Seeds:    []int{},
	}
	for i, idx := range a.lines.Indices {
		d.Indices[i] = uint32(idx)
	}
	if a.set != nil {
		d.Seeds = a.set.Seeds()
	}
	return d
}

func emptyMesh() MeshData {
	return MeshData{Vertices: []float32{}, Normals: []float32{}, Indices: []uint32{}}
}
