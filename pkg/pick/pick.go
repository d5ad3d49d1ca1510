// Package pick resolves a ray against a triangle mesh to the seed vertex a
// highlight toggle should act on.
package pick

import (
	"math"

	"github.com/chazu/vertexlight/pkg/mesh"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

const epsilon = 1e-9

// Ray is a half-line in mesh space. Direction need not be normalised.
type Ray struct {
	Origin    mesh.Position
	Direction mesh.Position
}

// Hit describes the nearest triangle struck by a ray.
type Hit struct {
	Triangle int     // face number, Triangles[3*Triangle:3*Triangle+3]
	Distance float64 // along Direction, in units of its length
	Seed     int     // first corner of the face
}

func vec(p mesh.Position) v3.Vec {
	return v3.Vec{X: float64(p[0]), Y: float64(p[1]), Z: float64(p[2])}
}

// Cast returns the nearest triangle hit by r. Both faces of a triangle
// count; degenerate triangles are skipped. Malformed faces (short tail or
// out-of-range index) are ignored.
func Cast(m mesh.RawMesh, r Ray) (Hit, bool) {
	origin, dir := vec(r.Origin), vec(r.Direction)

	best := Hit{Distance: math.Inf(1)}
	found := false
	for f := 0; f+2 < len(m.Triangles); f += 3 {
		a, b, c := m.Triangles[f], m.Triangles[f+1], m.Triangles[f+2]
		if !inRange(len(m.Vertices), a, b, c) {
			continue
		}
		t, ok := intersect(origin, dir, vec(m.Vertices[a]), vec(m.Vertices[b]), vec(m.Vertices[c]))
		if ok && t < best.Distance {
			best = Hit{Triangle: f / 3, Distance: t, Seed: a}
			found = true
		}
	}
	return best, found
}

// Seed returns the vertex index a click along r selects: the first corner of
// the nearest hit triangle.
func Seed(m mesh.RawMesh, r Ray) (int, bool) {
	hit, ok := Cast(m, r)
	if !ok {
		return 0, false
	}
	return hit.Seed, true
}

func inRange(n int, idx ...int) bool {
	for _, i := range idx {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}

// intersect is the Möller-Trumbore ray/triangle test.
func intersect(origin, dir, v0, v1, v2 v3.Vec) (float64, bool) {
	e1 := v1.Sub(v0)
	e2 := v2.Sub(v0)

	p := dir.Cross(e2)
	det := e1.Dot(p)
	if math.Abs(det) < epsilon {
		return 0, false
	}
	inv := 1 / det

	s := origin.Sub(v0)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(q) * inv
	if t <= epsilon {
		return 0, false
	}
	return t, true
}
