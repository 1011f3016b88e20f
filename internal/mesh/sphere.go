// Package mesh builds the base sphere geometry and applies the noise-driven
// displacement that turns it into a spiky blob.
package mesh

import (
	"math"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// Subdivision bounds. The upper bound keeps (segments+1)*(rings+1) under
// 65536 so triangle indices fit in uint16.
const (
	MinSegments = 8
	MaxSegments = 254
)

// Vertex is one immutable sphere vertex. Displacement never mutates vertices;
// it recomputes positions from them every frame.
type Vertex struct {
	Position vec3.T
	Normal   vec3.T
	UV       vec2.T
}

// Sphere is a unit-radius lat/long sphere. It is built once and shared,
// unchanged, across every mesh instance rebuild.
type Sphere struct {
	Vertices []Vertex
	Indices  []uint16
	Segments int
	Rings    int
}

// NewSphere builds a UV sphere with the given subdivisions, clamped to the
// supported range.
func NewSphere(segments, rings int) *Sphere {
	segments = clampInt(segments, MinSegments, MaxSegments)
	rings = clampInt(rings, MinSegments, MaxSegments)

	s := &Sphere{
		Vertices: make([]Vertex, 0, (segments+1)*(rings+1)),
		Segments: segments,
		Rings:    rings,
	}

	for ring := 0; ring <= rings; ring++ {
		theta := float64(ring) * math.Pi / float64(rings)
		sinTheta, cosTheta := math.Sincos(theta)
		for seg := 0; seg <= segments; seg++ {
			phi := float64(seg) * 2 * math.Pi / float64(segments)
			sinPhi, cosPhi := math.Sincos(phi)

			p := vec3.T{cosPhi * sinTheta, cosTheta, sinPhi * sinTheta}
			s.Vertices = append(s.Vertices, Vertex{
				Position: p,
				Normal:   p,
				UV: vec2.T{
					float64(seg) / float64(segments),
					float64(ring) / float64(rings),
				},
			})
		}
	}

	s.Indices = make([]uint16, 0, segments*rings*6)
	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			cur := uint16(ring*(segments+1) + seg)
			next := cur + uint16(segments) + 1
			s.Indices = append(s.Indices, cur, next, cur+1)
			s.Indices = append(s.Indices, cur+1, next, next+1)
		}
	}
	return s
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
