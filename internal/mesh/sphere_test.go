package mesh

import (
	"math"
	"testing"
)

func TestNewSphereShape(t *testing.T) {
	s := NewSphere(16, 12)
	if s.Segments != 16 || s.Rings != 12 {
		t.Fatalf("subdivisions = %d x %d, expected 16 x 12", s.Segments, s.Rings)
	}
	if got, want := len(s.Vertices), 17*13; got != want {
		t.Fatalf("vertex count = %d, expected %d", got, want)
	}
	if got, want := len(s.Indices), 16*12*6; got != want {
		t.Fatalf("index count = %d, expected %d", got, want)
	}

	for i, v := range s.Vertices {
		if l := v.Position.Length(); math.Abs(l-1) > 1e-12 {
			t.Fatalf("vertex %d position length = %v, expected unit radius", i, l)
		}
		if v.Normal != v.Position {
			t.Fatalf("vertex %d normal %v differs from position %v on the unit sphere", i, v.Normal, v.Position)
		}
		if v.UV[0] < 0 || v.UV[0] > 1 || v.UV[1] < 0 || v.UV[1] > 1 {
			t.Fatalf("vertex %d uv %v out of [0,1]", i, v.UV)
		}
	}

	limit := uint16(len(s.Vertices))
	for i, idx := range s.Indices {
		if idx >= limit {
			t.Fatalf("index %d references vertex %d, only %d exist", i, idx, limit)
		}
	}
}

func TestNewSphereClampsSubdivisions(t *testing.T) {
	s := NewSphere(1000, 2)
	if s.Segments != MaxSegments {
		t.Fatalf("segments = %d, expected clamp to %d", s.Segments, MaxSegments)
	}
	if s.Rings != MinSegments {
		t.Fatalf("rings = %d, expected clamp to %d", s.Rings, MinSegments)
	}
	if len(s.Vertices) > math.MaxUint16 {
		t.Fatalf("vertex count %d overflows uint16 indices", len(s.Vertices))
	}
}
