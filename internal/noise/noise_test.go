package noise

import (
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func TestFieldDeterministic(t *testing.T) {
	a := NewField()
	b := NewField()
	points := []vec3.T{{0, 0, 1}, {0.3, -0.7, 0.2}, {-1, 0.5, 0.5}}
	for _, p := range points {
		if a.Sample(p, 12) != b.Sample(p, 12) {
			t.Fatalf("two fields disagree at %v", p)
		}
		if a.Sample(p, 12) != a.Sample(p, 12) {
			t.Fatalf("field is not a pure function at %v", p)
		}
	}
}

func TestFieldBounded(t *testing.T) {
	f := NewField()
	for i := 0; i < 500; i++ {
		p := vec3.T{float64(i) * 0.013, float64(i) * -0.007, float64(i) * 0.021}
		n := f.Sample(p, 9)
		if n < -1.1 || n > 1.1 {
			t.Fatalf("sample %v at %v outside the expected noise range", n, p)
		}
	}
}

func TestShadeDeterministicAndAnimated(t *testing.T) {
	s := NewShade()
	if s.Sample(0.4, 0.8, 1) != s.Sample(0.4, 0.8, 1) {
		t.Fatalf("shade noise is not a pure function")
	}
	same := true
	for i := 1; i < 20 && same; i++ {
		same = s.Sample(0.4, 0.8, 0) == s.Sample(0.4, 0.8, float64(i)*0.37)
	}
	if same {
		t.Fatalf("shade noise does not vary with time")
	}
}
