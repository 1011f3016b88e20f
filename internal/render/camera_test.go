package render

import (
	"math"
	"testing"
)

func TestCameraZoomByAspect(t *testing.T) {
	cases := []struct {
		w, h int
		zoom float64
	}{
		{300, 600, 2.5},
		{600, 600, 1.5},
		{800, 400, 1.5},
	}
	for _, c := range cases {
		cam := NewCamera(1, c.w, c.h)
		aspect := float64(c.w) / float64(c.h)
		if cam.Left != -c.zoom*aspect || cam.Right != c.zoom*aspect {
			t.Fatalf("%dx%d: horizontal bounds [%v,%v], expected ±%v", c.w, c.h, cam.Left, cam.Right, c.zoom*aspect)
		}
		if cam.Top != c.zoom || cam.Bottom != -c.zoom {
			t.Fatalf("%dx%d: vertical bounds [%v,%v], expected ±%v", c.w, c.h, cam.Bottom, cam.Top, c.zoom)
		}
	}
}

func TestCameraProject(t *testing.T) {
	cam := NewCamera(1, 600, 600)
	x, y := cam.Project(0, 0)
	if math.Abs(x-300) > 1e-9 || math.Abs(y-300) > 1e-9 {
		t.Fatalf("origin projected to (%v,%v), expected the viewport center", x, y)
	}

	// Top of the bounds maps to y=0, and Y grows downward.
	_, top := cam.Project(0, cam.Top)
	if math.Abs(top) > 1e-9 {
		t.Fatalf("top bound projected to y=%v, expected 0", top)
	}
	_, bottom := cam.Project(0, cam.Bottom)
	if math.Abs(bottom-600) > 1e-9 {
		t.Fatalf("bottom bound projected to y=%v, expected 600", bottom)
	}
}

func TestCameraResizeSwitchesZoom(t *testing.T) {
	cam := NewCamera(1, 600, 600)
	cam.Resize(1, 400, 800)
	if cam.Top != 2.5 {
		t.Fatalf("after portrait resize Top = %v, expected 2.5", cam.Top)
	}
	cam.Resize(2, 800, 400)
	if cam.Top != 1.5 {
		t.Fatalf("after landscape resize Top = %v, expected 1.5", cam.Top)
	}
	// Pixel ratio scales the pixel mapping, not the bounds.
	x, _ := cam.Project(cam.Right, 0)
	if math.Abs(x-1600) > 1e-9 {
		t.Fatalf("right bound projected to x=%v with pixel ratio 2, expected 1600", x)
	}
}
