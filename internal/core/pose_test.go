package core

import (
	"math"
	"testing"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

func TestPoseAdvance(t *testing.T) {
	var p Pose
	p.Advance(vec2.T{})
	if p.RotY != 0.003 {
		t.Fatalf("RotY after one idle frame = %v, expected the base spin 0.003", p.RotY)
	}
	if p.RotX != 0 {
		t.Fatalf("RotX after one idle frame = %v, expected 0", p.RotX)
	}

	p.Advance(vec2.T{0.01, -0.02})
	if math.Abs(p.RotY-(0.003+0.003+0.01)) > 1e-15 {
		t.Fatalf("RotY = %v, expected base spin plus impulse.x", p.RotY)
	}
	if math.Abs(p.RotX-(-0.02)) > 1e-15 {
		t.Fatalf("RotX = %v, expected impulse.y", p.RotX)
	}
}

func TestPoseAngleUnwrapped(t *testing.T) {
	var p Pose
	for i := 0; i < 5000; i++ {
		p.Advance(vec2.T{})
	}
	if p.RotY <= 2*math.Pi {
		t.Fatalf("RotY = %v, expected unwrapped accumulation past 2π", p.RotY)
	}
}

func TestPoseApply(t *testing.T) {
	identity := Pose{}
	v := vec3.T{0.3, -0.7, 0.2}
	if got := identity.Apply(v); got != v {
		t.Fatalf("identity pose moved %v to %v", v, got)
	}

	quarter := Pose{RotY: math.Pi / 2}
	got := quarter.Apply(vec3.T{1, 0, 0})
	want := vec3.T{0, 0, -1}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("quarter yaw of +x = %v, expected %v", got, want)
		}
	}

	pitch := Pose{RotX: math.Pi / 2}
	got = pitch.Apply(vec3.T{0, 0, 1})
	want = vec3.T{0, -1, 0}
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("quarter pitch of +z = %v, expected %v", got, want)
		}
	}
}
