package mesh

import (
	"math"
	"testing"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"

	"spikeball/internal/core"
	"spikeball/internal/noise"
)

func testSphere() *Sphere { return NewSphere(24, 24) }

func TestFlushVerticesGetPureExtrusion(t *testing.T) {
	field := noise.NewField()
	// SpikeLength 1.0 degenerates uvNoise to the raw noise, so roughly half
	// the vertices stay flush.
	d := NewDisplacer(field, core.Params{SpikeDetail: 8, SpikeLength: 1.0})

	impulse := vec2.T{0.3, -0.2}
	flush := 0
	for _, v := range testSphere().Vertices {
		pos, uvNoise := d.Displace(v, impulse, 1.3)
		if uvNoise > 0 {
			continue
		}
		flush++
		ext := v.Normal.Scaled(uvNoise * 0.39)
		want := vec3.Add(&v.Position, &ext)
		if pos != want {
			t.Fatalf("flush vertex at %v displaced to %v, expected exact radial extrusion %v", v.Position, pos, want)
		}
	}
	if flush == 0 {
		t.Fatalf("no flush vertices found; the noise distribution should leave some uvNoise <= 0")
	}
}

func TestZeroImpulseIgnoresSceneRotation(t *testing.T) {
	field := noise.NewField()
	d := NewDisplacer(field, core.Params{SpikeDetail: 8, SpikeLength: 1.3})

	spiky := 0
	for _, v := range testSphere().Vertices {
		a, na := d.Displace(v, vec2.T{}, 0)
		b, nb := d.Displace(v, vec2.T{}, 1.7)
		if na != nb {
			t.Fatalf("noise at %v depends on scene rotation: %v vs %v", v.Position, na, nb)
		}
		if na > 0 {
			spiky++
		}
		for i := range a {
			if math.Abs(a[i]-b[i]) > 1e-9 {
				t.Fatalf("zero-impulse displacement at %v differs across scene rotations: %v vs %v", v.Position, a, b)
			}
		}

		// With no impulse the swirl must also collapse to the plain radial
		// extrusion.
		ext := v.Normal.Scaled(na * 0.39)
		want := vec3.Add(&v.Position, &ext)
		for i := range a {
			if math.Abs(a[i]-want[i]) > 1e-9 {
				t.Fatalf("zero-impulse displacement at %v = %v, expected %v", v.Position, a, want)
			}
		}
	}
	if spiky == 0 {
		t.Fatalf("no protruding vertices found; SpikeLength 1.3 should raise most of the sphere")
	}
}

func TestImpulseSwirlsOnlySpikes(t *testing.T) {
	field := noise.NewField()
	d := NewDisplacer(field, core.Params{SpikeDetail: 8, SpikeLength: 1.0})

	impulse := vec2.T{0.25, 0}
	moved := 0
	for _, v := range testSphere().Vertices {
		base, uvNoise := d.Displace(v, vec2.T{}, 0)
		swirled, _ := d.Displace(v, impulse, 0)
		delta := math.Abs(base[0]-swirled[0]) + math.Abs(base[1]-swirled[1]) + math.Abs(base[2]-swirled[2])
		if uvNoise <= 0 && delta != 0 {
			t.Fatalf("flush vertex at %v moved by impulse: %v vs %v", v.Position, base, swirled)
		}
		if uvNoise > 0.05 && delta > 1e-9 {
			moved++
		}
	}
	if moved == 0 {
		t.Fatalf("impulse moved no protruding vertices")
	}
}

func TestSpikeLengthOneKeepsRawNoise(t *testing.T) {
	field := noise.NewField()
	d := NewDisplacer(field, core.Params{SpikeDetail: 11, SpikeLength: 1.0})

	for _, v := range testSphere().Vertices[:50] {
		_, uvNoise := d.Displace(v, vec2.T{}, 0)
		if raw := field.Sample(v.Position, 11); uvNoise != raw {
			t.Fatalf("uvNoise = %v, expected raw noise %v when SpikeLength is 1", uvNoise, raw)
		}
	}
}

func TestDisplacerClampsParams(t *testing.T) {
	d := NewDisplacer(noise.NewField(), core.Params{SpikeDetail: 900, SpikeLength: 0})
	p := d.Params()
	if p.SpikeDetail != core.SpikeDetailMax || p.SpikeLength != core.SpikeLengthMin {
		t.Fatalf("baked params = %+v, expected clamped to documented ranges", p)
	}
}
