package render

import (
	"image/color"
	"math"

	"github.com/ungerik/go3d/float64/vec2"

	"spikeball/internal/noise"
	"spikeball/internal/palette"
)

const (
	shadeUVScale   = 6.0
	shadeTimeScale = 0.02
)

// Shader computes vertex colors: the two palette endpoints mixed by animated
// noise, modulated by a sine band along U and by the displacement darkness
// factor. Baked per mesh instance like the displacement params.
type Shader struct {
	n           *noise.Shade
	a           [3]float64
	b           [3]float64
	spikeLength float64
}

// NewShader bakes the palette endpoints and spike length into a shader.
// spikeLength comes from the clamped params, so it is bounded away from zero.
func NewShader(n *noise.Shade, pal palette.Palette, spikeLength float64) *Shader {
	return &Shader{
		n:           n,
		a:           channels(pal.EndpointA()),
		b:           channels(pal.EndpointB()),
		spikeLength: spikeLength,
	}
}

// VertexColor returns the RGB triple for a vertex, channels clamped to [0,1].
// uvNoise is the shifted displacement noise carried over from the vertex
// stage; t is seconds since start.
func (s *Shader) VertexColor(uv vec2.T, uvNoise, t float64) (float64, float64, float64) {
	n := s.n.Sample(uv[0]*shadeUVScale, uv[1]*shadeUVScale, t*shadeTimeScale)*0.5 + 0.5
	sine := math.Sin(uv[0] * math.Pi)
	darkness := uvNoise/s.spikeLength + 1
	bright := (sine*0.6 + 0.4) * darkness

	r := clamp01(mix(s.a[0], s.b[0], n) * bright)
	g := clamp01(mix(s.a[1], s.b[1], n) * bright)
	b := clamp01(mix(s.a[2], s.b[2], n) * bright)
	return r, g, b
}

func channels(c color.RGBA) [3]float64 {
	return [3]float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

func mix(a, b, t float64) float64 {
	return a + (b-a)*t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
