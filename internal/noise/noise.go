// Package noise provides the two gradient-noise fields driving the blob:
// a 4D simplex field for vertex displacement and an animated 3D perlin field
// for shading. Both are pure functions of their inputs once constructed.
package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/ungerik/go3d/float64/vec3"
)

// seedSlice is the fixed fourth coordinate of the displacement field. Keeping
// it constant pins the field to one slice of the 4D noise volume.
const seedSlice = 10.0

const fieldSeed = 0

// Field is the deterministic 4D gradient-noise field sampled per vertex.
type Field struct {
	n opensimplex.Noise
}

// NewField constructs the displacement field. The field is identical across
// processes and runs.
func NewField() *Field {
	return &Field{n: opensimplex.New(fieldSeed)}
}

// Sample evaluates the field at p scaled by the given factor, on the fixed
// seed slice. Range is approximately [-1, 1].
func (f *Field) Sample(p vec3.T, scale float64) float64 {
	return f.n.Eval4(p[0]*scale, p[1]*scale, p[2]*scale, seedSlice)
}

const (
	shadeAlpha = 2
	shadeBeta  = 2
	shadeN     = 3
	shadeSeed  = 100
)

// Shade is the time-animated 3D noise used by the shading model. UV and time
// scaling are applied by the caller.
type Shade struct {
	p *perlin.Perlin
}

// NewShade constructs the shading noise with fixed parameters.
func NewShade() *Shade {
	return &Shade{p: perlin.NewPerlin(shadeAlpha, shadeBeta, shadeN, shadeSeed)}
}

// Sample evaluates the noise at (x, y, t).
func (s *Shade) Sample(x, y, t float64) float64 {
	return s.p.Noise3D(x, y, t)
}
