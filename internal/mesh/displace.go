package mesh

import (
	"math"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"

	"spikeball/internal/core"
	"spikeball/internal/noise"
)

// extrusionScale ties noise units to mesh units.
const extrusionScale = 0.39

// swirlGain scales the angular swirl by how far a vertex protrudes, so only
// visible spikes swing with drag input while the sphere body stays rigid.
const swirlGain = 5.0

// Displacer computes per-vertex displacement for one set of baked parameters.
type Displacer struct {
	field  *noise.Field
	params core.Params
}

// NewDisplacer bakes params into a displacer over the given noise field.
func NewDisplacer(field *noise.Field, params core.Params) *Displacer {
	return &Displacer{field: field, params: params.Clamped()}
}

// Params returns the baked parameter set.
func (d *Displacer) Params() core.Params { return d.params }

// Displace returns the displaced position for v plus the shifted noise value
// (uvNoise) the shading model keys on.
//
// Vertices whose uvNoise stays at or below zero get the plain radial
// extrusion only. Protruding vertices additionally swirl: first around the
// vertical axis by impulse.x, then vertically by impulse.y measured in a
// frame that subtracts sceneRotY, so the swirl compensates for the whole-
// scene spin instead of fighting it. Horizontal before vertical; the order is
// load-bearing.
func (d *Displacer) Displace(v Vertex, impulse vec2.T, sceneRotY float64) (vec3.T, float64) {
	n := d.field.Sample(v.Position, d.params.SpikeDetail)
	uvNoise := n*d.params.SpikeLength + (d.params.SpikeLength - 1)

	ext := v.Normal.Scaled(uvNoise * extrusionScale)
	pos := vec3.Add(&v.Position, &ext)

	if uvNoise > 0 {
		intensity := uvNoise * swirlGain

		angleH := math.Atan2(pos[2], pos[0]) + impulse[0]*intensity
		hLen := math.Hypot(pos[0], pos[2])
		pos[0] = math.Cos(angleH) * hLen
		pos[2] = math.Sin(angleH) * hLen

		// Vertical swirl in the scene-rotation-corrected frame. The delta of
		// the corrected z is folded back into z, which makes a zero impulse
		// an exact no-op for any sceneRotY.
		zc := math.Sin(angleH-sceneRotY) * hLen
		angleV := math.Atan2(zc, pos[1]) - impulse[1]*intensity
		vLen := math.Hypot(zc, pos[1])
		newZC := math.Sin(angleV) * vLen
		pos[1] = math.Cos(angleV) * vLen
		pos[2] += newZC - zc
	}

	return pos, uvNoise
}
