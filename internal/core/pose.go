package core

import (
	"math"

	"github.com/ungerik/go3d/float64/vec2"
	"github.com/ungerik/go3d/float64/vec3"
)

// baseSpin is the constant per-frame Y rotation applied on top of the impulse.
const baseSpin = 0.003

// Pose is the sphere's cumulative scene rotation. Angles accumulate unwrapped;
// the transform is purely trigonometric so unbounded growth is harmless.
type Pose struct {
	RotX float64
	RotY float64
}

// Advance applies one frame of base spin plus the impulse contribution.
func (p *Pose) Advance(impulse vec2.T) {
	p.RotY += baseSpin + impulse[0]
	p.RotX += impulse[1]
}

// Apply rotates v by the pose, yaw about Y then pitch about X.
func (p Pose) Apply(v vec3.T) vec3.T {
	sy, cy := math.Sincos(p.RotY)
	x := v[0]*cy + v[2]*sy
	z := -v[0]*sy + v[2]*cy
	sx, cx := math.Sincos(p.RotX)
	y := v[1]*cx - z*sx
	z = v[1]*sx + z*cx
	return vec3.T{x, y, z}
}
