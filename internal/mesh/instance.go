package mesh

import (
	"spikeball/internal/core"
	"spikeball/internal/noise"
	"spikeball/internal/palette"
)

// Instance bundles the shared geometry with the parameters and palette baked
// in at build time. Instances are immutable: a settings change builds a new
// one and the app swaps the pointer, so a draw never observes a half-updated
// mesh.
type Instance struct {
	geom      *Sphere
	displacer *Displacer
	pal       palette.Palette
}

// Build creates a fully initialized instance. It is synchronous; the caller
// must swap in the result before the next draw reads it.
func Build(geom *Sphere, field *noise.Field, params core.Params, pal palette.Palette) *Instance {
	return &Instance{
		geom:      geom,
		displacer: NewDisplacer(field, params),
		pal:       pal,
	}
}

// Geometry returns the shared base sphere.
func (in *Instance) Geometry() *Sphere { return in.geom }

// Displacer returns the baked displacement model.
func (in *Instance) Displacer() *Displacer { return in.displacer }

// Params returns the baked parameter set.
func (in *Instance) Params() core.Params { return in.displacer.Params() }

// Palette returns the baked color preset.
func (in *Instance) Palette() palette.Palette { return in.pal }
