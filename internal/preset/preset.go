// Package preset derives reproducible "random but curated" parameter sets.
// Each regenerate picks one seed from each fixed pool and expands the three
// seeds through independent deterministic streams, so every outcome is one of
// a bounded, pre-vetted set.
package preset

import (
	"math/rand/v2"

	"spikeball/internal/core"
	"spikeball/internal/palette"
)

// Draw ranges for the curated parameters. Narrower than the HUD slider
// bounds on purpose: the pools only land on values known to look good.
const (
	detailMin = 1.35
	detailMax = 40.0
	lengthMin = 1.0
	lengthMax = 1.4
)

// The seed pools. Entries were hand-picked by eyeballing the result of each
// seed; add to the pools, do not reorder them.
var (
	detailSeeds  = []int64{3, 17, 23, 42, 58, 71, 94, 133, 208, 311}
	lengthSeeds  = []int64{5, 12, 29, 47, 66, 89, 145, 260}
	paletteSeeds = []int64{2, 9, 31, 55, 77, 101, 172, 289}
)

// Set is one generated parameter triple.
type Set struct {
	Params       core.Params
	PaletteIndex int
}

// FromSeeds expands a seed triple into a parameter set. Each value comes from
// its own stream so the three draws are independent, not chained. Pure:
// identical seeds always yield the identical set.
func FromSeeds(detailSeed, lengthSeed, paletteSeed int64) Set {
	detail := core.NewRNG(detailSeed).FloatRange(detailMin, detailMax)
	length := core.NewRNG(lengthSeed).FloatRange(lengthMin, lengthMax)
	idx := core.NewRNG(paletteSeed).IntN(palette.Count())
	return Set{
		Params:       core.Params{SpikeDetail: detail, SpikeLength: length},
		PaletteIndex: idx,
	}
}

// Random picks one seed per pool and expands it. Only the pool picks are
// nondeterministic; the expansion itself is FromSeeds.
func Random() Set {
	return FromSeeds(
		detailSeeds[rand.IntN(len(detailSeeds))],
		lengthSeeds[rand.IntN(len(lengthSeeds))],
		paletteSeeds[rand.IntN(len(paletteSeeds))],
	)
}
