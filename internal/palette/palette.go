// Package palette holds the fixed library of curated color presets. One
// preset is selected per mesh build; its colors at index 0 and 3 are the two
// shading endpoints.
package palette

import (
	"fmt"
	"image/color"
)

// Palette is an ordered, immutable set of colors under a stable name.
type Palette struct {
	Name   string
	Colors []color.RGBA
}

// EndpointA returns the first shading endpoint (index 0).
func (p Palette) EndpointA() color.RGBA { return p.Colors[0] }

// EndpointB returns the second shading endpoint (index 3).
func (p Palette) EndpointB() color.RGBA { return p.Colors[3] }

var palettes []Palette

// Register appends a preset to the library. Presets need at least four colors
// so both shading endpoints exist; short or unnamed presets are ignored.
func Register(name string, hexColors []string) {
	if name == "" || len(hexColors) < 4 {
		return
	}
	colors := make([]color.RGBA, 0, len(hexColors))
	for _, h := range hexColors {
		c, err := ParseHex(h)
		if err != nil {
			return
		}
		colors = append(colors, c)
	}
	palettes = append(palettes, Palette{Name: name, Colors: colors})
}

// Count returns the number of registered presets.
func Count() int { return len(palettes) }

// ByIndex returns the preset at i, wrapping out-of-range indices into the
// library.
func ByIndex(i int) Palette {
	if len(palettes) == 0 {
		return Palette{Name: "none", Colors: make([]color.RGBA, 4)}
	}
	i = ((i % len(palettes)) + len(palettes)) % len(palettes)
	return palettes[i]
}

// ByName looks a preset up by its registered name.
func ByName(name string) (Palette, bool) {
	for _, p := range palettes {
		if p.Name == name {
			return p, true
		}
	}
	return Palette{}, false
}

// ParseHex parses a "#RRGGBB" color string into an opaque RGBA.
func ParseHex(s string) (color.RGBA, error) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, fmt.Errorf("palette: malformed hex color %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("palette: malformed hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
