package app

import "flag"

// Config represents the command-line parameters for the application. Detail
// and Size of 0 mean "take the value from the generated preset".
type Config struct {
	Width    int
	Height   int
	Segments int
	TPS      int
	HUDWidth int

	Detail  float64
	Size    float64
	Palette string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:    900,
		Height:   720,
		Segments: 96,
		TPS:      60,
		HUDWidth: 220,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.Segments, "segments", c.Segments, "sphere subdivisions per axis")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "control panel width in pixels, 0 hides it")
	fs.Float64Var(&c.Detail, "detail", c.Detail, "spike detail override (1-50)")
	fs.Float64Var(&c.Size, "size", c.Size, "spike length override (1.0-1.5)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "palette preset name override")
}
