//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// statsProvider is implemented by the app to expose per-frame debug lines.
type statsProvider interface {
	DebugStats() []string
}

// Overlay draws an optional debug readout (impulse, pose, baked params) on
// top of the scene. Toggled with the 1 key.
type Overlay struct {
	provider statsProvider
	show     bool
}

// NewOverlay constructs an overlay reading from the provider.
func NewOverlay(provider statsProvider) *Overlay {
	return &Overlay{provider: provider}
}

// Update handles the toggle key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.show = !o.show
	}
}

// Draw renders the readout when enabled.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.provider == nil {
		return
	}
	face := basicfont.Face7x13
	y := overlayTop
	for _, line := range o.provider.DebugStats() {
		text.Draw(screen, line, face, overlayLeft, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		y += overlayLineHeight
	}
}

const (
	overlayLeft       = 8
	overlayTop        = 16
	overlayLineHeight = 14
)
