//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"spikeball/internal/core"
)

// Settings is what the HUD needs from the app: read and write the two float
// parameters and fire the regenerate trigger.
type Settings interface {
	core.FloatParameterGetter
	core.FloatParameterSetter
	core.TriggerHandler
}

// HUD renders the control panel on the right edge of the screen: one slider
// per float parameter plus the regenerate button.
type HUD struct {
	settings Settings
	controls []hudControlState

	width        int
	panel        *ebiten.Image
	pixel        *ebiten.Image
	lastHeight   int
	panelOffsetX int

	sliding int // index of the control being dragged, -1 when none
}

type hudControlState struct {
	control core.ParameterControl
	value   float64

	top        int
	sliderRect image.Rectangle
	buttonRect image.Rectangle
}

// NewHUD constructs a HUD bound to the given settings.
func NewHUD(settings Settings, width int) *HUD {
	h := &HUD{settings: settings, width: width, sliding: -1}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	controls := []core.ParameterControl{
		{Key: "detail", Label: "Detail", Type: core.ParamTypeFloat, Step: 0.01, Min: core.SpikeDetailMin, Max: core.SpikeDetailMax},
		{Key: "size", Label: "Size", Type: core.ParamTypeFloat, Step: 0.01, Min: core.SpikeLengthMin, Max: core.SpikeLengthMax},
		{Key: "regenerate", Label: "Regenerate", Type: core.ParamTypeTrigger},
	}
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl}
	}
	h.layoutControls()
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Contains reports whether the screen x coordinate falls inside the panel.
// The app uses it to keep panel clicks from starting a sphere drag.
func (h *HUD) Contains(x int) bool {
	return h != nil && h.width > 0 && x >= h.panelOffsetX
}

// Update refreshes control values from the settings and handles clicks and
// slider drags.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		if state.control.Type != core.ParamTypeFloat {
			continue
		}
		if v, ok := h.settings.FloatParameter(state.control.Key); ok {
			state.value = v
		}
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	mx, my := ebiten.CursorPosition()
	px := mx - h.panelOffsetX

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && px >= 0 {
		for i := range h.controls {
			state := &h.controls[i]
			switch state.control.Type {
			case core.ParamTypeFloat:
				if pointInRect(px, my, state.sliderRect) {
					h.sliding = i
				}
			case core.ParamTypeTrigger:
				if pointInRect(px, my, state.buttonRect) {
					h.settings.Trigger(state.control.Key)
				}
			}
		}
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		h.sliding = -1
	}
	if h.sliding >= 0 {
		state := &h.controls[h.sliding]
		state.value = h.sliderValueAt(state, px)
		h.settings.SetFloatParameter(state.control.Key, state.value)
	}
}

// sliderValueAt maps a panel x coordinate onto the control range, quantized
// to the control step.
func (h *HUD) sliderValueAt(state *hudControlState, px int) float64 {
	rect := state.sliderRect
	span := float64(rect.Dx() - 1)
	t := float64(px-rect.Min.X) / span
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	v := state.control.Min + t*(state.control.Max-state.control.Min)
	step := state.control.Step
	if step > 0 {
		v = math.Round(v/step) * step
	}
	if v < state.control.Min {
		v = state.control.Min
	}
	if v > state.control.Max {
		v = state.control.Max
	}
	return v
}

// Draw paints the panel anchored to the right edge.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, "Blob Controls", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		switch state.control.Type {
		case core.ParamTypeFloat:
			text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			value := strconv.FormatFloat(state.value, 'f', 2, 64)
			bounds := text.BoundString(face, value)
			text.Draw(h.panel, value, face, h.width-panelPadding-bounds.Dx(), labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			h.drawSlider(state)
		case core.ParamTypeTrigger:
			h.drawButton(state.buttonRect, state.control.Label)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawSlider(state *hudControlState) {
	if h.pixel == nil {
		return
	}
	rect := state.sliderRect
	h.fillRect(image.Rect(rect.Min.X, rect.Min.Y+sliderTrackInset, rect.Max.X, rect.Max.Y-sliderTrackInset),
		color.RGBA{R: 54, G: 56, B: 64, A: 255})

	span := state.control.Max - state.control.Min
	t := 0.0
	if span > 0 {
		t = (state.value - state.control.Min) / span
	}
	hx := rect.Min.X + int(math.Round(t*float64(rect.Dx()-sliderHandleW)))
	h.fillRect(image.Rect(hx, rect.Min.Y, hx+sliderHandleW, rect.Max.Y),
		color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	if h.pixel == nil {
		return
	}
	h.fillRect(rect, color.RGBA{R: 54, G: 56, B: 64, A: 255})
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (h *HUD) fillRect(rect image.Rectangle, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, float64(c.A)/255.0)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) layoutControls() {
	if len(h.controls) == 0 || h.width <= 0 {
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		top := controlsTop + i*lineHeight
		state.top = top
		switch state.control.Type {
		case core.ParamTypeFloat:
			state.sliderRect = image.Rect(panelPadding, top+labelBaseline+sliderGap,
				h.width-panelPadding, top+labelBaseline+sliderGap+sliderHeight)
		case core.ParamTypeTrigger:
			state.buttonRect = image.Rect(panelPadding, top, h.width-panelPadding, top+buttonHeight)
		}
	}
}

// Dispose releases the panel images.
func (h *HUD) Dispose() {
	if h == nil {
		return
	}
	if h.panel != nil {
		h.panel.Dispose()
		h.panel = nil
	}
	if h.pixel != nil {
		h.pixel.Dispose()
		h.pixel = nil
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding     = 12
	lineHeight       = 52
	headerBaseline   = 18
	labelBaseline    = 16
	controlsTop      = panelPadding + headerBaseline + 14
	sliderGap        = 6
	sliderHeight     = 14
	sliderHandleW    = 8
	sliderTrackInset = 5
	buttonHeight     = 26
)
