//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"spikeball/internal/core"
	"spikeball/internal/mesh"
	"spikeball/internal/noise"
	"spikeball/internal/palette"
	"spikeball/internal/preset"
	"spikeball/internal/render"
	"spikeball/internal/ui"
)

// Game adapts the blob scene to the ebiten.Game interface. All state is
// mutated from Update and the input paths it calls; Draw only reads.
type Game struct {
	geom  *mesh.Sphere
	field *noise.Field
	shade *noise.Shade

	// Current renderable. Rebuilds construct a fresh pair and swap both
	// references before the next Draw; neither is ever mutated in place.
	inst   *mesh.Instance
	shader *render.Shader

	tracker  core.Tracker
	pose     core.Pose
	cam      *render.Camera
	renderer *render.Renderer
	hud      *ui.HUD
	overlay  *ui.Overlay

	// Shared settings record behind the HUD sliders and the regenerate
	// trigger. Baked into the instance on rebuild, not read per frame.
	settings   core.Params
	paletteIdx int

	rebuild bool
	regen   bool

	touchID  ebiten.TouchID
	touching bool

	start         time.Time
	width, height int
}

// New constructs the Game: base geometry, noise fields, the first generated
// preset (with any flag overrides applied) and the initial mesh instance.
func New(cfg *Config) (*Game, error) {
	g := &Game{
		geom:     mesh.NewSphere(cfg.Segments, cfg.Segments),
		field:    noise.NewField(),
		shade:    noise.NewShade(),
		cam:      render.NewCamera(1, cfg.Width-cfg.HUDWidth, cfg.Height),
		renderer: render.NewRenderer(),
		width:    cfg.Width,
		height:   cfg.Height,
		start:    time.Now(),
	}

	set := preset.Random()
	g.settings = set.Params
	g.paletteIdx = set.PaletteIndex
	if cfg.Detail > 0 {
		g.settings.SpikeDetail = cfg.Detail
	}
	if cfg.Size > 0 {
		g.settings.SpikeLength = cfg.Size
	}
	g.settings = g.settings.Clamped()
	if cfg.Palette != "" {
		p, ok := palette.ByName(cfg.Palette)
		if !ok {
			return nil, fmt.Errorf("unknown palette %q", cfg.Palette)
		}
		g.paletteIdx = paletteIndexOf(p.Name)
	}

	g.build()
	g.hud = ui.NewHUD(g, cfg.HUDWidth)
	g.overlay = ui.NewOverlay(g)
	return g, nil
}

// build constructs a fresh instance/shader pair from the current settings and
// swaps it in.
func (g *Game) build() {
	pal := palette.ByIndex(g.paletteIdx)
	inst := mesh.Build(g.geom, g.field, g.settings, pal)
	g.shader = render.NewShader(g.shade, pal, inst.Params().SpikeLength)
	g.inst = inst
}

// Update handles input and advances one frame of state.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.regen = true
	}

	if g.overlay != nil {
		g.overlay.Update()
	}
	if g.hud != nil {
		g.hud.Update(g.width - g.hud.Width())
	}

	g.updatePointer()
	g.updateTouch()

	g.pose.Advance(g.tracker.Impulse())
	g.tracker.Decay()

	if g.regen {
		set := preset.Random()
		g.settings = set.Params
		g.paletteIdx = set.PaletteIndex
		g.regen = false
		g.rebuild = true
	}
	if g.rebuild {
		g.build()
		g.rebuild = false
	}
	return nil
}

func (g *Game) updatePointer() {
	mx, my := ebiten.CursorPosition()
	vw, vh := g.viewSize()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.hud.Contains(mx) {
		g.tracker.Begin(float64(mx), float64(my), vw, vh)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.tracker.Move(float64(mx), float64(my), vw, vh, g.pose.RotX)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.tracker.End()
	}
}

func (g *Game) updateTouch() {
	vw, vh := g.viewSize()
	if !g.touching {
		for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
			tx, ty := ebiten.TouchPosition(id)
			g.touchID = id
			g.touching = true
			g.tracker.Begin(float64(tx), float64(ty), vw, vh)
			break
		}
		return
	}
	if inpututil.IsTouchJustReleased(g.touchID) {
		g.touching = false
		g.tracker.End()
		return
	}
	tx, ty := ebiten.TouchPosition(g.touchID)
	g.tracker.Move(float64(tx), float64(ty), vw, vh, g.pose.RotX)
}

func (g *Game) viewSize() (float64, float64) {
	vw := g.width - g.hud.Width()
	if vw <= 0 {
		vw = g.width
	}
	return float64(vw), float64(g.height)
}

// Draw renders the scene and the UI.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 14, A: 255})
	t := time.Since(g.start).Seconds()
	g.renderer.Draw(screen, g.inst, g.shader, g.pose, g.tracker.Impulse(), t, g.cam)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.width-g.hud.Width())
	}
}

// Layout resizes the camera to the render area left of the panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	vw := g.width
	if g.hud != nil {
		vw -= g.hud.Width()
	}
	g.cam.Resize(1, vw, g.height)
	return g.width, g.height
}

// Dispose releases GPU resources. Call after the run loop exits.
func (g *Game) Dispose() {
	if g.renderer != nil {
		g.renderer.Dispose()
	}
	if g.hud != nil {
		g.hud.Dispose()
	}
}

// FloatParameter implements the HUD settings surface.
func (g *Game) FloatParameter(key string) (float64, bool) {
	switch key {
	case "detail":
		return g.settings.SpikeDetail, true
	case "size":
		return g.settings.SpikeLength, true
	}
	return 0, false
}

// SetFloatParameter updates a slider-bound setting and schedules a rebuild on
// the next frame.
func (g *Game) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "detail":
		g.settings.SpikeDetail = value
	case "size":
		g.settings.SpikeLength = value
	default:
		return false
	}
	g.settings = g.settings.Clamped()
	g.rebuild = true
	return true
}

// Trigger fires the regenerate action.
func (g *Game) Trigger(key string) bool {
	if key != "regenerate" {
		return false
	}
	g.regen = true
	return true
}

// DebugStats feeds the overlay readout.
func (g *Game) DebugStats() []string {
	imp := g.tracker.Impulse()
	return []string{
		fmt.Sprintf("fps %.0f", ebiten.ActualFPS()),
		fmt.Sprintf("impulse %+.4f %+.4f", imp[0], imp[1]),
		fmt.Sprintf("pose x %.2f y %.2f", g.pose.RotX, g.pose.RotY),
		fmt.Sprintf("detail %.2f size %.2f", g.settings.SpikeDetail, g.settings.SpikeLength),
		fmt.Sprintf("palette %s", g.inst.Palette().Name),
	}
}

// paletteIndexOf resolves a registered preset name to its library index.
func paletteIndexOf(name string) int {
	for i := 0; i < palette.Count(); i++ {
		if palette.ByIndex(i).Name == name {
			return i
		}
	}
	return 0
}
