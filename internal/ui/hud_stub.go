//go:build !ebiten

package ui

// Settings matches the GUI build's HUD settings surface.
type Settings any

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Settings, int) *HUD { return nil }

// Width returns zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Contains always reports false in the headless build.
func (h *HUD) Contains(int) bool { return false }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}

// Dispose is a no-op in the headless build.
func (h *HUD) Dispose() {}
