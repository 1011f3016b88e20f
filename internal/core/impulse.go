package core

import (
	"math"

	"github.com/ungerik/go3d/float64/vec2"
)

const (
	dragGain     = 0.5
	impulseDecay = 0.9
)

// Tracker converts pointer drags into a decaying 2D impulse vector. It is a
// two-state machine (idle/dragging) and retains only the last normalized
// pointer position; deltas are immediate, no drag history is kept.
type Tracker struct {
	impulse  vec2.T
	anchor   vec2.T
	dragging bool
}

// Impulse returns the accumulated impulse vector.
func (t *Tracker) Impulse() vec2.T { return t.impulse }

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool { return t.dragging }

// Begin starts a drag at the given pixel position, discarding any prior
// anchor.
func (t *Tracker) Begin(px, py, w, h float64) {
	t.anchor = NormalizePointer(px, py, w, h)
	t.dragging = true
}

// Move accumulates impulse from pointer motion while dragging. rotX is the
// scene's accumulated X rotation; past upside-down the horizontal drag sense
// flips so drags keep feeling consistent on screen.
func (t *Tracker) Move(px, py, w, h, rotX float64) {
	if !t.dragging {
		return
	}
	cur := NormalizePointer(px, py, w, h)
	dx := cur[0] - t.anchor[0]
	dy := cur[1] - t.anchor[1]
	t.impulse[0] += DragDirection(rotX) * dx * dragGain
	t.impulse[1] -= dy * dragGain
	t.anchor = cur
}

// End stops the drag. The impulse itself is untouched; decay, not release,
// brings it back toward zero.
func (t *Tracker) End() {
	t.dragging = false
}

// Decay applies one frame of multiplicative decay. With no input the impulse
// converges toward zero asymptotically, never reaching it exactly.
func (t *Tracker) Decay() {
	t.impulse[0] *= impulseDecay
	t.impulse[1] *= impulseDecay
}

// NormalizePointer maps pixel coordinates to [-1,1] per axis with Y inverted
// so that up is positive.
func NormalizePointer(px, py, w, h float64) vec2.T {
	return vec2.T{
		px/w*2 - 1,
		-(py/h*2 - 1),
	}
}

// DragDirection returns the horizontal drag sign for the given accumulated
// scene X rotation. The formula is a deliberate heuristic; keep it literal,
// an equivalent-looking rewrite can move the threshold.
func DragDirection(rotX float64) float64 {
	if math.Mod((rotX+math.Pi/2)/math.Pi, 2) > 1 {
		return -1
	}
	return 1
}
