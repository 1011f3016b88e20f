// Package render projects the displaced sphere to the screen: orthographic
// camera, per-vertex shading, and (in the ebiten build) painter-sorted
// triangle drawing.
package render

// Zoom factors selected by viewport aspect. Portrait viewports zoom out so
// the blob still fits.
const (
	zoomPortrait  = 2.5
	zoomLandscape = 1.5
)

// Camera is an orthographic camera. Bounds are recomputed on every resize;
// projection is a straight affine map from bounds to pixels.
type Camera struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64

	width  float64
	height float64
}

// NewCamera returns a camera sized for the given viewport.
func NewCamera(pixelRatio float64, width, height int) *Camera {
	c := &Camera{}
	c.Resize(pixelRatio, width, height)
	return c
}

// Resize recomputes the projection bounds for a viewport. The zoom factor is
// 2.5 when the aspect ratio is below 1 and 1.5 otherwise; bounds are
// [-zoom*aspect, zoom*aspect, zoom, -zoom].
func (c *Camera) Resize(pixelRatio float64, width, height int) {
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}
	if pixelRatio <= 0 {
		pixelRatio = 1
	}
	aspect := float64(width) / float64(height)
	zoom := zoomLandscape
	if aspect < 1 {
		zoom = zoomPortrait
	}
	c.Left = -zoom * aspect
	c.Right = zoom * aspect
	c.Top = zoom
	c.Bottom = -zoom
	c.width = float64(width) * pixelRatio
	c.height = float64(height) * pixelRatio
}

// Project maps a world-space x/y to pixel coordinates, Y down.
func (c *Camera) Project(x, y float64) (float64, float64) {
	sx := (x - c.Left) / (c.Right - c.Left) * c.width
	sy := (c.Top - y) / (c.Top - c.Bottom) * c.height
	return sx, sy
}
