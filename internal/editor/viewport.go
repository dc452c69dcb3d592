package editor

import "github.com/arteva/arteva-backend/internal/types"

const (
	MaxCanvasWidth  = 840
	MaxCanvasHeight = 620
	MinCanvasWidth  = 260

	MinZoom  = 0.2
	MaxZoom  = 3.0
	ZoomStep = 0.1

	// Side panels eat horizontal space on wide screens; on narrow ones only
	// the workspace padding remains.
	widePadding   = 480
	narrowPadding = 64
	wideCutoff    = 1024
)

// Viewport maps logical canvas units to display pixels: a fit-to-container
// base scale composed with the user zoom. Panning is the container's
// scroll, not part of the transform.
type Viewport struct {
	geom           types.CanvasGeometry
	containerWidth float64
	zoom           float64
}

func NewViewport(geom types.CanvasGeometry, containerWidth float64) *Viewport {
	return &Viewport{geom: geom, containerWidth: containerWidth, zoom: 1}
}

// Fit computes the on-screen canvas size: width-constrained first, falling
// back to a height-constrained fit when the aspect ratio would push the
// height past its cap.
func (v *Viewport) Fit() (displayWidth, displayHeight float64) {
	padding := float64(narrowPadding)
	if v.containerWidth > wideCutoff {
		padding = widePadding
	}
	width := v.containerWidth - padding
	if width > MaxCanvasWidth {
		width = MaxCanvasWidth
	}
	if width < MinCanvasWidth {
		width = MinCanvasWidth
	}
	aspect := v.geom.AspectRatio()
	height := width * aspect
	if height > MaxCanvasHeight {
		height = MaxCanvasHeight
		if aspect > 0 {
			width = height / aspect
		}
		if width < MinCanvasWidth {
			width = MinCanvasWidth
		}
	}
	return width, height
}

// BaseScale is displayWidth over logical canvas width.
func (v *Viewport) BaseScale() float64 {
	w, _ := v.Fit()
	if v.geom.Width == 0 {
		return 1
	}
	return w / float64(v.geom.Width)
}

// Scale is the effective uniform render scale.
func (v *Viewport) Scale() float64 {
	return v.BaseScale() * v.zoom
}

func (v *Viewport) Zoom() float64 { return v.zoom }

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// SetZoom clamps silently; out-of-range intents are not errors.
func (v *Viewport) SetZoom(z float64) { v.zoom = clampZoom(z) }

func (v *Viewport) ZoomIn()    { v.zoom = clampZoom(v.zoom + ZoomStep) }
func (v *Viewport) ZoomOut()   { v.zoom = clampZoom(v.zoom - ZoomStep) }
func (v *Viewport) ResetZoom() { v.zoom = 1 }

// Resize updates the container width. User zoom survives a resize; only
// the base scale changes.
func (v *Viewport) Resize(containerWidth float64) {
	v.containerWidth = containerWidth
}

// SetGeometry follows a zone or product switch.
func (v *Viewport) SetGeometry(geom types.CanvasGeometry) {
	v.geom = geom
}
