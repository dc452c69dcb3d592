package render

import (
	"fmt"

	"github.com/arteva/arteva-backend/internal/editor"
)

type CaptureFormat string

const (
	FormatPNG  CaptureFormat = "png"
	FormatJPEG CaptureFormat = "jpeg"
)

// RasterArtifact is a one-shot capture output. Width and Height are the
// logical canvas pixel dimensions, which the proof generator needs to
// place the embedded preview at the right aspect ratio.
type RasterArtifact struct {
	Format CaptureFormat
	Data   []byte
	Width  int
	Height int
}

// captureGuard snapshots the view state a capture must suppress (guide
// visibility and the user zoom) and puts it back on every exit path.
// Capture output must be resolution-correct at 1:1 whatever the screen
// currently shows.
type captureGuard struct {
	ed       *editor.Editor
	prevVis  editor.GuideVisibility
	prevZoom float64
}

func beginCapture(ed *editor.Editor) *captureGuard {
	g := &captureGuard{
		ed:       ed,
		prevVis:  ed.Scene.GuideVisibility(),
		prevZoom: ed.Viewport.Zoom(),
	}
	ed.Scene.SetGuideVisibility(editor.GuideVisibility{})
	ed.Viewport.ResetZoom()
	return g
}

func (g *captureGuard) restore() {
	g.ed.Scene.SetGuideVisibility(g.prevVis)
	g.ed.Viewport.SetZoom(g.prevZoom)
}

// Capture rasterizes the scene without guides at identity transform.
func (r *Renderer) Capture(ed *editor.Editor, format CaptureFormat) (artifact *RasterArtifact, err error) {
	guard := beginCapture(ed)
	defer guard.restore()

	img, err := r.Render(ed.Scene, Options{IncludeGuides: false})
	if err != nil {
		return nil, err
	}

	var data []byte
	switch format {
	case FormatPNG:
		data, err = EncodePNG(img)
	case FormatJPEG:
		data, err = EncodeJPEG(img)
	default:
		return nil, fmt.Errorf("unsupported capture format %q", format)
	}
	if err != nil {
		return nil, err
	}
	geom := ed.Scene.Geometry()
	return &RasterArtifact{
		Format: format,
		Data:   data,
		Width:  geom.Width,
		Height: geom.Height,
	}, nil
}

// CapturePreview renders the small PNG thumbnail stored alongside a saved
// project, at the storefront's 0.2 multiplier.
func (r *Renderer) CapturePreview(ed *editor.Editor) ([]byte, error) {
	guard := beginCapture(ed)
	defer guard.restore()

	img, err := r.Render(ed.Scene, Options{IncludeGuides: false})
	if err != nil {
		return nil, err
	}
	return EncodePNG(Downscale(img, 0.2))
}
