package render

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"testing"

	"github.com/arteva/arteva-backend/internal/editor"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/types"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func testEditor() *editor.Editor {
	geom := types.CanvasGeometry{Width: 1000, Height: 800, SafeMargin: 50, BleedMargin: 80, DPI: 300}
	return editor.New(geom, 1400)
}

func TestCaptureRestoresViewState(t *testing.T) {
	r := NewRenderer(testLogger(t))
	ed := testEditor()
	ed.Scene.AddShape(types.ObjectRect)
	vis := editor.GuideVisibility{Bleed: true, Safe: false, Print: true}
	ed.Scene.SetGuideVisibility(vis)
	ed.Viewport.SetZoom(2.5)

	if _, err := r.Capture(ed, FormatPNG); err != nil {
		t.Fatalf("capture: %v", err)
	}
	if got := ed.Scene.GuideVisibility(); got != vis {
		t.Errorf("guide visibility not restored: %+v", got)
	}
	if ed.Viewport.Zoom() != 2.5 {
		t.Errorf("zoom not restored: %v", ed.Viewport.Zoom())
	}
}

func TestCaptureRestoresViewStateOnFailure(t *testing.T) {
	r := NewRenderer(testLogger(t))
	ed := testEditor()
	ed.Scene.AddImage("data:image/png;base64,%%%not-base64%%%", 100, 100)
	ed.Viewport.SetZoom(1.8)

	if _, err := r.Capture(ed, FormatPNG); err == nil {
		t.Fatal("expected capture to fail on a broken image object")
	}
	if ed.Viewport.Zoom() != 1.8 {
		t.Errorf("zoom not restored after failed capture: %v", ed.Viewport.Zoom())
	}
	if got := ed.Scene.GuideVisibility(); got != editor.DefaultGuideVisibility() {
		t.Errorf("guide visibility not restored after failed capture: %+v", got)
	}
}

func TestCaptureDimensionsAreLogical(t *testing.T) {
	r := NewRenderer(testLogger(t))
	ed := testEditor()
	ed.Viewport.SetZoom(0.3) // must not shrink the capture

	artifact, err := r.Capture(ed, FormatPNG)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if artifact.Width != 1000 || artifact.Height != 800 {
		t.Errorf("expected logical 1000x800, got %dx%d", artifact.Width, artifact.Height)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(artifact.Data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 1000 || cfg.Height != 800 {
		t.Errorf("encoded image is %dx%d, want 1000x800", cfg.Width, cfg.Height)
	}
}

func TestCaptureJPEG(t *testing.T) {
	r := NewRenderer(testLogger(t))
	ed := testEditor()
	artifact, err := r.Capture(ed, FormatJPEG)
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(artifact.Data))
	if err != nil || format != "jpeg" {
		t.Errorf("expected jpeg output, got format=%q err=%v", format, err)
	}
}

func TestCaptureUnsupportedFormat(t *testing.T) {
	r := NewRenderer(testLogger(t))
	if _, err := r.Capture(testEditor(), CaptureFormat("webp")); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestCapturePreviewMultiplier(t *testing.T) {
	r := NewRenderer(testLogger(t))
	data, err := r.CapturePreview(testEditor())
	if err != nil {
		t.Fatalf("preview: %v", err)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 200 || cfg.Height != 160 {
		t.Errorf("expected 0.2 multiplier (200x160), got %dx%d", cfg.Width, cfg.Height)
	}
}
