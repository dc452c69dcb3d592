package services

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/render"
	"github.com/arteva/arteva-backend/internal/types"
)

func newTestExportService(t *testing.T) *ExportService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return NewExportService(log, render.NewRenderer(log))
}

func TestExportFilenameFallbacks(t *testing.T) {
	cases := []struct {
		project, slug, want string
	}{
		{"Mon Design", "tshirt", "Mon Design.png"},
		{"", "tshirt", "tshirt.png"},
		{"  ", "", "design.png"},
	}
	for _, c := range cases {
		if got := exportFilename(c.project, c.slug, "png"); got != c.want {
			t.Errorf("exportFilename(%q,%q) = %q, want %q", c.project, c.slug, got, c.want)
		}
	}
}

func TestExportJSONIsSceneDocument(t *testing.T) {
	svc := newTestExportService(t)
	ed := newTestEditor()
	ed.Scene.AddShape(types.ObjectRect)

	artifact, err := svc.Export(ed, ExportJSON, "draft", "tshirt")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if artifact.ContentType != "application/json" || artifact.Filename != "draft.json" {
		t.Errorf("unexpected artifact meta: %+v", artifact)
	}
	var doc types.SceneDocument
	if err := json.Unmarshal(artifact.Data, &doc); err != nil {
		t.Fatalf("exported json does not parse: %v", err)
	}
	if len(doc.Objects) != 1 {
		t.Errorf("expected 1 object, got %d", len(doc.Objects))
	}
}

func TestExportSVG(t *testing.T) {
	svc := newTestExportService(t)
	ed := newTestEditor()
	ed.Scene.AddShape(types.ObjectCircle)

	artifact, err := svc.Export(ed, ExportSVG, "", "mug")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if artifact.ContentType != "image/svg+xml" || artifact.Filename != "mug.svg" {
		t.Errorf("unexpected artifact meta: %+v", artifact)
	}
	if !strings.Contains(string(artifact.Data), "<circle") {
		t.Error("svg export missing the circle")
	}
}

func TestExportRasterFormats(t *testing.T) {
	svc := newTestExportService(t)
	ed := newTestEditor()

	png, err := svc.Export(ed, ExportPNG, "p", "s")
	if err != nil {
		t.Fatalf("png export: %v", err)
	}
	if png.ContentType != "image/png" || len(png.Data) == 0 {
		t.Errorf("unexpected png artifact: %+v", png)
	}

	jpg, err := svc.Export(ed, ExportJPEG, "p", "s")
	if err != nil {
		t.Fatalf("jpeg export: %v", err)
	}
	if jpg.Filename != "p.jpg" || len(jpg.Data) == 0 {
		t.Errorf("unexpected jpeg artifact: %+v", jpg)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	svc := newTestExportService(t)
	if _, err := svc.Export(newTestEditor(), ExportFormat("bmp"), "", ""); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
