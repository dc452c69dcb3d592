package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/render"
	"github.com/arteva/arteva-backend/internal/services"
)

func testLog(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func newExportRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := testLog(t)
	h := NewExportHandler(log, services.NewExportService(log, render.NewRenderer(log)))
	r := gin.New()
	r.POST("/api/export/:format", h.Export)
	return r
}

func exportBody() map[string]any {
	return map[string]any{
		"geometry": map[string]any{
			"width": 1000, "height": 800,
			"safe_margin": 50, "bleed_margin": 80, "dpi": 300,
		},
		"scene": map[string]any{
			"version": "1.0",
			"objects": []map[string]any{
				{"type": "text", "left": 500, "top": 400, "text": "Bonjour", "fontSize": 80, "originX": "center", "originY": "center"},
			},
		},
		"project_name": "mon-design",
	}
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestExportEndpointPNG(t *testing.T) {
	r := newExportRouter(t)
	w := postJSON(t, r, "/api/export/png", exportBody())
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "mon-design.png") {
		t.Errorf("content disposition %q", cd)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("body is not a png")
	}
}

func TestExportEndpointSVG(t *testing.T) {
	r := newExportRouter(t)
	w := postJSON(t, r, "/api/export/svg", exportBody())
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Bonjour") {
		t.Error("svg export missing scene text")
	}
}

func TestExportEndpointRejectsBadGeometry(t *testing.T) {
	r := newExportRouter(t)
	body := exportBody()
	body["geometry"] = map[string]any{"width": 0, "height": 0}
	w := postJSON(t, r, "/api/export/png", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var envelope map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("error body not json: %v", err)
	}
	if _, ok := envelope["error"]; !ok {
		t.Error("expected error envelope")
	}
}

func TestExportEndpointUnknownFormat(t *testing.T) {
	r := newExportRouter(t)
	w := postJSON(t, r, "/api/export/bmp", exportBody())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
