package render

import (
	"strings"
	"testing"

	"github.com/arteva/arteva-backend/internal/editor"
	"github.com/arteva/arteva-backend/internal/types"
)

func TestExportSVGStructure(t *testing.T) {
	ed := testEditor()
	ed.Scene.SetBackground("#fef3c7")
	ed.Scene.AddShape(types.ObjectRect)
	ed.Scene.AddShape(types.ObjectCircle)
	ed.Scene.AddText(&editor.TextPreset{Text: "VOTRE MARQUE"})

	svg := ExportSVG(ed.Scene)
	for _, want := range []string{
		`viewBox="0 0 1000 800"`,
		"<rect",
		"<circle",
		"VOTRE MARQUE",
		"#fef3c7",
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
	if !strings.HasPrefix(svg, "<?xml") {
		t.Error("svg should start with an XML declaration")
	}
}

func TestExportSVGEscapesText(t *testing.T) {
	ed := testEditor()
	id := ed.Scene.AddText(nil)
	ed.Scene.SetTextContent([]string{id}, `Tom & "Jerry" <3`)

	svg := ExportSVG(ed.Scene)
	if strings.Contains(svg, `"Jerry" <3`) {
		t.Error("text content not escaped")
	}
	if !strings.Contains(svg, "&amp;") {
		t.Error("ampersand should be escaped")
	}
}

func TestExportSVGExcludesGuides(t *testing.T) {
	ed := testEditor()
	ed.Scene.AddShape(types.ObjectTriangle)
	svg := ExportSVG(ed.Scene)
	// Guide stroke colors must never appear in exported artwork.
	for _, guideStroke := range []string{"#ef4444", "#22c55e", "#1d4ed8"} {
		if strings.Contains(svg, guideStroke) {
			t.Errorf("guide stroke %s leaked into svg export", guideStroke)
		}
	}
}

func TestExportSVGSkipsInvisibleObjects(t *testing.T) {
	ed := testEditor()
	id := ed.Scene.AddText(&editor.TextPreset{Text: "HIDDEN-TEXT"})
	hidden := false
	ed.Scene.ObjectByID(id).Visible = &hidden

	svg := ExportSVG(ed.Scene)
	if strings.Contains(svg, "HIDDEN-TEXT") {
		t.Error("invisible object should not be exported")
	}
}
