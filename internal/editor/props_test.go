package editor

import (
	"testing"

	"github.com/arteva/arteva-backend/internal/types"
)

func TestSetPropertyCommonKey(t *testing.T) {
	s := newTestScene()
	id := s.AddShape(types.ObjectRect)
	s.MarkClean()

	changed := s.SetProperty([]string{id}, PropFill, "#ff0000")
	if changed != 1 {
		t.Fatalf("expected 1 change, got %d", changed)
	}
	if s.ObjectByID(id).Fill != "#ff0000" {
		t.Error("fill not applied")
	}
	if !s.IsDirty() {
		t.Error("property change should dirty the scene")
	}
}

func TestSetPropertyRejectsWrongVariant(t *testing.T) {
	s := newTestScene()
	rectID := s.AddShape(types.ObjectRect)
	s.MarkClean()

	if changed := s.SetProperty([]string{rectID}, PropRadius, 99.0); changed != 0 {
		t.Fatalf("radius on a rect should be rejected, got %d changes", changed)
	}
	if s.ObjectByID(rectID).Radius != 0 {
		t.Error("rejected key must not mutate the object")
	}
	if s.IsDirty() {
		t.Error("a fully rejected update should not dirty the scene")
	}
}

func TestSetPropertyRejectsWrongType(t *testing.T) {
	s := newTestScene()
	id := s.AddText(nil)
	s.MarkClean()

	if changed := s.SetProperty([]string{id}, PropFontSize, "big"); changed != 0 {
		t.Fatalf("string fontSize should be rejected, got %d changes", changed)
	}
	if changed := s.SetProperty([]string{id}, PropText, 42); changed != 0 {
		t.Fatalf("numeric text should be rejected, got %d changes", changed)
	}
}

func TestSetPropertyUnknownKey(t *testing.T) {
	s := newTestScene()
	id := s.AddShape(types.ObjectCircle)
	if changed := s.SetProperty([]string{id}, PropertyKey("shadowBlur"), 3.0); changed != 0 {
		t.Errorf("unknown key should be rejected, got %d changes", changed)
	}
}

func TestSetPropertyMultiSelection(t *testing.T) {
	s := newTestScene()
	a := s.AddShape(types.ObjectRect)
	b := s.AddShape(types.ObjectCircle)

	changed := s.SetProperty([]string{a, b, "stale"}, PropOpacity, 0.5)
	if changed != 2 {
		t.Fatalf("expected 2 changes, got %d", changed)
	}
	if s.ObjectByID(a).Opacity != 0.5 || s.ObjectByID(b).Opacity != 0.5 {
		t.Error("opacity not applied to the full selection")
	}
}

func TestSetPropertyNeverTouchesGuides(t *testing.T) {
	s := newTestScene()
	guide := s.GuideRect(GuideBleed)
	if changed := s.SetProperty([]string{guide.ID}, PropFill, "#123456"); changed != 0 {
		t.Fatalf("guides must not be addressable, got %d changes", changed)
	}
	if guide.Fill != "transparent" {
		t.Errorf("guide fill mutated to %q", guide.Fill)
	}
}

func TestSetTextContent(t *testing.T) {
	s := newTestScene()
	id := s.AddText(nil)
	rectID := s.AddShape(types.ObjectRect)

	if changed := s.SetTextContent([]string{id}, "Nouveau texte"); changed != 1 {
		t.Fatalf("expected text update, got %d", changed)
	}
	if s.ObjectByID(id).Text != "Nouveau texte" {
		t.Error("text not applied")
	}
	if changed := s.SetTextContent([]string{rectID}, "nope"); changed != 0 {
		t.Error("text content on a shape should be rejected")
	}
}
