package editor

import "github.com/arteva/arteva-backend/internal/types"

type GuideKind string

const (
	GuideBleed GuideKind = "bleed"
	GuideSafe  GuideKind = "safe"
	GuidePrint GuideKind = "print"
)

// GuideVisibility toggles each overlay independently. All three default on.
type GuideVisibility struct {
	Bleed bool `json:"bleed"`
	Safe  bool `json:"safe"`
	Print bool `json:"print"`
}

func DefaultGuideVisibility() GuideVisibility {
	return GuideVisibility{Bleed: true, Safe: true, Print: true}
}

func (v GuideVisibility) visible(kind GuideKind) bool {
	switch kind {
	case GuideBleed:
		return v.Bleed
	case GuideSafe:
		return v.Safe
	case GuidePrint:
		return v.Print
	}
	return false
}

// guideSet holds the three overlay rectangles. They are rebuilt from
// scratch on every geometry or zone change so no stale instance can survive
// a product switch.
type guideSet struct {
	rects map[GuideKind]*types.SceneObject
}

// buildGuides derives the three overlay rectangles from the canvas
// geometry. Naming follows the print spec: the "bleed" rectangle is the
// full canvas extent at zero inset, the "print" (trim) rectangle is inset
// by the bleed margin, and the "safe" rectangle is inset by the safe
// margin. The bleed margin names the trim inset, not the bleed rectangle;
// both meanings are kept apart here on purpose.
func buildGuides(geom types.CanvasGeometry, vis GuideVisibility) guideSet {
	w := float64(geom.Width)
	h := float64(geom.Height)
	safe := float64(geom.SafeMargin)
	bleed := float64(geom.BleedMargin)

	rects := map[GuideKind]*types.SceneObject{
		GuideBleed: {
			Kind:            types.ObjectRect,
			Left:            0,
			Top:             0,
			Width:           w,
			Height:          h,
			OriginX:         types.OriginLeft,
			OriginY:         types.OriginTop,
			Stroke:          "#ef4444",
			StrokeWidth:     6,
			StrokeDashArray: []int{20, 12},
			Fill:            "transparent",
			Guide:           true,
			Name:            string(GuideBleed),
		},
		GuideSafe: {
			Kind:            types.ObjectRect,
			Left:            safe,
			Top:             safe,
			Width:           w - safe*2,
			Height:          h - safe*2,
			OriginX:         types.OriginLeft,
			OriginY:         types.OriginTop,
			Stroke:          "#22c55e",
			StrokeWidth:     4,
			StrokeDashArray: []int{12, 12},
			Fill:            "transparent",
			Guide:           true,
			Name:            string(GuideSafe),
		},
		GuidePrint: {
			Kind:            types.ObjectRect,
			Left:            bleed,
			Top:             bleed,
			Width:           w - bleed*2,
			Height:          h - bleed*2,
			OriginX:         types.OriginLeft,
			OriginY:         types.OriginTop,
			Stroke:          "#1d4ed8",
			StrokeWidth:     3,
			StrokeDashArray: []int{10, 10},
			Fill:            "transparent",
			Guide:           true,
			Name:            string(GuidePrint),
		},
	}
	for kind, rect := range rects {
		visible := vis.visible(kind)
		rect.Visible = &visible
	}
	return guideSet{rects: rects}
}

func (g guideSet) rect(kind GuideKind) *types.SceneObject {
	return g.rects[kind]
}

// ordered returns the guides in paint order: bleed behind, then safe, then
// print on top.
func (g guideSet) ordered() []*types.SceneObject {
	out := make([]*types.SceneObject, 0, 3)
	for _, kind := range []GuideKind{GuideBleed, GuideSafe, GuidePrint} {
		if r := g.rects[kind]; r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (g guideSet) applyVisibility(vis GuideVisibility) {
	for kind, rect := range g.rects {
		visible := vis.visible(kind)
		rect.Visible = &visible
	}
}
