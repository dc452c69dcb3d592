package editor

import "github.com/arteva/arteva-backend/internal/types"

// ObjectStyle is the shared default styling handed to every object at
// creation time. It replaces any notion of globally mutated defaults: each
// construction site receives the record explicitly.
type ObjectStyle struct {
	TextFill   string
	TextFont   string
	TextSize   float64
	ShapeFill  string
	AccentFill string
	WarmFill   string
}

// DefaultObjectStyle mirrors the storefront palette.
func DefaultObjectStyle() ObjectStyle {
	return ObjectStyle{
		TextFill:   "#1f2937",
		TextFont:   "Cairo, Inter, sans-serif",
		TextSize:   120,
		ShapeFill:  "#1f6f8b",
		AccentFill: "#f89d13",
		WarmFill:   "#f97316",
	}
}

// TextPreset overrides parts of the default text styling when a sidebar
// preset (heading, slogan, ...) is chosen.
type TextPreset struct {
	Text       string
	FontSize   float64
	FontWeight string
	Fill       string
}

func (s ObjectStyle) newShape(kind types.ObjectKind) *types.SceneObject {
	switch kind {
	case types.ObjectRect:
		return &types.SceneObject{
			Kind:   types.ObjectRect,
			Width:  360,
			Height: 220,
			Fill:   s.ShapeFill,
			RX:     12,
			RY:     12,
		}
	case types.ObjectCircle:
		return &types.SceneObject{
			Kind:   types.ObjectCircle,
			Radius: 140,
			Fill:   s.AccentFill,
		}
	case types.ObjectTriangle:
		return &types.SceneObject{
			Kind:   types.ObjectTriangle,
			Width:  260,
			Height: 220,
			Fill:   s.WarmFill,
		}
	default:
		return nil
	}
}
