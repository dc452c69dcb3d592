package editor

import "github.com/arteva/arteva-backend/internal/types"

// PropertyKey names a mutable field. The set is closed: every key is
// whitelisted per object kind below, and anything else is rejected rather
// than passed through.
type PropertyKey string

const (
	PropLeft        PropertyKey = "left"
	PropTop         PropertyKey = "top"
	PropFill        PropertyKey = "fill"
	PropStroke      PropertyKey = "stroke"
	PropStrokeWidth PropertyKey = "strokeWidth"
	PropOpacity     PropertyKey = "opacity"
	PropAngle       PropertyKey = "angle"
	PropScaleX      PropertyKey = "scaleX"
	PropScaleY      PropertyKey = "scaleY"
	PropText        PropertyKey = "text"
	PropFontSize    PropertyKey = "fontSize"
	PropFontFamily  PropertyKey = "fontFamily"
	PropFontWeight  PropertyKey = "fontWeight"
	PropTextAlign   PropertyKey = "textAlign"
	PropWidth       PropertyKey = "width"
	PropHeight      PropertyKey = "height"
	PropRadius      PropertyKey = "radius"
	PropRX          PropertyKey = "rx"
	PropRY          PropertyKey = "ry"
)

var commonProps = map[PropertyKey]bool{
	PropLeft:        true,
	PropTop:         true,
	PropFill:        true,
	PropStroke:      true,
	PropStrokeWidth: true,
	PropOpacity:     true,
	PropAngle:       true,
	PropScaleX:      true,
	PropScaleY:      true,
}

var variantProps = map[types.ObjectKind]map[PropertyKey]bool{
	types.ObjectText: {
		PropText:       true,
		PropFontSize:   true,
		PropFontFamily: true,
		PropFontWeight: true,
		PropTextAlign:  true,
		PropWidth:      true,
		PropHeight:     true,
	},
	types.ObjectRect: {
		PropWidth:  true,
		PropHeight: true,
		PropRX:     true,
		PropRY:     true,
	},
	types.ObjectCircle: {
		PropRadius: true,
	},
	types.ObjectTriangle: {
		PropWidth:  true,
		PropHeight: true,
	},
	types.ObjectImage: {},
}

func allowed(kind types.ObjectKind, key PropertyKey) bool {
	if commonProps[key] {
		return true
	}
	if m, ok := variantProps[kind]; ok {
		return m[key]
	}
	return false
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func asString(value any) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// applyProperty writes one whitelisted field. It returns false, mutating
// nothing, for keys outside the object's variant or for values of the
// wrong type.
func applyProperty(obj *types.SceneObject, key PropertyKey, value any) bool {
	if obj == nil || obj.Guide || !allowed(obj.Kind, key) {
		return false
	}
	switch key {
	case PropFill, PropStroke, PropText, PropFontFamily, PropFontWeight, PropTextAlign:
		s, ok := asString(value)
		if !ok {
			return false
		}
		switch key {
		case PropFill:
			obj.Fill = s
		case PropStroke:
			obj.Stroke = s
		case PropText:
			obj.Text = s
		case PropFontFamily:
			obj.FontFamily = s
		case PropFontWeight:
			obj.FontWeight = s
		case PropTextAlign:
			obj.TextAlign = s
		}
		return true
	default:
		f, ok := asFloat(value)
		if !ok {
			return false
		}
		switch key {
		case PropLeft:
			obj.Left = f
		case PropTop:
			obj.Top = f
		case PropStrokeWidth:
			obj.StrokeWidth = f
		case PropOpacity:
			obj.Opacity = f
		case PropAngle:
			obj.Angle = f
		case PropScaleX:
			obj.ScaleX = f
		case PropScaleY:
			obj.ScaleY = f
		case PropFontSize:
			obj.FontSize = f
		case PropWidth:
			obj.Width = f
		case PropHeight:
			obj.Height = f
		case PropRadius:
			obj.Radius = f
		case PropRX:
			obj.RX = f
		case PropRY:
			obj.RY = f
		default:
			return false
		}
		return true
	}
}

// SetProperty applies one property to every listed object, typically the
// current selection for bulk edits like color. Stale ids and rejected keys
// are skipped. Returns how many objects actually changed; the scene is
// dirtied only when that count is non-zero.
func (s *Scene) SetProperty(ids []string, key PropertyKey, value any) int {
	changed := 0
	for _, id := range ids {
		if applyProperty(s.ObjectByID(id), key, value) {
			changed++
		}
	}
	if changed > 0 {
		s.dirty = true
	}
	return changed
}

// SetTextContent updates the text of every text object in ids, skipping
// other kinds, mirroring the property panel's text field.
func (s *Scene) SetTextContent(ids []string, text string) int {
	changed := 0
	for _, id := range ids {
		obj := s.ObjectByID(id)
		if obj == nil || obj.Kind != types.ObjectText {
			continue
		}
		obj.Text = text
		changed++
	}
	if changed > 0 {
		s.dirty = true
	}
	return changed
}
