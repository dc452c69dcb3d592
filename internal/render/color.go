package render

import (
	"encoding/hex"
	"image/color"
	"strings"
)

// parseColor understands #RGB, #RRGGBB and the literal "transparent" the
// editor uses for guide fills. Anything unparseable falls back to opaque
// black rather than erroring mid-render.
func parseColor(s string) (color.NRGBA, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "transparent" || s == "none" {
		return color.NRGBA{}, false
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}, true
	}
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 3 {
		return color.NRGBA{R: 0, G: 0, B: 0, A: 255}, true
	}
	return color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 255}, true
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity <= 0 || opacity >= 1 {
		return c
	}
	c.A = uint8(float64(c.A) * opacity)
	return c
}
