package types

import "fmt"

// CanvasGeometry describes the logical print canvas of a single imprint
// zone: dimensions in print pixels at the given DPI, plus the safe and
// bleed insets used by the guide overlay.
type CanvasGeometry struct {
	Width       int `json:"width" yaml:"width"`
	Height      int `json:"height" yaml:"height"`
	SafeMargin  int `json:"safe_margin" yaml:"safe_margin"`
	BleedMargin int `json:"bleed_margin" yaml:"bleed_margin"`
	DPI         int `json:"dpi" yaml:"dpi"`
}

func (g CanvasGeometry) Validate() error {
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", g.Width, g.Height)
	}
	if g.DPI <= 0 {
		return fmt.Errorf("canvas dpi must be positive, got %d", g.DPI)
	}
	limit := g.Width
	if g.Height < limit {
		limit = g.Height
	}
	limit /= 2
	if g.SafeMargin < 0 || g.SafeMargin >= limit {
		return fmt.Errorf("safe margin %d out of range [0, %d)", g.SafeMargin, limit)
	}
	if g.BleedMargin < 0 || g.BleedMargin >= limit {
		return fmt.Errorf("bleed margin %d out of range [0, %d)", g.BleedMargin, limit)
	}
	return nil
}

// AspectRatio is height over width, the ratio the viewport fit works in.
func (g CanvasGeometry) AspectRatio() float64 {
	if g.Width == 0 {
		return 0
	}
	return float64(g.Height) / float64(g.Width)
}
