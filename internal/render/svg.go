package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/arteva/arteva-backend/internal/editor"
	"github.com/arteva/arteva-backend/internal/types"
)

// ExportSVG serializes the scene as standalone vector markup. Guides are
// not part of the document. Units are logical canvas pixels, so the file
// is print-resolution regardless of on-screen zoom.
func ExportSVG(scene *editor.Scene) string {
	geom := scene.Geometry()
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<?xml version="1.0" encoding="UTF-8"?>`+"\n")
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		geom.Width, geom.Height, geom.Width, geom.Height)
	if bg := scene.Background(); bg != "" && bg != "transparent" {
		fmt.Fprintf(&buf, `<rect width="%d" height="%d" fill="%s"/>`+"\n", geom.Width, geom.Height, escapeAttr(bg))
	}
	for _, obj := range scene.OrderedVisibleObjects() {
		writeSVGObject(&buf, obj)
	}
	buf.WriteString("</svg>\n")
	return buf.String()
}

func escapeAttr(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func svgPaint(obj *types.SceneObject) string {
	out := ""
	if obj.Fill != "" {
		out += fmt.Sprintf(` fill="%s"`, escapeAttr(obj.Fill))
	} else {
		out += ` fill="none"`
	}
	if obj.Stroke != "" && obj.StrokeWidth > 0 {
		out += fmt.Sprintf(` stroke="%s" stroke-width="%g"`, escapeAttr(obj.Stroke), obj.StrokeWidth)
	}
	if obj.Opacity > 0 && obj.Opacity < 1 {
		out += fmt.Sprintf(` opacity="%g"`, obj.Opacity)
	}
	return out
}

func svgTransform(obj *types.SceneObject, cx, cy float64) string {
	if obj.Angle == 0 {
		return ""
	}
	return fmt.Sprintf(` transform="rotate(%g %g %g)"`, obj.Angle, cx, cy)
}

func writeSVGObject(buf *bytes.Buffer, obj *types.SceneObject) {
	x, y, w, h := bounds(obj)
	cx, cy := x+w/2, y+h/2

	switch obj.Kind {
	case types.ObjectRect:
		extra := ""
		if obj.RX > 0 {
			extra = fmt.Sprintf(` rx="%g" ry="%g"`, obj.RX, obj.RY)
		}
		fmt.Fprintf(buf, `<rect x="%g" y="%g" width="%g" height="%g"%s%s%s/>`+"\n",
			x, y, w, h, extra, svgPaint(obj), svgTransform(obj, cx, cy))
	case types.ObjectCircle:
		fmt.Fprintf(buf, `<circle cx="%g" cy="%g" r="%g"%s%s/>`+"\n",
			cx, cy, obj.Radius*scaleOr1(obj.ScaleX), svgPaint(obj), svgTransform(obj, cx, cy))
	case types.ObjectTriangle:
		fmt.Fprintf(buf, `<polygon points="%g,%g %g,%g %g,%g"%s%s/>`+"\n",
			cx, y, x, y+h, x+w, y+h, svgPaint(obj), svgTransform(obj, cx, cy))
	case types.ObjectText:
		size := obj.FontSize
		if size <= 0 {
			size = 16
		}
		family := obj.FontFamily
		if family == "" {
			family = "sans-serif"
		}
		weight := ""
		if obj.FontWeight != "" {
			weight = fmt.Sprintf(` font-weight="%s"`, escapeAttr(obj.FontWeight))
		}
		fmt.Fprintf(buf, `<text x="%g" y="%g" font-size="%g" font-family="%s"%s text-anchor="middle" dominant-baseline="central"%s%s>%s</text>`+"\n",
			cx, cy, size, escapeAttr(family), weight, svgPaint(obj), svgTransform(obj, cx, cy), escapeAttr(obj.Text))
	case types.ObjectImage:
		if obj.Src == "" {
			return
		}
		fmt.Fprintf(buf, `<image x="%g" y="%g" width="%g" height="%g" xlink:href="%s"%s/>`+"\n",
			x, y, w, h, escapeAttr(obj.Src), svgTransform(obj, cx, cy))
	}
}
