package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"strings"

	_ "image/gif"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/arteva/arteva-backend/internal/editor"
	"github.com/arteva/arteva-backend/internal/logger"
	"github.com/arteva/arteva-backend/internal/types"
	"github.com/arteva/arteva-backend/internal/utils"
)

// JPEGQuality matches the fixed capture quality of the storefront editor.
const JPEGQuality = 92

type Options struct {
	IncludeGuides bool
}

// Renderer rasterizes a scene at its logical canvas size. A TTF can be
// supplied via EDITOR_FONT_PATH; without one text falls back to the
// drawing library's built-in face.
type Renderer struct {
	log   *logger.Logger
	font  *truetype.Font
	faces map[float64]font.Face
}

func NewRenderer(log *logger.Logger) *Renderer {
	r := &Renderer{
		log:   log.With("service", "Renderer"),
		faces: map[float64]font.Face{},
	}
	fontPath := strings.TrimSpace(os.Getenv("EDITOR_FONT_PATH"))
	if fontPath == "" {
		r.log.Debug("EDITOR_FONT_PATH not set, using built-in face")
		return r
	}
	raw, err := os.ReadFile(fontPath)
	if err != nil {
		r.log.Warn("could not read editor font, using built-in face", "path", fontPath, "error", err)
		return r
	}
	parsed, err := truetype.Parse(raw)
	if err != nil {
		r.log.Warn("could not parse editor font, using built-in face", "path", fontPath, "error", err)
		return r
	}
	r.font = parsed
	return r
}

func (r *Renderer) face(size float64) font.Face {
	if r.font == nil {
		return nil
	}
	if f, ok := r.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(r.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	r.faces[size] = f
	return f
}

// Render draws the scene at its logical pixel size. Objects paint in
// scene order, back to front; guides are painted last and only on request.
func (r *Renderer) Render(scene *editor.Scene, opts Options) (image.Image, error) {
	geom := scene.Geometry()
	if err := geom.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	dc := gg.NewContext(geom.Width, geom.Height)

	bg, ok := parseColor(scene.Background())
	if !ok {
		bg = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	dc.SetColor(bg)
	dc.Clear()

	for _, obj := range scene.OrderedVisibleObjects() {
		if err := r.drawObject(dc, obj); err != nil {
			return nil, fmt.Errorf("render object %s: %w", obj.ID, err)
		}
	}

	if opts.IncludeGuides {
		for _, guide := range scene.GuideRects() {
			if !guide.IsVisible() {
				continue
			}
			drawGuide(dc, guide)
		}
	}

	return dc.Image(), nil
}

func scaleOr1(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}

func opacityOr1(o float64) float64 {
	if o == 0 {
		return 1
	}
	return o
}

// bounds resolves the object's placement box from its origin semantics:
// center origins anchor Left/Top at the middle, edge origins at the corner.
func bounds(obj *types.SceneObject) (x, y, w, h float64) {
	w = obj.Width * scaleOr1(obj.ScaleX)
	h = obj.Height * scaleOr1(obj.ScaleY)
	if obj.Kind == types.ObjectCircle {
		d := obj.Radius * 2 * scaleOr1(obj.ScaleX)
		w, h = d, d
	}
	x = obj.Left
	y = obj.Top
	if obj.OriginX == types.OriginCenter {
		x -= w / 2
	}
	if obj.OriginY == types.OriginCenter {
		y -= h / 2
	}
	return x, y, w, h
}

func (r *Renderer) drawObject(dc *gg.Context, obj *types.SceneObject) error {
	x, y, w, h := bounds(obj)
	cx, cy := x+w/2, y+h/2

	rotated := obj.Angle != 0
	if rotated {
		dc.Push()
		dc.RotateAbout(gg.Radians(obj.Angle), cx, cy)
	}

	switch obj.Kind {
	case types.ObjectRect:
		if obj.RX > 0 {
			dc.DrawRoundedRectangle(x, y, w, h, obj.RX*scaleOr1(obj.ScaleX))
		} else {
			dc.DrawRectangle(x, y, w, h)
		}
		r.paint(dc, obj)
	case types.ObjectCircle:
		dc.DrawCircle(cx, cy, obj.Radius*scaleOr1(obj.ScaleX))
		r.paint(dc, obj)
	case types.ObjectTriangle:
		dc.MoveTo(cx, y)
		dc.LineTo(x, y+h)
		dc.LineTo(x+w, y+h)
		dc.ClosePath()
		r.paint(dc, obj)
	case types.ObjectText:
		r.drawText(dc, obj, cx, cy)
	case types.ObjectImage:
		if err := drawImage(dc, obj, x, y, w, h); err != nil {
			if rotated {
				dc.Pop()
			}
			return err
		}
	}

	if rotated {
		dc.Pop()
	}
	return nil
}

func (r *Renderer) paint(dc *gg.Context, obj *types.SceneObject) {
	fill, hasFill := parseColor(obj.Fill)
	stroke, hasStroke := parseColor(obj.Stroke)
	op := opacityOr1(obj.Opacity)
	if hasFill {
		dc.SetColor(withOpacity(fill, op))
		if hasStroke && obj.StrokeWidth > 0 {
			dc.FillPreserve()
		} else {
			dc.Fill()
		}
	}
	if hasStroke && obj.StrokeWidth > 0 {
		dc.SetColor(withOpacity(stroke, op))
		dc.SetLineWidth(obj.StrokeWidth)
		dc.Stroke()
	}
	dc.SetDash()
}

func (r *Renderer) drawText(dc *gg.Context, obj *types.SceneObject, cx, cy float64) {
	fill, ok := parseColor(obj.Fill)
	if !ok {
		fill = color.NRGBA{R: 31, G: 41, B: 55, A: 255}
	}
	dc.SetColor(withOpacity(fill, opacityOr1(obj.Opacity)))
	size := obj.FontSize
	if size <= 0 {
		size = 16
	}
	if face := r.face(size); face != nil {
		dc.SetFontFace(face)
	}
	if obj.Text == "" {
		return
	}
	lines := strings.Split(obj.Text, "\n")
	lineHeight := size * 1.2
	startY := cy - lineHeight*float64(len(lines)-1)/2
	for i, line := range lines {
		dc.DrawStringAnchored(line, cx, startY+lineHeight*float64(i), 0.5, 0.5)
	}
}

func drawImage(dc *gg.Context, obj *types.SceneObject, x, y, w, h float64) error {
	if obj.Src == "" {
		return nil
	}
	_, raw, err := utils.DecodeDataURL(obj.Src)
	if err != nil {
		return fmt.Errorf("decode image source: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}
	tw := int(math.Round(w))
	th := int(math.Round(h))
	if tw <= 0 || th <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	dc.DrawImage(dst, int(math.Round(x)), int(math.Round(y)))
	return nil
}

func drawGuide(dc *gg.Context, guide *types.SceneObject) {
	stroke, ok := parseColor(guide.Stroke)
	if !ok {
		return
	}
	dc.SetColor(stroke)
	dc.SetLineWidth(guide.StrokeWidth)
	if len(guide.StrokeDashArray) > 0 {
		dash := make([]float64, len(guide.StrokeDashArray))
		for i, d := range guide.StrokeDashArray {
			dash[i] = float64(d)
		}
		dc.SetDash(dash...)
	}
	dc.DrawRectangle(guide.Left, guide.Top, guide.Width, guide.Height)
	dc.Stroke()
	dc.SetDash()
}

// EncodePNG is the lossless capture encoding.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeJPEG captures at the editor's fixed quality factor.
func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Downscale produces the small preview raster stored with project list
// rows, at a fraction of the logical size.
func Downscale(img image.Image, multiplier float64) image.Image {
	if multiplier <= 0 || multiplier >= 1 {
		return img
	}
	b := img.Bounds()
	tw := int(math.Round(float64(b.Dx()) * multiplier))
	th := int(math.Round(float64(b.Dy()) * multiplier))
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
