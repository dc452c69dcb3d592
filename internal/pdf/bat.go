package pdf

import (
	"fmt"
	"math"

	"github.com/arteva/arteva-backend/internal/utils"
)

// BATOptions carries everything the proof document shows: the order
// specification text block and the JPEG preview to embed. PreviewDataURL
// must hold JPEG bytes; they pass through to the image XObject verbatim,
// with no re-encoding.
type BATOptions struct {
	ProductName    string
	CustomerNote   string
	MethodLabel    string
	ZoneLabel      string
	Quantity       int
	UnitPrice      string
	TotalPrice     string
	SetupFee       string
	LeadTime       string
	PreviewDataURL string
	Locale         string // "fr" or "ar"
	CanvasWidth    int
	CanvasHeight   int
}

const (
	pageWidth  = 595 // A4 portrait, points
	pageHeight = 842

	batMargin      = 48
	batLineHeight  = 24
	maxImageHeight = 420
)

type batLabels struct {
	qty, unit, setup, total, note, caption string
}

func labelsFor(locale string) batLabels {
	if locale == "ar" {
		return batLabels{
			qty:     "قطعة",
			unit:    "سعر الوحدة",
			setup:   "رسوم الإعداد",
			total:   "الإجمالي الكلي",
			note:    "ملاحظة",
			caption: "معاينة التصميم",
		}
	}
	return batLabels{
		qty:     "pcs",
		unit:    "Prix unitaire",
		setup:   "Frais de calage",
		total:   "Total",
		note:    "Note",
		caption: "Aperçu design",
	}
}

// GenerateBAT assembles the single-page proof: order spec text at the top,
// the design preview fitted and centered below. Malformed preview input
// fails before any object is emitted.
func GenerateBAT(opts BATOptions) ([]byte, error) {
	_, previewBytes, err := utils.DecodeDataURL(opts.PreviewDataURL)
	if err != nil {
		return nil, fmt.Errorf("proof preview: %w", err)
	}
	if len(previewBytes) == 0 {
		return nil, fmt.Errorf("proof preview: empty payload")
	}

	sourceWidth := opts.CanvasWidth
	if sourceWidth < 1 {
		sourceWidth = 1
	}
	sourceHeight := opts.CanvasHeight
	if sourceHeight < 1 {
		sourceHeight = 1
	}
	aspect := math.Max(0.1, float64(sourceHeight)/float64(sourceWidth))
	maxImageWidth := float64(pageWidth - batMargin*2)

	labels := labelsFor(opts.Locale)
	b := NewBuilder()

	b.AddObject(1, func() {
		b.PushText("<< /Type /Catalog /Pages 2 0 R >>\n")
	})
	b.AddObject(2, func() {
		b.PushText("<< /Type /Pages /Kids [3 0 R] /Count 1 >>\n")
	})
	b.AddObject(3, func() {
		b.PushText(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /Resources << /ProcSet [/PDF /Text /ImageC] /Font << /F1 5 0 R >> /XObject << /Im0 4 0 R >> >> /MediaBox [0 0 %d %d] /Contents 6 0 R >>\n",
			pageWidth, pageHeight))
	})
	b.AddObject(4, func() {
		b.PushText(fmt.Sprintf(
			"<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode /Length %d >>\n",
			sourceWidth, sourceHeight, len(previewBytes)))
		b.PushText("stream\n")
		b.PushBinary(previewBytes)
		b.PushText("\nendstream\n")
	})
	b.AddObject(5, func() {
		b.PushText("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\n")
	})

	b.AddObject(6, func() {
		type line struct {
			value string
			size  int
		}
		headerLines := []line{
			{opts.ProductName, 18},
			{fmt.Sprintf("%s | %s", opts.MethodLabel, opts.ZoneLabel), 13},
			{fmt.Sprintf("%d %s | %s", opts.Quantity, labels.qty, opts.LeadTime), 13},
			{fmt.Sprintf("%s: %s | %s: %s", labels.unit, opts.UnitPrice, labels.setup, opts.SetupFee), 13},
			{fmt.Sprintf("%s: %s", labels.total, opts.TotalPrice), 13},
		}

		cursorY := float64(pageHeight - 72)
		stream := ""
		for _, l := range headerLines {
			stream += fmt.Sprintf("BT /F1 %d Tf %d %g Td (%s) Tj ET\n", l.size, batMargin, cursorY, escapeText(l.value))
			cursorY -= batLineHeight
		}
		if opts.CustomerNote != "" {
			stream += fmt.Sprintf("BT /F1 12 Tf %d %g Td (%s) Tj ET\n", batMargin, cursorY,
				escapeText(fmt.Sprintf("%s: %s", labels.note, opts.CustomerNote)))
			cursorY -= batLineHeight
		}

		// Fit-inside placement: height-constrained first, width fallback.
		cursorY -= 36
		availableHeight := math.Max(160, cursorY-float64(batMargin+80))
		scaledHeight := math.Min(math.Min(availableHeight, maxImageHeight), float64(sourceHeight))
		scaledWidth := scaledHeight / aspect
		if scaledWidth > maxImageWidth {
			scaledWidth = maxImageWidth
			scaledHeight = scaledWidth * aspect
		}

		imageX := (float64(pageWidth) - scaledWidth) / 2
		imageY := math.Max(float64(batMargin+100), cursorY-scaledHeight)

		captionY := imageY - 14
		stream += fmt.Sprintf("BT /F1 11 Tf %d %g Td (%s) Tj ET\n", batMargin, captionY, escapeText(labels.caption))
		stream += fmt.Sprintf("q %g 0 0 %g %g %g cm /Im0 Do Q\n", scaledWidth, scaledHeight, imageX, imageY)

		b.PushText(fmt.Sprintf("<< /Length %d >>\nstream\n", len(stream)))
		b.PushText(stream)
		b.PushText("endstream\n")
	})

	return b.Build()
}
