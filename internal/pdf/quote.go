package pdf

import "fmt"

// QuoteOptions is the already-localized, already-formatted line content of
// an itemized quote. This generator only lays lines out; wording and
// number formatting belong to the caller.
type QuoteOptions struct {
	HeaderLines   []string
	CustomerLines []string
	ItemLines     []string
	DiscountLines []string
	TotalLine     string
	NotesLines    []string
	FooterLines   []string
}

const (
	quoteMargin     = 54
	quoteLineHeight = 20
)

// GenerateQuote assembles the text-only quote document: one page, one
// font, left-aligned sections separated by fixed gaps.
func GenerateQuote(opts QuoteOptions) ([]byte, error) {
	b := NewBuilder()

	b.AddObject(1, func() {
		b.PushText("<< /Type /Catalog /Pages 2 0 R >>\n")
	})
	b.AddObject(2, func() {
		b.PushText("<< /Type /Pages /Kids [3 0 R] /Count 1 >>\n")
	})
	b.AddObject(3, func() {
		b.PushText(fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /Resources << /ProcSet [/PDF /Text] /Font << /F1 4 0 R >> >> /MediaBox [0 0 %d %d] /Contents 5 0 R >>\n",
			pageWidth, pageHeight))
	})
	b.AddObject(4, func() {
		b.PushText("<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\n")
	})

	b.AddObject(5, func() {
		cursorY := float64(pageHeight - quoteMargin)
		stream := ""

		writeLines := func(lines []string, fontSize int, extraSpacing float64) {
			for _, line := range lines {
				stream += fmt.Sprintf("BT /F1 %d Tf %d %g Td (%s) Tj ET\n", fontSize, quoteMargin, cursorY, escapeText(line))
				cursorY -= quoteLineHeight + extraSpacing
			}
		}

		writeLines(opts.HeaderLines, 16, 4)
		cursorY -= 8

		writeLines(opts.CustomerLines, 12, 0)
		cursorY -= 12

		writeLines(opts.ItemLines, 12, 0)

		if len(opts.DiscountLines) > 0 {
			cursorY -= 12
			writeLines(opts.DiscountLines, 12, 0)
		}

		cursorY -= 6
		writeLines([]string{opts.TotalLine}, 13, 0)

		if len(opts.NotesLines) > 0 {
			cursorY -= 12
			writeLines(opts.NotesLines, 11, 0)
		}

		if len(opts.FooterLines) > 0 {
			cursorY -= 18
			writeLines(opts.FooterLines, 11, 0)
		}

		b.PushText(fmt.Sprintf("<< /Length %d >>\nstream\n", len(stream)))
		b.PushText(stream)
		b.PushText("endstream\n")
	})

	return b.Build()
}
