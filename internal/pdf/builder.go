// Package pdf assembles minimal single-page PDF documents by hand: an
// object table with byte offsets tracked as each object is serialized,
// then a cross-reference table and trailer. No PDF library is involved;
// the emitted byte layout is the contract.
package pdf

import (
	"bytes"
	"fmt"
	"strings"
)

// escapeText protects the three characters with meaning inside a PDF
// literal string.
func escapeText(text string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(text)
}

// Builder accumulates the document as chunks and records the byte offset
// of every numbered object. Offsets must equal the exact start position of
// the object's "N 0 obj" token in the final stream; a single byte of drift
// corrupts the file for every reader.
type Builder struct {
	chunks  [][]byte
	offsets []int
	length  int
}

func NewBuilder() *Builder {
	b := &Builder{offsets: []int{0}}
	b.PushText("%PDF-1.4\n")
	return b
}

func (b *Builder) PushText(text string) {
	b.PushBinary([]byte(text))
}

func (b *Builder) PushBinary(data []byte) {
	b.chunks = append(b.chunks, data)
	b.length += len(data)
}

// AddObject records the current byte offset for id, then emits the object
// envelope around whatever content writes.
func (b *Builder) AddObject(id int, content func()) {
	for len(b.offsets) <= id {
		b.offsets = append(b.offsets, 0)
	}
	b.offsets[id] = b.length
	b.PushText(fmt.Sprintf("%d 0 obj\n", id))
	content()
	b.PushText("endobj\n")
}

// Build emits the xref table and trailer and concatenates the chunks. The
// assembled length is checked against the tracked running total before the
// bytes leave this package.
func (b *Builder) Build() ([]byte, error) {
	xrefStart := b.length
	b.PushText(fmt.Sprintf("xref\n0 %d\n", len(b.offsets)))
	b.PushText("0000000000 65535 f \n")
	for i := 1; i < len(b.offsets); i++ {
		b.PushText(fmt.Sprintf("%010d 00000 n \n", b.offsets[i]))
	}
	b.PushText(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(b.offsets), xrefStart))

	var out bytes.Buffer
	out.Grow(b.length)
	for _, chunk := range b.chunks {
		out.Write(chunk)
	}
	if out.Len() != b.length {
		return nil, fmt.Errorf("pdf builder length mismatch: tracked %d, assembled %d", b.length, out.Len())
	}
	return out.Bytes(), nil
}
