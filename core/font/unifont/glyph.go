package unifont

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// WidthClass is the pixel width of a glyph.
type WidthClass int

// Glyphs are either 8 or 16 pixels wide.
const (
	Narrow WidthClass = 8
	Wide   WidthClass = 16
)

// Height is the number of pixel rows of every glyph.
const Height = 16

// Sizes of glyph bitmaps in bytes.
const (
	NarrowSize = Height * 1
	WideSize   = Height * 2
)

func (w WidthClass) String() string {
	switch w {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	}
	return fmt.Sprintf("WidthClass(%d)", int(w))
}

// Size returns the bitmap size in bytes for glyphs of width class w.
func (w WidthClass) Size() int {
	return Height * int(w) / 8
}

// Glyph is a decoded bitmap glyph. Its width class always matches the
// length of Bitmap: 16 bytes are narrow, 32 bytes are wide.
type Glyph struct {
	Bitmap []byte
	Width  WidthClass
}

// Placeholder returns the glyph used in place of unavailable glyphs:
// a blank narrow glyph. Every call returns a fresh copy.
func Placeholder() Glyph {
	return Glyph{Bitmap: make([]byte, NarrowSize), Width: Narrow}
}

// IsBlank is true if no pixel of g is set.
func (g Glyph) IsBlank() bool {
	for _, b := range g.Bitmap {
		if b != 0 {
			return false
		}
	}
	return true
}

// Rows renders g for trace output, one string per pixel row, with '#'
// for set and '.' for unset pixels.
func (g Glyph) Rows() []string {
	rows := make([]string, 0, Height)
	for y := 0; y < Height; y++ {
		var b strings.Builder
		for x := 0; x < int(g.Width); x++ {
			if g.pixel(x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

// pixel reports whether the pixel at column x, row y is set.
// Coordinates outside the glyph are never set.
func (g Glyph) pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= int(g.Width) || y >= Height {
		return false
	}
	stride := int(g.Width) / 8
	b := g.Bitmap[y*stride+x/8]
	return b&(0x80>>(x%8)) != 0
}

// ErrGlyphSize is wrapped by errors of DecodeGlyph for bitmaps which are
// neither of narrow nor of wide size.
var ErrGlyphSize = fmt.Errorf("glyph bitmap must have %d or %d bytes", NarrowSize, WideSize)

// DecodeGlyph decodes a hex bitmap, two hex digits per byte, left to right.
// The decoded bitmap must have exactly 16 bytes (narrow glyph) or 32 bytes
// (wide glyph); any other length is an error, as is malformed hex.
func DecodeGlyph(bitmap string) (Glyph, error) {
	data, err := hex.DecodeString(bitmap)
	if err != nil {
		return Glyph{}, fmt.Errorf("malformed glyph bitmap: %w", err)
	}
	switch len(data) {
	case NarrowSize:
		return Glyph{Bitmap: data, Width: Narrow}, nil
	case WideSize:
		return Glyph{Bitmap: data, Width: Wide}, nil
	}
	return Glyph{}, fmt.Errorf("%w, have %d", ErrGlyphSize, len(data))
}
