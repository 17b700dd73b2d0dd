/*
Package unifont reads bitmap glyphs in the '.hex' format of GNU Unifont.

A hex font file holds one glyph per line:

    00E9:0000000C18003C66667E60603C000000

The part before the first colon is the code point in hexadecimal, the part
after it is the bitmap, two hex digits per byte, row by row from top to
bottom. Glyphs are 16 pixels high. A bitmap of 32 hex digits (16 bytes)
is a narrow glyph 8 pixels wide; 64 hex digits (32 bytes, two bytes per
row) make a wide glyph 16 pixels wide. The most significant bit of a row
is its leftmost pixel.

Loading does not interpret bitmaps: a Database maps code points to the
raw hex text, which is decoded on demand by DecodeGlyph. Unifont files are
large (tens of thousands of glyphs) and usually only a few hundred of them
are ever needed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unifont

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontextend.unifont'.
func tracer() tracing.Trace {
	return tracing.Select("fontextend.unifont")
}
