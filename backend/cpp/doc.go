/*
Package cpp writes resolved glyph tables as a C++ header.

The header defines two maps, one for narrow (8x16) and one for wide (16x16)
glyphs, each keyed by code point, plus lookup functions. A renderer includes
the header and asks for a glyph by code point:

    int width;
    const unsigned char* bitmap = fontExtendedLookup(0x4E2D, width);
    if (bitmap == nullptr) {
        // not part of the extended font: fall back to the base font
    }

Not finding a code point is not an error. A code point may be absent
because no translation uses it.

Output is deterministic: the same table always produces the same bytes.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cpp

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontextend.cpp'.
func tracer() tracing.Trace {
	return tracing.Select("fontextend.cpp")
}
