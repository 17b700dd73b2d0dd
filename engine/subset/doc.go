/*
Package subset resolves the glyphs of a character set against a glyph database.

Every required code point ends up in the resulting table exactly once:
either with its decoded glyph from the database, or with the blank
placeholder glyph. The table remembers which of the two happened, and why,
even though a consumer of the generated font cannot tell the difference.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package subset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontextend.subset'.
func tracer() tracing.Trace {
	return tracing.Select("fontextend.subset")
}
