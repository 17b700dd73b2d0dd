/*
Package generator builds the extended font header of a product.

Generate runs the complete pipeline:

    translation sources ──► charset.Collect ─┐
                                             ├─► subset.Resolve ──► cpp.Emit ──► header
    unifont .hex file   ──► unifont.Load ────┘

Input problems never stop a run. Unreadable translation files, malformed
database lines and missing glyphs are traced, counted in the Summary, and
the header is written anyway, so a build depending on it is not blocked.
Only failing to write the header is an error.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package generator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontextend.generator'.
func tracer() tracing.Trace {
	return tracing.Select("fontextend.generator")
}
