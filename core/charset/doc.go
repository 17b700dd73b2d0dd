/*
Package charset collects the set of characters a product's translations use.

Translation sources are INI-style text files, one per language:

    ; comment
    [section]
    menu.title=Paramètres
    menu.quit=終了

Every rune of every value (the text after the first '=' of a line) is a
candidate. Runes below 0x80 are left out, as these are covered by the base
font of the renderer; what remains is the set of glyphs an extended font
has to provide.

A source which cannot be read or decoded is skipped as a whole and reported
as a fault; collection never stops because of a single bad file.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package charset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fontextend.charset'.
func tracer() tracing.Trace {
	return tracing.Select("fontextend.charset")
}
