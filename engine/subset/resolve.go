package subset

import (
	"fmt"
	"sort"
	"sync"
	"unicode"

	"github.com/npillmayer/fontextend/core"
	"github.com/npillmayer/fontextend/core/charset"
	"github.com/npillmayer/fontextend/core/font/unifont"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// Resolution tells how the glyph of a table entry came to be.
type Resolution int

const (
	Resolved    Resolution = iota // glyph taken from the database
	Placeholder                   // glyph unavailable, blank narrow glyph used instead
)

func (r Resolution) String() string {
	if r == Resolved {
		return "resolved"
	}
	return "placeholder"
}

// Entry is the glyph for a single code point.
type Entry struct {
	CodePoint  rune
	Glyph      unifont.Glyph
	Resolution Resolution
	Fault      *core.Fault // reason for a placeholder, nil for resolved glyphs
}

// Table holds one entry per required code point, in ascending code point order.
type Table struct {
	entries []Entry
}

// Resolve looks up every code point of required in db.
//
// A code point missing from db gets a placeholder glyph and a
// MissingGlyphFault. A database bitmap which does not decode to a narrow or
// wide glyph gets a placeholder and a GlyphSizeFault. Faults are traced and
// kept with the entries; they never make Resolve fail.
func Resolve(required *charset.Set, db unifont.Database) *Table {
	setupWidths.Do(grapheme.SetupGraphemeClasses)
	t := &Table{entries: make([]Entry, 0, required.Size())}
	for _, r := range required.Runes() { // ascending
		t.entries = append(t.entries, resolveOne(r, db))
	}
	tracer().Infof("resolved %d glyphs, %d missing, %d malformed",
		len(t.entries), len(t.Missing()), len(t.Malformed()))
	return t
}

func resolveOne(r rune, db unifont.Database) Entry {
	where := fmt.Sprintf("U+%04X", r)
	bitmap, ok := db[r]
	if !ok {
		fault := core.NewFault(core.MissingGlyphFault, where, nil)
		tracer().Errorf("glyph not found: %v", fault)
		return Entry{CodePoint: r, Glyph: unifont.Placeholder(), Resolution: Placeholder, Fault: fault}
	}
	g, err := unifont.DecodeGlyph(bitmap)
	if err != nil {
		fault := core.NewFault(core.GlyphSizeFault, where, err)
		tracer().Errorf("unusable glyph: %v", fault)
		return Entry{CodePoint: r, Glyph: unifont.Placeholder(), Resolution: Placeholder, Fault: fault}
	}
	checkWidth(r, g)
	if g.IsBlank() && !unicode.IsSpace(r) {
		tracer().Infof("U+%04X has a blank glyph in the database", r)
	}
	return Entry{CodePoint: r, Glyph: g, Resolution: Resolved}
}

// uax11 needs the grapheme classes for its emoji lookups.
var setupWidths sync.Once

// checkWidth compares the width class of a glyph to the East Asian width
// of its code point. Unifont has good reasons for some deviations (e.g.,
// for ambiguous characters), so this is for debugging only.
func checkWidth(r rune, g unifont.Glyph) {
	cells := uax11.Width([]byte(string(r)), uax11.LatinContext)
	if (cells == 2 && g.Width == unifont.Narrow) || (cells == 1 && g.Width == unifont.Wide) {
		tracer().Debugf("U+%04X is a %s glyph but has East Asian width %d", r, g.Width, cells)
		for _, row := range g.Rows() {
			tracer().Debugf("  %s", row)
		}
	}
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns all entries in ascending code point order.
// Clients must not modify the returned slice.
func (t *Table) Entries() []Entry {
	return t.entries
}

// Lookup finds the entry for code point r.
func (t *Table) Lookup(r rune) (Entry, bool) {
	i := sort.Search(len(t.entries), func(i int) bool {
		return t.entries[i].CodePoint >= r
	})
	if i < len(t.entries) && t.entries[i].CodePoint == r {
		return t.entries[i], true
	}
	return Entry{}, false
}

// Missing lists the code points without a database entry.
func (t *Table) Missing() []rune {
	return t.withFault(core.MissingGlyphFault)
}

// Malformed lists the code points whose database bitmap could not be used.
func (t *Table) Malformed() []rune {
	return t.withFault(core.GlyphSizeFault)
}

func (t *Table) withFault(kind core.FaultKind) []rune {
	var runes []rune
	for _, e := range t.entries {
		if e.Fault != nil && e.Fault.Kind == kind {
			runes = append(runes, e.CodePoint)
		}
	}
	return runes
}

// Faults returns the faults of all placeholder entries.
func (t *Table) Faults() []*core.Fault {
	var faults []*core.Fault
	for _, e := range t.entries {
		if e.Fault != nil {
			faults = append(faults, e.Fault)
		}
	}
	return faults
}

// Range returns the smallest and the largest code point of t.
// ok is false for an empty table.
func (t *Table) Range() (lo, hi rune, ok bool) {
	if len(t.entries) == 0 {
		return 0, 0, false
	}
	return t.entries[0].CodePoint, t.entries[len(t.entries)-1].CodePoint, true
}
