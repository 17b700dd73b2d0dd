package cpp

import (
	"sort"

	"github.com/npillmayer/fontextend/core/font/unifont"
	"github.com/npillmayer/fontextend/engine/subset"
)

// Width is the result class of a lookup. It mirrors the width parameter of
// the generated C++ lookup function.
type Width int

// Lookup results. Absent tells the caller to use its base font.
const (
	Absent Width = 0
	Narrow Width = 8
	Wide   Width = 16
)

func (w Width) String() string {
	switch w {
	case Absent:
		return "absent"
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	}
	return "invalid"
}

// Row is a single entry of an output table.
type Row struct {
	CodePoint rune
	Bitmap    []byte
}

// Tables is the output form of a resolved glyph table: narrow and wide
// glyphs in separate tables, each in ascending code point order.
type Tables struct {
	Narrow []Row
	Wide   []Row
}

// Partition splits t into narrow and wide rows. Placeholder entries are
// narrow, as their glyph is.
func Partition(t *subset.Table) Tables {
	var tables Tables
	for _, e := range t.Entries() {
		row := Row{CodePoint: e.CodePoint, Bitmap: e.Glyph.Bitmap}
		switch e.Glyph.Width {
		case unifont.Narrow:
			tables.Narrow = append(tables.Narrow, row)
		case unifont.Wide:
			tables.Wide = append(tables.Wide, row)
		default:
			tracer().Errorf("U+%04X has invalid width class %d, dropped", e.CodePoint, e.Glyph.Width)
		}
	}
	sortRows(tables.Narrow)
	sortRows(tables.Wide)
	return tables
}

func sortRows(rows []Row) {
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].CodePoint < rows[j].CodePoint
	})
}

// Len returns the total number of rows.
func (tables Tables) Len() int {
	return len(tables.Narrow) + len(tables.Wide)
}

// Lookup searches the narrow table first, then the wide table, as the
// generated C++ code does. A code point found in neither yields
// (nil, Absent).
func (tables Tables) Lookup(r rune) ([]byte, Width) {
	if b, ok := find(tables.Narrow, r); ok {
		return b, Narrow
	}
	if b, ok := find(tables.Wide, r); ok {
		return b, Wide
	}
	return nil, Absent
}

func find(rows []Row, r rune) ([]byte, bool) {
	i := sort.Search(len(rows), func(i int) bool {
		return rows[i].CodePoint >= r
	})
	if i < len(rows) && rows[i].CodePoint == r {
		return rows[i].Bitmap, true
	}
	return nil, false
}
