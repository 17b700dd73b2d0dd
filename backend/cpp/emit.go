package cpp

import (
	"bytes"
	"fmt"
	"io"
	"unicode"

	"github.com/npillmayer/fontextend/engine/subset"
)

// Option configures the banner of a generated header.
type Option func(*options)

type options struct {
	title     string
	source    string
	generator string
}

// WithTitle sets the first line of the banner comment.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithSource names the font the glyphs have been taken from.
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithGenerator names the generating program.
func WithGenerator(name string) Option {
	return func(o *options) {
		o.generator = name
	}
}

// Emit writes t as a C++ header to w.
//
// Narrow and wide glyphs go to the maps font_8x16 and font_16x16. Every row
// carries a trailing comment with its code point and, if printable, the
// character itself. An empty table results in empty maps, which is still
// a valid header.
func Emit(w io.Writer, t *subset.Table, opts ...Option) error {
	o := options{
		title:     "Extended Font for Recovery Mode",
		source:    "GNU Unifont",
		generator: "fontextend",
	}
	for _, opt := range opts {
		opt(&o)
	}
	tables := Partition(t)
	buf := &bytes.Buffer{}
	writeBanner(buf, o)
	writeSummary(buf, t, tables)
	buf.WriteString("// 8x16 glyphs (16 bytes each)\n")
	writeMap(buf, "font_8x16", tables.Narrow)
	buf.WriteString("// 16x16 glyphs (32 bytes each, 2 bytes per row)\n")
	writeMap(buf, "font_16x16", tables.Wide)
	buf.WriteString(lookupFunctions)
	tracer().Debugf("header has %d bytes", buf.Len())
	_, err := w.Write(buf.Bytes())
	return err
}

func writeBanner(buf *bytes.Buffer, o options) {
	fmt.Fprintf(buf, "/**\n * %s\n * Auto-generated from %s by %s\n */\n\n", o.title, o.source, o.generator)
	buf.WriteString("#include <map>\n\n")
}

func writeSummary(buf *bytes.Buffer, t *subset.Table, tables Tables) {
	fmt.Fprintf(buf, "// Extended font with %d glyphs total\n", tables.Len())
	fmt.Fprintf(buf, "// - %d glyphs at 8x16 (narrow)\n", len(tables.Narrow))
	fmt.Fprintf(buf, "// - %d glyphs at 16x16 (wide/CJK)\n", len(tables.Wide))
	if lo, hi, ok := t.Range(); ok {
		fmt.Fprintf(buf, "// Unicode range: U+%04X - U+%04X\n\n", lo, hi)
	} else {
		buf.WriteString("// Unicode range: (empty)\n\n")
	}
}

func writeMap(buf *bytes.Buffer, name string, rows []Row) {
	fmt.Fprintf(buf, "static const std::map<int, const unsigned char*> %s = {\n", name)
	for i, row := range rows {
		fmt.Fprintf(buf, "    {0x%04X, (const unsigned char[]){", row.CodePoint)
		for j, b := range row.Bitmap {
			if j > 0 {
				buf.WriteString(", ")
			}
			fmt.Fprintf(buf, "0x%02X", b)
		}
		buf.WriteString("}}")
		if i < len(rows)-1 {
			buf.WriteByte(',')
		}
		buf.WriteString("  // ")
		buf.WriteString(Annotation(row.CodePoint))
		buf.WriteByte('\n')
	}
	buf.WriteString("};\n\n")
}

// Annotation is the comment text for a row: the code point in U+ notation,
// followed by the character if it is printable. A backslash is never
// printed, as it would continue the line comment into the next row.
func Annotation(r rune) string {
	s := fmt.Sprintf("U+%04X", r)
	if !unicode.IsPrint(r) || r == ' ' || r == '\\' {
		return s
	}
	return s + " " + string(r)
}

const lookupFunctions = `// Returns bitmap and sets width (8 or 16) via reference parameter, or nullptr if not found
inline const unsigned char* fontExtendedLookup(int codepoint, int& width) {
    auto it8 = font_8x16.find(codepoint);
    if (it8 != font_8x16.end()) {
        width = 8;
        return it8->second;
    }
    auto it16 = font_16x16.find(codepoint);
    if (it16 != font_16x16.end()) {
        width = 16;
        return it16->second;
    }
    width = 0;
    return nullptr;
}

// Width class of an extended glyph; Absent means "use the base font".
enum class GlyphWidth : int { Absent = 0, Narrow = 8, Wide = 16 };

struct ExtendedGlyph {
    const unsigned char* bitmap;
    GlyphWidth width;
};

inline ExtendedGlyph fontExtendedGlyph(int codepoint) {
    int width = 0;
    const unsigned char* bitmap = fontExtendedLookup(codepoint, width);
    return ExtendedGlyph{bitmap, static_cast<GlyphWidth>(width)};
}
`
