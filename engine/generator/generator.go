package generator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/fontextend/backend/cpp"
	"github.com/npillmayer/fontextend/core"
	"github.com/npillmayer/fontextend/core/charset"
	"github.com/npillmayer/fontextend/core/font/unifont"
	"github.com/npillmayer/fontextend/engine/subset"
)

// Config locates the inputs and the output of a run.
type Config struct {
	I18nDir      string // directory of translation sources
	DatabasePath string // unifont .hex file
	OutputPath   string // C++ header to write
}

// Conventions returns the configuration for a repository rooted at root:
//
//	<root>/resin/res/i18n/*.ini      translation sources
//	<root>/assets/unifont.hex        glyph database
//	<root>/console/font_extended.h   generated header
func Conventions(root string) Config {
	return Config{
		I18nDir:      filepath.Join(root, "resin", "res", "i18n"),
		DatabasePath: filepath.Join(root, "assets", "unifont.hex"),
		OutputPath:   filepath.Join(root, "console", "font_extended.h"),
	}
}

// Summary reports the outcome of a run.
type Summary struct {
	Characters int    // size of the required character set
	Narrow     int    // narrow glyphs in the header, placeholders included
	Wide       int    // wide glyphs in the header
	Missing    []rune // required code points without database entry
	Malformed  []rune // required code points with unusable database entry
	// faults of all stages, in pipeline order
	Faults []*core.Fault
}

// Generate runs the pipeline for conf and writes the header.
//
// An error is returned only if the header cannot be written, or if the
// generated tables fail their self-check.
func Generate(conf Config) (*Summary, error) {
	summary := &Summary{}
	//
	sources, err := charset.Sources(conf.I18nDir)
	if err != nil {
		tracer().Errorf("no translations: %v", err)
		summary.Faults = append(summary.Faults, core.NewFault(core.SourceReadFault, conf.I18nDir, err))
	}
	required, collected := charset.Collect(sources...)
	summary.Faults = append(summary.Faults, collected.Faults...)
	summary.Characters = required.Size()
	//
	db, loaded, err := unifont.Load(conf.DatabasePath)
	if err != nil {
		tracer().Errorf("using empty glyph database: %v", err)
		summary.Faults = append(summary.Faults, core.NewFault(core.DatabaseParseFault, conf.DatabasePath, err))
		db = unifont.Database{}
	} else {
		summary.Faults = append(summary.Faults, loaded.Faults...)
	}
	//
	table := subset.Resolve(required, db)
	summary.Missing = table.Missing()
	summary.Malformed = table.Malformed()
	summary.Faults = append(summary.Faults, table.Faults()...)
	//
	tables := cpp.Partition(table)
	summary.Narrow, summary.Wide = len(tables.Narrow), len(tables.Wide)
	if err := selfCheck(required, tables); err != nil {
		return summary, err
	}
	buf := &bytes.Buffer{}
	source := filepath.Base(conf.DatabasePath)
	if err := cpp.Emit(buf, table, cpp.WithSource(source)); err != nil {
		return summary, core.WrapError(err, core.EINTERNAL, "cannot generate header")
	}
	if err := writeFile(conf.OutputPath, buf.Bytes()); err != nil {
		return summary, err
	}
	tracer().Infof("wrote %d glyphs to %s", tables.Len(), conf.OutputPath)
	return summary, nil
}

// selfCheck verifies that every required code point can be looked up in
// the output tables, with a bitmap matching its width.
func selfCheck(required *charset.Set, tables cpp.Tables) error {
	if tables.Len() != required.Size() {
		return core.Error(core.EINTERNAL, "%d glyphs for %d characters", tables.Len(), required.Size())
	}
	for _, r := range required.Runes() {
		bitmap, width := tables.Lookup(r)
		if width == cpp.Absent || len(bitmap) != int(width)*2 {
			return core.Error(core.EINTERNAL, "glyph table broken for U+%04X", r)
		}
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return core.WrapError(err, core.EIO, "cannot create directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return core.WrapError(err, core.EIO, "cannot write %s", path)
	}
	return nil
}

// MissingList formats up to max missing code points, one per line, in the
// form "U+XXXX ('c')". If there are more, a final line tells how many have
// been left out.
func (s *Summary) MissingList(max int) []string {
	var lines []string
	for i, r := range s.Missing {
		if i == max {
			lines = append(lines, fmt.Sprintf("... and %d more", len(s.Missing)-max))
			break
		}
		lines = append(lines, fmt.Sprintf("U+%04X ('%c')", r, r))
	}
	return lines
}
