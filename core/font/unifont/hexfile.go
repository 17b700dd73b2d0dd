package unifont

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/npillmayer/fontextend/core"
)

// Database maps code points to raw hex bitmaps, as found in a hex font file.
type Database map[rune]string

// LoadReport summarizes the parsing of a hex font file.
type LoadReport struct {
	Lines      int           // number of non-blank lines
	Duplicates int           // number of code points defined more than once
	Faults     []*core.Fault // lines which have been skipped
}

// maxLineLength is far beyond the longest legal line ("10FFFF:" plus 64
// digits), but guards against binary input.
const maxLineLength = 64 * 1024

var (
	errNoColon    = errors.New("missing ':' between code point and bitmap")
	errCodePoint  = errors.New("code point is not a hexadecimal number")
	errOutOfRange = errors.New("code point beyond U+10FFFF")
)

// Load reads the hex font file at path. An error is returned only if the
// file cannot be opened; malformed lines are skipped and listed in the
// report.
func Load(path string) (Database, *LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, core.WrapError(err, core.EMISSING, "cannot open glyph database %s", path)
	}
	defer f.Close()
	db, report := Parse(f, path)
	tracer().Infof("loaded %d glyphs from %s", len(db), path)
	return db, report, nil
}

// Parse reads glyph records from r. name is used for fault locations only.
//
// Each non-blank line is split at its first colon. The left part is the
// code point in hex, the right part is kept as is: no validation of bitmaps
// happens here. If a code point occurs more than once, the last record wins.
// A read error ends parsing and is reported as a fault on the line where it
// occurred.
func Parse(r io.Reader, name string) (Database, *LoadReport) {
	db := make(Database)
	report := &LoadReport{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 256), maxLineLength)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		report.Lines++
		code, bitmap, err := ParseLine(line)
		if err != nil {
			fault := core.NewFault(core.DatabaseParseFault, fmt.Sprintf("%s:%d", name, lineno), err)
			tracer().Errorf("skipping glyph record: %v", fault)
			report.Faults = append(report.Faults, fault)
			continue
		}
		if _, exists := db[code]; exists {
			tracer().Debugf("%s:%d: U+%04X redefined", name, lineno, code)
			report.Duplicates++
		}
		db[code] = bitmap
	}
	if err := scanner.Err(); err != nil {
		fault := core.NewFault(core.DatabaseParseFault, fmt.Sprintf("%s:%d", name, lineno+1), err)
		tracer().Errorf("glyph database truncated: %v", fault)
		report.Faults = append(report.Faults, fault)
	}
	return db, report
}

// ParseLine splits a single record into code point and raw bitmap.
// Only the first colon separates; further colons belong to the bitmap.
func ParseLine(line string) (rune, string, error) {
	i := strings.IndexByte(line, ':')
	if i < 0 {
		return 0, "", errNoColon
	}
	n, err := strconv.ParseUint(line[:i], 16, 32)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %q", errCodePoint, line[:i])
	}
	if n > unicode.MaxRune {
		return 0, "", fmt.Errorf("%w: %X", errOutOfRange, n)
	}
	return rune(n), line[i+1:], nil
}
