package charset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/fontextend/core"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// SourceExt is the file extension of translation sources.
const SourceExt = ".ini"

// maxLineLength limits a single line of a translation source.
const maxLineLength = 1 << 20

var errUndecodable = errors.New("source is not valid UTF-8 or UTF-16")

// Source describes one translation source after collection.
type Source struct {
	Path     string
	Language language.Tag // derived from the file name, 'und' if not a language tag
	Runes    int          // number of distinct collected runes
}

// Report summarizes a collection run.
type Report struct {
	Sources []Source      // sources read successfully, in collection order
	Faults  []*core.Fault // sources which have been skipped
}

// Sources lists the translation sources of directory dir, sorted by name.
func Sources(dir string) ([]string, error) {
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return nil, core.WrapError(err, core.EMISSING, "translation directory %s not found", dir)
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*"+SourceExt))
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot list translation sources in %s", dir)
	}
	sort.Strings(paths)
	return paths, nil
}

// Collect reads all sources given by paths and returns the union of the
// non-ASCII runes found in their values.
//
// A source failing to open or decode is skipped and reported; no rune of
// it enters the result.
func Collect(paths ...string) (*Set, *Report) {
	set := NewSet()
	report := &Report{}
	for _, path := range paths {
		runes, err := collectFile(path)
		if err != nil {
			fault := core.NewFault(core.SourceReadFault, path, err)
			tracer().Errorf("skipping translation source: %v", fault)
			report.Faults = append(report.Faults, fault)
			continue
		}
		set = set.Union(runes)
		src := Source{Path: path, Language: languageOf(path), Runes: runes.Size()}
		tracer().Debugf("%s: %d extended characters (language %s)", path, src.Runes, src.Language)
		report.Sources = append(report.Sources, src)
	}
	tracer().Infof("collected %d extended characters from %d sources", set.Size(), len(report.Sources))
	return set, report
}

func collectFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return CollectReader(filepath.Base(path), f)
}

// CollectReader scans a single translation source. name is used for error
// messages only.
//
// Input is decoded as UTF-8, or as UTF-16 if it starts with a byte order
// mark. A leading UTF-8 BOM is dropped. The decoder marks broken input with
// U+FFFD, so a source containing U+FFFD is rejected as undecodable.
func CollectReader(name string, r io.Reader) (*Set, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	scanner := bufio.NewScanner(transform.NewReader(r, decoder))
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	set := NewSet()
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if strings.ContainsRune(line, utf8.RuneError) {
			return nil, fmt.Errorf("%s:%d: %w", name, lineno, errUndecodable)
		}
		value, ok := Value(line)
		if !ok {
			continue
		}
		for _, r := range value {
			if r >= utf8.RuneSelf {
				set.add(r)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", name, lineno, err)
	}
	return set, nil
}

// Value extracts the translatable value of a source line: the text after
// the first '=', with surrounding white space removed. Comment lines
// (starting with ';'), section headers (starting with '[') and lines
// without '=' have no value.
func Value(line string) (string, bool) {
	if strings.HasPrefix(line, ";") || strings.HasPrefix(line, "[") {
		return "", false
	}
	i := strings.IndexByte(line, '=')
	if i < 0 {
		return "", false
	}
	return strings.TrimSpace(line[i+1:]), true
}

func languageOf(path string) language.Tag {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	tag, err := language.Parse(base)
	if err != nil {
		return language.Und
	}
	return tag
}
