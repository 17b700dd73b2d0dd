package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/fontextend/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	eAcute = "0000000C18003C66667E60603C000000"
	zhong  = "01000100010001003FF8210821082108210821083FF821080100010001000100"
)

// setup creates a repository layout below a temporary directory.
func setup(t *testing.T, sources map[string]string, database string) Config {
	t.Helper()
	conf := Conventions(t.TempDir())
	require.NoError(t, os.MkdirAll(conf.I18nDir, 0755))
	for name, content := range sources {
		require.NoError(t, os.WriteFile(filepath.Join(conf.I18nDir, name), []byte(content), 0644))
	}
	if database != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(conf.DatabasePath), 0755))
		require.NoError(t, os.WriteFile(conf.DatabasePath, []byte(database), 0644))
	}
	return conf
}

func readOutput(t *testing.T, conf Config) string {
	t.Helper()
	out, err := os.ReadFile(conf.OutputPath)
	require.NoError(t, err)
	return string(out)
}

func TestConventions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextend.generator")
	defer teardown()
	//
	conf := Conventions("/repo")
	assert.Equal(t, filepath.FromSlash("/repo/resin/res/i18n"), conf.I18nDir)
	assert.Equal(t, filepath.FromSlash("/repo/assets/unifont.hex"), conf.DatabasePath)
	assert.Equal(t, filepath.FromSlash("/repo/console/font_extended.h"), conf.OutputPath)
}

func TestOnlyASCII(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextend.generator")
	defer teardown()
	//
	conf := setup(t, map[string]string{"en-us.ini": "[main]\nok=OK\ncancel=Cancel\n"}, "00E9:"+eAcute+"\n")
	summary, err := Generate(conf)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Characters)
	assert.Empty(t, summary.Faults)
	out := readOutput(t, conf)
	assert.Contains(t, out, "font_8x16 = {\n};")
	assert.Contains(t, out, "font_16x16 = {\n};")
	assert.Contains(t, out, "// Unicode range: (empty)")
}

func TestNarrowGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextend.generator")
	defer teardown()
	//
	conf := setup(t, map[string]string{"fr.ini": "back=é\n"}, "00E9:"+eAcute+"\n")
	summary, err := Generate(conf)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Narrow)
	assert.Equal(t, 0, summary.Wide)
	out := readOutput(t, conf)
	assert.Contains(t, out, "{0x00E9, (const unsigned char[]){0x00, 0x00, 0x00, 0x0C, 0x18, 0x00, 0x3C, 0x66, 0x66, 0x7E, 0x60, 0x60, 0x3C, 0x00, 0x00, 0x00}}  // U+00E9 é\n")
}

func TestWideGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextend.generator")
	defer teardown()
	//
	conf := setup(t, map[string]string{"zh.ini": "title=中\n"}, "4E2D:"+zhong+"\n")
	summary, err := Generate(conf)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Narrow)
	assert.Equal(t, 1, summary.Wide)
	out := readOutput(t, conf)
	wide := out[strings.Index(out, "font_16x16 = {"):]
	assert.Contains(t, wide, "{0x4E2D, (const unsigned char[]){0x01, 0x00, 0x01, 0x00,")
	assert.Contains(t, wide, "  // U+4E2D 中\n")
}

func TestMissingGlyph(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextend.generator")
	defer teardown()
	//
	conf := setup(t, map[string]string{"x.ini": "snow=☃ é\n"}, "00E9:"+eAcute+"\n")
	summary, err := Generate(conf)
	require.NoError(t, err)
	assert.Equal(t, []rune{0x2603}, summary.Missing)
	assert.Equal(t, 2, summary.Narrow)
	require.Len(t, summary.Faults, 1)
	assert.Equal(t, core.MissingGlyphFault, summary.Faults[0].Kind)
	out := readOutput(t, conf)
	assert.Contains(t, out, "{0x2603, (const unsigned char[]){"+strings.Repeat("0x00, ", 15)+"0x00}}  // U+2603 ☃\n")
}

func TestFaultsDoNotStopGeneration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextend.generator")
	defer teardown()
	//
	database := strings.Join([]string{
		"00E9:" + eAcute,
		"this is not a record",
		"00FC:" + eAcute + ":junk",
	}, "\n")
	conf := setup(t, map[string]string{
		"de.ini":  "a=ü\nb=é\n",
		"bad.ini": "a=\xc3\x28\n",
	}, database)
	summary, err := Generate(conf)
	require.NoError(t, err)
	assert.Equal(t, []rune{0xFC}, summary.Malformed)
	kinds := make(map[core.FaultKind]int)
	for _, f := range summary.Faults {
		kinds[f.Kind]++
	}
	assert.Equal(t, map[core.FaultKind]int{
		core.SourceReadFault:    1,
		core.DatabaseParseFault: 1,
		core.GlyphSizeFault:     1,
	}, kinds)
	assert.FileExists(t, conf.OutputPath)
}

func TestNoInputsAtAll(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextend.generator")
	defer teardown()
	//
	conf := Conventions(t.TempDir())
	summary, err := Generate(conf)
	require.NoError(t, err)
	assert.Len(t, summary.Faults, 2)
	out := readOutput(t, conf)
	assert.Contains(t, out, "// Extended font with 0 glyphs total")
}

func TestMissingDatabase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextend.generator")
	defer teardown()
	//
	conf := setup(t, map[string]string{"fr.ini": "a=éè\n"}, "")
	summary, err := Generate(conf)
	require.NoError(t, err)
	assert.Equal(t, []rune{0xE8, 0xE9}, summary.Missing)
	assert.Equal(t, 2, summary.Narrow)
}

func TestDeterministicOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextend.generator")
	defer teardown()
	//
	sources := map[string]string{
		"de.ini": "a=Grüße\n",
		"zh.ini": "a=中文\n",
		"ja.ini": "a=日本語\n",
	}
	database := "00FC:" + eAcute + "\n4E2D:" + zhong + "\n"
	conf := setup(t, sources, database)
	_, err := Generate(conf)
	require.NoError(t, err)
	first := readOutput(t, conf)
	_, err = Generate(conf)
	require.NoError(t, err)
	if diff := cmp.Diff(first, readOutput(t, conf)); diff != "" {
		t.Errorf("second run differs:\n%s", diff)
	}
}

func TestUnwritableOutput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextend.generator")
	defer teardown()
	//
	conf := setup(t, nil, "")
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	conf.OutputPath = filepath.Join(blocker, "font_extended.h") // parent is a file
	_, err := Generate(conf)
	assert.Equal(t, core.EIO, core.Code(err))
}

func TestMissingList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontextend.generator")
	defer teardown()
	//
	s := &Summary{Missing: []rune{0xE9, 0xFC, 0x4E2D}}
	assert.Equal(t, []string{"U+00E9 ('é')", "U+00FC ('ü')", "U+4E2D ('中')"}, s.MissingList(20))
	assert.Equal(t, []string{"U+00E9 ('é')", "... and 2 more"}, s.MissingList(1))
	assert.Empty(t, (&Summary{}).MissingList(20))
}
