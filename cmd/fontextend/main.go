/*
Fontextend scans all translation files of the product for characters the
basic 8x8 ASCII font cannot display, extracts those glyphs from GNU Unifont
and writes them to a C++ header. Only the glyphs actually displayed end up
in the binary.

It takes no arguments. The tool is expected in <root>/tools of the product
repository; all paths are derived from there (see generator.Conventions).
Environment variable FONTEXTEND_ROOT overrides the repository root,
FONTEXTEND_TRACE sets the trace level (Debug, Info or Error).

Problems with the input are reported, but never make the tool fail: the
header is written in any case. The exit code is non-zero only if the
header could not be written.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/fontextend/core"
	"github.com/npillmayer/fontextend/engine/generator"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fontextend.generator'
func tracer() tracing.Trace {
	return tracing.Select("fontextend.generator")
}

// missingShown is the number of missing glyphs listed individually.
const missingShown = 20

func main() {
	initDisplay()
	if err := initTracing(os.Getenv("FONTEXTEND_TRACE")); err != nil {
		fmt.Printf("error configuring tracing: %v\n", err)
		os.Exit(1)
	}
	root, err := repositoryRoot()
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
	conf := generator.Conventions(root)
	pterm.Info.Printfln("Scanning i18n files in: %s", conf.I18nDir)
	pterm.Info.Printfln("Reading unifont from: %s", conf.DatabasePath)
	//
	summary, err := generator.Generate(conf)
	if summary != nil {
		report(summary)
	}
	if err != nil {
		pterm.Error.Println(core.UserMessage(err))
		tracer().Errorf("%v", err)
		os.Exit(1)
	}
	pterm.Success.Printfln("Generated %s", conf.OutputPath)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// initTracing routes all tracers of this module to Go's standard logger.
func initTracing(level string) error {
	if level == "" {
		level = "Error"
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":            "go",
		"trace.fontextend.charset":   level,
		"trace.fontextend.unifont":   level,
		"trace.fontextend.subset":    level,
		"trace.fontextend.cpp":       level,
		"trace.fontextend.generator": level,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

// repositoryRoot is the parent of the directory holding the executable,
// unless set by the environment.
func repositoryRoot() (string, error) {
	if root := os.Getenv("FONTEXTEND_ROOT"); root != "" {
		return filepath.Abs(root)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", core.WrapError(err, core.EMISSING, "cannot locate executable")
	}
	if exe, err = filepath.EvalSymlinks(exe); err != nil {
		return "", core.WrapError(err, core.EMISSING, "cannot locate executable")
	}
	return filepath.Dir(filepath.Dir(exe)), nil
}

func report(s *generator.Summary) {
	pterm.Info.Printfln("Found %d unique extended characters", s.Characters)
	if n := len(s.Faults) - len(s.Missing); n > 0 {
		pterm.Warning.Printfln("%d input problems, see log", n)
	}
	if len(s.Missing) > 0 {
		pterm.Warning.Printfln("%d glyphs not found in unifont:", len(s.Missing))
		for _, line := range s.MissingList(missingShown) {
			fmt.Printf("  %s\n", line)
		}
	}
	pterm.Info.Printfln("%d glyphs at 8x16, %d glyphs at 16x16", s.Narrow, s.Wide)
}
