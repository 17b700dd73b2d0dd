package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	err := WrapError(errors.New("permission denied"), EIO, "cannot write %s", "font_extended.h")
	assert.Equal(t, EIO, Code(err))
	assert.Equal(t, "cannot write font_extended.h", UserMessage(err))
	assert.Equal(t, "[124] cannot write font_extended.h: permission denied", err.Error())
	//
	err = Error(EINTERNAL, "glyph table broken for U+%04X", 0xE9)
	assert.Equal(t, "[125] glyph table broken for U+00E9: internal error", err.Error())
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
	assert.Equal(t, "", UserMessage(nil))
}

func TestFaultCodes(t *testing.T) {
	for kind, code := range map[FaultKind]int{
		NoFault:            NOERROR,
		SourceReadFault:    EIO,
		DatabaseParseFault: EINVALID,
		GlyphSizeFault:     EINVALID,
		MissingGlyphFault:  EMISSING,
		FaultKind(42):      EINTERNAL,
	} {
		f := NewFault(kind, "de.ini", nil)
		assert.Equal(t, code, Code(f), "code of %s", kind)
	}
	assert.Equal(t, "FaultKind(42)", FaultKind(42).String())
}

func TestFaultMessages(t *testing.T) {
	cases := map[FaultKind]string{
		SourceReadFault:    "translation file skipped: ja.ini",
		DatabaseParseFault: "glyph database line skipped: ja.ini",
		GlyphSizeFault:     "unusable glyph bitmap: ja.ini",
		MissingGlyphFault:  "glyph not found: ja.ini",
	}
	for kind, msg := range cases {
		assert.Equal(t, msg, NewFault(kind, "ja.ini", nil).UserMessage())
	}
}

func TestFaultChain(t *testing.T) {
	cause := errors.New("unexpected EOF")
	f := NewFault(SourceReadFault, "ja.ini", cause)
	wrapped := fmt.Errorf("collecting: %w", f)
	var fault *Fault
	assert.True(t, errors.As(wrapped, &fault))
	assert.Equal(t, SourceReadFault, fault.Kind)
	assert.True(t, errors.Is(wrapped, cause))
	assert.Equal(t, "SourceReadFault at ja.ini: unexpected EOF", f.Error())
	assert.Equal(t, "translation file skipped: ja.ini", UserMessage(wrapped))
}
