package core

import (
	"errors"
	"fmt"
)

// Error codes. Failures of the generator itself carry one directly, every
// input fault derives one from its kind.
const (
	NOERROR   int = 0
	EMISSING  int = 122 // input does not exist
	EINVALID  int = 123 // input is malformed
	EIO       int = 124 // file could not be read or written
	EINTERNAL int = 125 // generated tables are inconsistent
)

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// FaultKind classifies the recoverable input problems of a generator run.
// No fault kind is fatal: the component detecting a fault records it and
// carries on with the next record.
type FaultKind int

const (
	NoFault            FaultKind = iota
	SourceReadFault              // a translation file cannot be opened or decoded
	DatabaseParseFault           // a line of the glyph database is malformed
	GlyphSizeFault               // a bitmap decodes to neither 16 nor 32 bytes
	MissingGlyphFault            // a required code point has no database entry
)

var faultTable = [...]struct {
	name string
	code int
	text string
}{
	NoFault:            {"NoFault", NOERROR, "OK"},
	SourceReadFault:    {"SourceReadFault", EIO, "translation file skipped"},
	DatabaseParseFault: {"DatabaseParseFault", EINVALID, "glyph database line skipped"},
	GlyphSizeFault:     {"GlyphSizeFault", EINVALID, "unusable glyph bitmap"},
	MissingGlyphFault:  {"MissingGlyphFault", EMISSING, "glyph not found"},
}

func (k FaultKind) valid() bool {
	return k >= 0 && int(k) < len(faultTable)
}

func (k FaultKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("FaultKind(%d)", int(k))
	}
	return faultTable[k].name
}

// Code returns the error code of faults of kind k.
func (k FaultKind) Code() int {
	if !k.valid() {
		return EINTERNAL
	}
	return faultTable[k].code
}

// errorText is the default user message for an error code. For codes
// shared by several fault kinds it prefers the text of kind, if given.
func errorText(code int, kind FaultKind) string {
	if kind != NoFault && kind.valid() && faultTable[kind].code == code {
		return faultTable[kind].text
	}
	switch code {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EIO:
		return "i/o error"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// --- Failures --------------------------------------------------------------

// coreError is a failure of the generator itself, as opposed to a Fault
// in its input. Only a coreError ends a run.
type coreError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = coreError{}

func (e coreError) Unwrap() error {
	return e.cause
}

func (e coreError) Error() string {
	return fmt.Sprintf("[%d] %s: %v", e.code, e.msg, e.cause)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

// WrapError wraps err, featuring an error code and a user message.
// If err is nil, an error denoting the code's default text is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code, NoFault))
	}
	return coreError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// --- Faults ----------------------------------------------------------------

// Fault is a recoverable input problem. It is an AppError, with the error
// code derived from its kind.
//
// Where names the offending input: a file name, optionally followed by a
// line number, or a code point in U+XXXX notation.
type Fault struct {
	Kind  FaultKind
	Where string
	Err   error
}

var _ AppError = &Fault{}

// NewFault creates a fault of kind k at location where, caused by err.
// err may be nil.
func NewFault(k FaultKind, where string, err error) *Fault {
	return &Fault{Kind: k, Where: where, Err: err}
}

func (f *Fault) Error() string {
	if f.Err == nil {
		return fmt.Sprintf("%s at %s", f.Kind, f.Where)
	}
	return fmt.Sprintf("%s at %s: %v", f.Kind, f.Where, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// ErrorCode returns the error code for the fault's kind.
func (f *Fault) ErrorCode() int {
	return f.Kind.Code()
}

// UserMessage returns a short message suitable for a build log.
func (f *Fault) UserMessage() string {
	return fmt.Sprintf("%s: %s", errorText(f.Kind.Code(), f.Kind), f.Where)
}

// --- Inspection ------------------------------------------------------------

// Code returns the error code associated with an error.
// If no code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it returns the default text for Code(err).
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err), NoFault)
}
