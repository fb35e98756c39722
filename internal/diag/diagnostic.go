package diag

import (
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
)

// Note attaches secondary context to a diagnostic, for example the span
// where a field was first opened.
type Note struct {
	Span source.Span
	Msg  string
}

// FixEdit is a single text replacement inside a source file.
type FixEdit struct {
	Span    source.Span
	NewText string
}

// Fix is a suggested correction. Fixes are data only; nothing in this
// package applies them.
type Fix struct {
	Title string
	Edits []FixEdit
}

// Diagnostic is one finding from the parser or the validator. Diagnostics
// are values, never errors: a run that produces only diagnostics succeeded.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}
