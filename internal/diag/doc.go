// Package diag defines the diagnostic model shared by the parser and the
// validator.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Hint, Info, Warning, or Error (severity.go).
//   - Code – compact numeric identifier with a stable rendered ID
//     (codes.go): lint findings render as "ZPL1101", parser findings as
//     "ZPL.PARSER.1002".
//   - Message – short human text; templates follow the command and argument
//     that triggered the finding.
//   - Primary span – the source.Span pointing at the issue.
//   - Notes – optional secondary spans ("field opened here").
//   - Fixes – optional structured edits; data only, never applied here.
//
// Diagnostics are values, not errors. A parse or validation run that
// produces diagnostics still succeeds; only I/O, decoding, and configuration
// problems surface as Go errors.
//
// # Emitting
//
// Phases emit through a Reporter so they stay decoupled from storage.
// BagReporter collects into a capped Bag, which supports deterministic
// Sort, Dedup, and Merge. DedupReporter suppresses repeats when several
// phases flag the same span. ReportBuilder (via ReportError /
// ReportWarning / ReportInfo) chains notes and fixes before Emit.
//
// # Explanations
//
// Every code ships a long-form explanation (explain.go). Explain maps a
// rendered ID back to that text and reports absence for unknown IDs; it is
// total and never fails.
//
// Rendering lives in internal/diagfmt; this package performs no I/O.
package diag
