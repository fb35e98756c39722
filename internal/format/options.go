package format

import (
	"fmt"

	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
)

// IndentMode controls structural indentation of formatted output.
type IndentMode uint8

const (
	// IndentNone emits flat text, the conventional ZPL style.
	IndentNone IndentMode = iota
	// IndentLabel indents elements one level inside ^XA/^XZ.
	IndentLabel
	// IndentField adds another level inside field blocks (^FO...^FS).
	IndentField
)

func (m IndentMode) String() string {
	switch m {
	case IndentLabel:
		return "label"
	case IndentField:
		return "field"
	default:
		return "none"
	}
}

// ParseIndentMode converts a CLI flag value to an IndentMode.
func ParseIndentMode(s string) (IndentMode, error) {
	switch s {
	case "", "none":
		return IndentNone, nil
	case "label":
		return IndentLabel, nil
	case "field":
		return IndentField, nil
	default:
		return IndentNone, fmt.Errorf("invalid indent mode %q (expected none, label, or field)", s)
	}
}

// CompactionMode controls whether field blocks collapse onto one line.
type CompactionMode uint8

const (
	// CompactNone keeps every command on its own line.
	CompactNone CompactionMode = iota
	// CompactField joins a complete field block (origin, content commands,
	// separator) into a single line.
	CompactField
)

func (m CompactionMode) String() string {
	if m == CompactField {
		return "field"
	}
	return "none"
}

// ParseCompactionMode converts a CLI flag value to a CompactionMode.
func ParseCompactionMode(s string) (CompactionMode, error) {
	switch s {
	case "", "none":
		return CompactNone, nil
	case "field":
		return CompactField, nil
	default:
		return CompactNone, fmt.Errorf("invalid compaction mode %q (expected none or field)", s)
	}
}

// CommentMode controls where comments land in formatted output.
type CommentMode uint8

const (
	// CommentDefault keeps the placement recorded at parse time: a trailing
	// comment stays on its command's line, a standalone one keeps its line.
	CommentDefault CommentMode = iota
	// CommentLine forces every comment onto its own line, placed after the
	// line of the command it trailed.
	CommentLine
)

func (m CommentMode) String() string {
	if m == CommentLine {
		return "line"
	}
	return "default"
}

// ParseCommentMode converts a CLI flag value to a CommentMode.
func ParseCommentMode(s string) (CommentMode, error) {
	switch s {
	case "", "default":
		return CommentDefault, nil
	case "line":
		return CommentLine, nil
	default:
		return CommentDefault, fmt.Errorf("invalid comment placement %q (expected default or line)", s)
	}
}

// Options configure one formatting pass. The zero value is the conventional
// flat style with comments left where they were.
type Options struct {
	Indent           IndentMode
	Compaction       CompactionMode
	CommentPlacement CommentMode

	// Table identifies field-opening and field-closing commands; nil
	// selects the builtin table.
	Table *tables.Table
}

func (o Options) withDefaults() Options {
	if o.Table == nil {
		o.Table = tables.Builtin()
	}
	return o
}
