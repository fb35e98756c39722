package zpl

import (
	"strings"

	"github.com/trevordcampbell/zpl-toolchain/internal/source"
)

// Command is one ZPL command: a leader byte ('^' or '~'), a command name, and
// the raw parameter text up to the next command, comment, or end of input.
// Param is never comma-split here; see SplitParam.
type Command struct {
	Leader byte
	Name   string
	Param  string
	Span   source.Span
}

func (*Command) node()    {}
func (*Command) element() {}

// Code returns the canonical command code including the leader, e.g. "^FO".
func (c *Command) Code() string {
	return string(c.Leader) + c.Name
}

// Comment is a ';' comment running to end of line. Text includes the leading
// ';' but not the line terminator. OwnLine records whether the comment began
// its own line or trailed a command; the formatter's comment-placement option
// depends on it.
type Comment struct {
	Text    string
	OwnLine bool
	Span    source.Span
}

func (*Comment) node()    {}
func (*Comment) element() {}

// Text is raw content that belongs to no command: bytes before the first
// label, between labels, or inside a label without a preceding command.
// It is preserved verbatim so that serializing a Document loses nothing.
type Text struct {
	Content string
	Span    source.Span
}

func (*Text) node()    {}
func (*Text) element() {}

// SplitParam splits a command's raw parameter text on commas, trimming ASCII
// whitespace around each part. Empty or whitespace-only input yields nil; an
// empty part between commas stays as "" so positional slots line up, e.g.
// "^FO,100" keeps an empty x slot.
func SplitParam(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
