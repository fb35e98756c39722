package token

import (
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsTrivia reports whether the token carries no command content on its own.
// The parser still inspects trivia: whitespace and newlines decide whether a
// comment sits on its own line, and newlines terminate argument lists.
func (t Token) IsTrivia() bool {
	return t.Kind == Whitespace || t.Kind == Newline
}

// IsDelimiter reports whether the token ends a plain argument run.
func (t Token) IsDelimiter() bool {
	switch t.Kind {
	case Leader, Comment, Newline, EOF:
		return true
	default:
		return false
	}
}
