package lexer

import (
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/token"
)

// Lexer splits ZPL source bytes into tokens. It is total: every input,
// including garbage, tokenizes without diagnostics. Meaning is assigned
// later by the parser, which decides whether a Value token is a command
// code or stray content, and which bypasses the token stream entirely
// inside ^FD field data, where ';' and ',' lose their structural role.
type Lexer struct {
	file   *source.File
	cursor Cursor
	look   *token.Token // one-token lookahead buffer
}

func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
	}
}

// Next returns the next token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.emptySpan(),
			Text: "",
		}
	}

	switch ch := lx.cursor.Peek(); {
	case ch == '^' || ch == '~':
		return lx.scanSingle(token.Leader)

	case ch == ',':
		return lx.scanSingle(token.Comma)

	case ch == ';':
		return lx.scanComment()

	case ch == '\n' || ch == '\r':
		return lx.scanNewline()

	case ch == ' ' || ch == '\t':
		return lx.scanWhitespace()

	default:
		return lx.scanValue()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Sync repositions the lexer at an absolute byte offset and drops the
// lookahead. The parser calls it after consuming field data bytes directly,
// since field data follows different rules than the token grammar.
func (lx *Lexer) Sync(off uint32) {
	lx.look = nil
	lx.cursor.Reset(Mark(off))
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scanSingle(kind token.Kind) token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump()
	return lx.tokenFrom(kind, m)
}

// scanComment consumes ';' through the end of the line. The line break
// itself stays in the stream as a Newline token.
func (lx *Lexer) scanComment() token.Token {
	m := lx.cursor.Mark()
	lx.cursor.Bump() // ';'
	for !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b == '\n' || b == '\r' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.tokenFrom(token.Comment, m)
}

// scanNewline consumes exactly one line break. Content is normalized to LF
// on load, but a raw "\r\n" still counts as a single break.
func (lx *Lexer) scanNewline() token.Token {
	m := lx.cursor.Mark()
	if lx.cursor.Bump() == '\r' {
		lx.cursor.Eat('\n')
	}
	return lx.tokenFrom(token.Newline, m)
}

func (lx *Lexer) scanWhitespace() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b != ' ' && b != '\t' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.tokenFrom(token.Whitespace, m)
}

// scanValue consumes a run of bytes up to the next structural byte.
func (lx *Lexer) scanValue() token.Token {
	m := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if isStructural(lx.cursor.Peek()) {
			break
		}
		lx.cursor.Bump()
	}
	return lx.tokenFrom(token.Value, m)
}

func (lx *Lexer) tokenFrom(kind token.Kind, m Mark) token.Token {
	span := lx.cursor.SpanFrom(m)
	return token.Token{
		Kind: kind,
		Span: span,
		Text: string(lx.file.Content[span.Start:span.End]),
	}
}

func isStructural(b byte) bool {
	switch b {
	case '^', '~', ',', ';', '\n', '\r', ' ', '\t':
		return true
	default:
		return false
	}
}
