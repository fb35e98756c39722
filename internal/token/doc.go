// Package token defines lexical token kinds for ZPL sources.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Comment tokens cover ';' through end of line; Text keeps the ';'.
//   - Newline tokens cover exactly one line break ("\n" or a lone "\r").
//   - The lexer never merges or drops bytes: concatenating the Text of all
//     tokens up to EOF reproduces the input.
package token
