package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/token"
)

// TokenJSON is one token in the tokenize dump.
type TokenJSON struct {
	Kind      string `json:"kind"`
	Text      string `json:"text,omitempty"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
}

// TokensPretty renders the token stream one token per line:
//
//	  1: Leader     "^" at 1:1-1:2
//
// The dump stops after the first EOF token.
func TokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		fmt.Fprintf(w, "%3d: %-10s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col)
		if tok.Kind == token.EOF {
			break
		}
	}
}

// TokensJSON renders the token stream as an indented JSON array.
func TokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenJSON{
			Kind:      tok.Kind.String(),
			Text:      tok.Text,
			StartByte: tok.Span.Start,
			EndByte:   tok.Span.End,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
