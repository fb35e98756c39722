package driver

import (
	"github.com/trevordcampbell/zpl-toolchain/internal/lexer"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/token"
)

// TokenizeResult carries the token stream of one file. The lexer is total,
// so tokenizing produces no diagnostics; the only failures are I/O and
// encoding, reported as the error return.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
}

// Tokenize loads path and scans it to EOF.
func Tokenize(path string) (*TokenizeResult, error) {
	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	lx := lexer.New(file)
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
	}, nil
}
