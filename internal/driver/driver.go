// Package driver wires the label pipeline together for the CLI: load,
// tokenize, parse, lint, format, and print, with per-stage timing and an
// on-disk lint cache. Commands stay thin; the sequencing lives here.
package driver

import (
	"io"
	"os"
	"unicode/utf8"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// defaultMaxDiagnostics caps a diagnostic bag when the caller passes 0.
const defaultMaxDiagnostics = 256

// StdinPath names standard input when passed where a file path is
// expected.
const StdinPath = "-"

// loadFile reads path into a fresh FileSet and rejects content that is
// not valid UTF-8. The decode check runs once here; every later stage
// may assume well-encoded input. StdinPath reads standard input.
func loadFile(path string) (*source.FileSet, *source.File, error) {
	if path == StdinPath {
		return loadStdin()
	}
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, nil, err
	}
	file := fs.Get(fileID)
	if !utf8.Valid(file.Content) {
		return nil, nil, &zpl.DecodeError{Path: path, Offset: invalidByteOffset(file.Content)}
	}
	return fs, file, nil
}

func loadStdin() (*source.FileSet, *source.File, error) {
	content, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, nil, err
	}
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("<stdin>", content))
	if !utf8.Valid(file.Content) {
		return nil, nil, &zpl.DecodeError{Path: "<stdin>", Offset: invalidByteOffset(file.Content)}
	}
	return fs, file, nil
}

// invalidByteOffset finds the first byte where decoding fails.
func invalidByteOffset(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return 0
}

// newBag builds a diagnostic bag with the default cap when max is 0.
func newBag(max int) *diag.Bag {
	if max <= 0 {
		max = defaultMaxDiagnostics
	}
	return diag.NewBag(max)
}
