package driver

import (
	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/parser"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// ParseResult carries the document and structural diagnostics of one
// file. The parser recovers from malformed input, so Doc is always
// usable; Bag holds whatever recovery reported.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Doc     *zpl.Document
	Bag     *diag.Bag
}

// Parse loads path and parses it into a Document. A nil table selects the
// builtin command set.
func Parse(path string, maxDiagnostics int, table *tables.Table) (*ParseResult, error) {
	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	bag := newBag(maxDiagnostics)
	res := parser.ParseFile(file, parser.Options{
		MaxErrors: uint(bag.Cap()),
		Reporter:  diag.BagReporter{Bag: bag},
		Table:     table,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Doc:     res.Doc,
		Bag:     bag,
	}, nil
}
