package fuzztests

import (
	"bytes"
	"testing"
	"time"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/format"
	"github.com/trevordcampbell/zpl-toolchain/internal/parser"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
	"github.com/trevordcampbell/zpl-toolchain/internal/testkit"
	"github.com/trevordcampbell/zpl-toolchain/internal/validate"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// parseTimeout bounds one parse; exceeding it indicates a recovery loop
// that stopped making progress.
const parseTimeout = 5 * time.Second

func parseFuzzInput(input []byte) (*source.File, *zpl.Document) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fuzz.zpl", input)
	file := fs.Get(fileID)

	bag := diag.NewBag(128)
	res := parser.ParseFile(file, parser.Options{
		MaxErrors: 128,
		Reporter:  diag.BagReporter{Bag: bag},
	})
	return file, res.Doc
}

// FuzzParserBuildsDocument checks that parsing never panics, always yields
// a document, and keeps every span inside the input.
func FuzzParserBuildsDocument(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		file, doc := parseFuzzInput(input)
		if doc == nil {
			t.Fatal("parser returned nil document")
		}
		if err := testkit.CheckDocumentInvariants(doc, file); err != nil {
			t.Fatalf("document invariants: %v", err)
		}

		// The validator must be total over whatever the parser recovered.
		validate.Document(doc, validate.Options{
			Table:    tables.Builtin(),
			Reporter: diag.BagReporter{Bag: diag.NewBag(128)},
		})
	})
}

// FuzzParserNoHang detects recovery loops: parsing runs in a goroutine and
// must finish within parseTimeout.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// Shapes that stress recovery: leaders without codes, field data cut
	// off mid-stream, nested-looking label starts.
	f.Add([]byte("^^^^^^"))
	f.Add([]byte("^XA^XA^XA"))
	f.Add([]byte("^XA^FD"))
	f.Add([]byte("~~~~"))
	f.Add([]byte("^XA^FX"))

	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		done := make(chan struct{})
		go func() {
			defer close(done)
			parseFuzzInput(input)
		}()

		select {
		case <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang: input (%d bytes): %q",
				len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzFormatIdempotent checks the formatter contract on arbitrary input:
// formatting a formatted document again is byte-identical, for every
// combination of layout options.
func FuzzFormatIdempotent(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		_, doc := parseFuzzInput(input)

		for _, opt := range []format.Options{
			{},
			{Indent: format.IndentLabel},
			{Indent: format.IndentField, Compaction: format.CompactField},
			{Indent: format.IndentLabel, CommentPlacement: format.CommentLine},
			{Indent: format.IndentField, Compaction: format.CompactField, CommentPlacement: format.CommentLine},
		} {
			once := format.Document(doc, opt)

			_, redoc := parseFuzzInput(once)
			twice := format.Document(redoc, opt)
			if !bytes.Equal(once, twice) {
				t.Fatalf("format not idempotent under %+v:\nfirst:  %q\nsecond: %q",
					opt, truncateForLog(once, 300), truncateForLog(twice, 300))
			}
		}
	})
}

func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
