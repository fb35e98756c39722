package diagfmt

import (
	"bytes"
	"testing"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
)

func newTestFile(t *testing.T, content string) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	return fs, fs.AddVirtual("test.zpl", []byte(content))
}

func TestPrettyHeader(t *testing.T) {
	fs, id := newTestFile(t, "^XA\n^FO99999,10\n^XZ\n")
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LintOutOfRange,
		source.Span{File: id, Start: 7, End: 12},
		"^FO.x value 99999 is out of range [0,32000]"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	want := "test.zpl:2:4: ERROR ZPL1201: ^FO.x value 99999 is out of range [0,32000]\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyPreviewUnderline(t *testing.T) {
	fs, id := newTestFile(t, "^XA\n^FO99999,10\n^XZ\n")
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LintOutOfRange,
		source.Span{File: id, Start: 7, End: 12},
		"^FO.x value 99999 is out of range [0,32000]"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowPreview: true})
	want := "test.zpl:2:4: ERROR ZPL1201: ^FO.x value 99999 is out of range [0,32000]\n" +
		"  ^FO99999,10\n" +
		"     ^~~~~\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyContextLines(t *testing.T) {
	fs, id := newTestFile(t, "^XA\n^PW812\n^LL406\n^XZ\n")
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.LintOutOfRange,
		source.Span{File: id, Start: 11, End: 17},
		"^LL.length value 406 is out of range [1,32000]"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowPreview: true, Context: 1})
	want := "test.zpl:3:1: WARNING ZPL1201: ^LL.length value 406 is out of range [1,32000]\n" +
		"  ^PW812\n" +
		"  ^LL406\n" +
		"  ^~~~~~\n" +
		"  ^XZ\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyNotes(t *testing.T) {
	fs, id := newTestFile(t, "^XA\n^FO30,30\n^FO40,40\n^XZ\n")
	bag := diag.NewBag(10)
	d := diag.NewWarning(diag.LintFieldNotClosed,
		source.Span{File: id, Start: 13, End: 21},
		"field not closed before next field origin").
		WithNote(source.Span{File: id, Start: 4, End: 12}, "previous field opened here")
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowNotes: true})
	want := "test.zpl:3:1: WARNING ZPL2203: field not closed before next field origin\n" +
		"  note: previous field opened here (test.zpl:2:1)\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyFixTitles(t *testing.T) {
	fs, id := newTestFile(t, "^XA\n^FO30,30\n^FO40,40\n^XZ\n")
	bag := diag.NewBag(10)
	d := diag.NewWarning(diag.LintFieldNotClosed,
		source.Span{File: id, Start: 13, End: 21},
		"field not closed before next field origin").
		WithFix("insert ^FS before the next field origin",
			diag.FixEdit{Span: source.Span{File: id, Start: 13, End: 13}, NewText: "^FS"})
	bag.Add(d)

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{ShowFixes: true})
	want := "test.zpl:3:1: WARNING ZPL2203: field not closed before next field origin\n" +
		"  fix: insert ^FS before the next field origin\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestPrettyNilBag(t *testing.T) {
	fs, _ := newTestFile(t, "^XA^XZ")
	var buf bytes.Buffer
	Pretty(&buf, nil, fs, PrettyOpts{})
	if buf.Len() != 0 {
		t.Errorf("nil bag should render nothing, got %q", buf.String())
	}
}

func TestSummary(t *testing.T) {
	fs, id := newTestFile(t, "^XA^XZ")
	_ = fs
	sp := source.Span{File: id}

	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LintArity, sp, "a"))
	bag.Add(diag.NewError(diag.LintArity, sp, "b"))
	bag.Add(diag.NewWarning(diag.LintEmptyLabel, sp, "c"))

	var buf bytes.Buffer
	Summary(&buf, bag, false)
	if got := buf.String(); got != "2 errors, 1 warning\n" {
		t.Errorf("got %q", got)
	}

	buf.Reset()
	Summary(&buf, diag.NewBag(1), false)
	if buf.Len() != 0 {
		t.Errorf("empty bag should print nothing, got %q", buf.String())
	}
}
