package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
)

func TestJSONOutputFields(t *testing.T) {
	fs, id := newTestFile(t, "^XA\n^FO30,30\n^XZ\n")
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.LintInvalidEnum,
		source.Span{File: id, Start: 4, End: 12},
		"^FO.justification value \"9\" is not an allowed enum value"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludePositions: true})
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, len = %d, want 1", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "WARNING" {
		t.Errorf("severity = %q", d.Severity)
	}
	if d.Code != "ZPL1103" {
		t.Errorf("code = %q", d.Code)
	}
	if d.Message == "" {
		t.Errorf("message should round-trip")
	}
	loc := d.Location
	if loc.File != "test.zpl" {
		t.Errorf("file = %q", loc.File)
	}
	if loc.StartByte != 4 || loc.EndByte != 12 {
		t.Errorf("bytes = %d..%d, want 4..12", loc.StartByte, loc.EndByte)
	}
	if loc.StartLine != 2 || loc.StartCol != 1 || loc.EndLine != 2 || loc.EndCol != 9 {
		t.Errorf("positions = %d:%d-%d:%d, want 2:1-2:9",
			loc.StartLine, loc.StartCol, loc.EndLine, loc.EndCol)
	}
}

func TestJSONPositionsOmitted(t *testing.T) {
	fs, id := newTestFile(t, "^XA\n^FO30,30\n^XZ\n")
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LintArity,
		source.Span{File: id, Start: 4, End: 12}, "too few parameters"))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	loc := out.Diagnostics[0].Location
	if loc.StartLine != 0 || loc.StartCol != 0 {
		t.Errorf("positions should be zero without IncludePositions, got %d:%d",
			loc.StartLine, loc.StartCol)
	}
}

func TestJSONMaxTruncates(t *testing.T) {
	fs, id := newTestFile(t, "^XA\n^FO30,30\n^XZ\n")
	bag := diag.NewBag(10)
	for i := uint32(0); i < 3; i++ {
		bag.Add(diag.NewWarning(diag.LintEmptyLabel,
			source.Span{File: id, Start: i, End: i + 1}, "empty label"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Errorf("count = %d, len = %d, want 2 after truncation", out.Count, len(out.Diagnostics))
	}
	if out.Diagnostics[0].Location.StartByte != 0 {
		t.Errorf("truncation should keep the first items")
	}
}

func TestJSONNotesAndFixes(t *testing.T) {
	fs, id := newTestFile(t, "^XA\n^FO30,30\n^FO40,40\n^XZ\n")
	bag := diag.NewBag(10)
	bag.Add(diag.NewWarning(diag.LintFieldNotClosed,
		source.Span{File: id, Start: 13, End: 21},
		"field not closed before next field origin").
		WithNote(source.Span{File: id, Start: 4, End: 12}, "previous field opened here").
		WithFix("insert ^FS before the next field origin",
			diag.FixEdit{Span: source.Span{File: id, Start: 13, End: 13}, NewText: "^FS"}))

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{IncludeNotes: true, IncludeFixes: true})
	d := out.Diagnostics[0]
	if len(d.Notes) != 1 || d.Notes[0].Message != "previous field opened here" {
		t.Fatalf("notes = %+v", d.Notes)
	}
	if d.Notes[0].Location.StartByte != 4 {
		t.Errorf("note start = %d, want 4", d.Notes[0].Location.StartByte)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Title != "insert ^FS before the next field origin" {
		t.Fatalf("fixes = %+v", d.Fixes)
	}
	if len(d.Fixes[0].Edits) != 1 || d.Fixes[0].Edits[0].NewText != "^FS" {
		t.Errorf("edits = %+v", d.Fixes[0].Edits)
	}

	// Without the opt-ins the same bag renders bare diagnostics.
	bare := BuildDiagnosticsOutput(bag, fs, JSONOpts{})
	if bare.Diagnostics[0].Notes != nil || bare.Diagnostics[0].Fixes != nil {
		t.Errorf("notes/fixes should be omitted by default")
	}
}

func TestJSONEncodeDecode(t *testing.T) {
	fs, id := newTestFile(t, "^XA\n^FO30,30\n^XZ\n")
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LintOutOfRange,
		source.Span{File: id, Start: 4, End: 12},
		"^FO.x value 99999 is out of range [0,32000]"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var decoded DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if decoded.Count != 1 {
		t.Fatalf("count = %d", decoded.Count)
	}
	got := decoded.Diagnostics[0]
	if got.Severity != "ERROR" || got.Code != "ZPL1201" {
		t.Errorf("got %s %s", got.Severity, got.Code)
	}
	if got.Location.EndCol != 9 {
		t.Errorf("end col = %d, want 9", got.Location.EndCol)
	}
}
