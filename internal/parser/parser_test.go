package parser

import (
	"testing"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

func TestParseSimpleLabel(t *testing.T) {
	doc, bag := parseSource(t, "^XA\n^FO30,30\n^FDHELLO\n^FS\n^XZ\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	label := singleLabel(t, doc)
	if !label.Complete {
		t.Fatal("label should be complete")
	}
	got := commandCodes(label)
	want := []string{"^XA", "^FO", "^FD", "^FS", "^XZ"}
	if len(got) != len(want) {
		t.Fatalf("commands = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("commands = %v, want %v", got, want)
		}
	}
}

func TestParseCommandParams(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  string
		param string
	}{
		{"joined digits", "^XA^FO30,30^XZ", "^FO", "30,30"},
		{"space before args", "^XA^PW 812^XZ", "^PW", "812"},
		{"alnum code with tail", "^XA^A0N,35,35^XZ", "^A0", "N,35,35"},
		{"at sign code", "^XA^A@N,50,50,E:ARIAL.TTF^XZ", "^A@", "N,50,50,E:ARIAL.TTF"},
		{"no params", "^XA^FS^XZ", "^FS", ""},
		{"param stops at newline", "^XA^PW812\n406^FS^XZ", "^PW", "812"},
		{"tilde command", "^XA~SD25^XZ", "~SD", "25"},
		{"trailing spaces trimmed", "^XA^PW812  \n^XZ", "^PW", "812"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := parseSource(t, tt.input)
			label := singleLabel(t, doc)
			cmd := findCommand(t, label, tt.code)
			if cmd.Param != tt.param {
				t.Errorf("param = %q, want %q", cmd.Param, tt.param)
			}
		})
	}
}

func TestParseFieldData(t *testing.T) {
	tests := []struct {
		name  string
		input string
		param string
	}{
		{"plain", "^XA^FDWIDGET-3000^FS^XZ", "WIDGET-3000"},
		{"commas are data", "^XA^FD1,2,3^FS^XZ", "1,2,3"},
		{"semicolon is data", "^XA^FD50% OFF; TODAY^FS^XZ", "50% OFF; TODAY"},
		{"code 128 invocation codes", "^XA^BCN,100,Y,N,N^FD>;>800093012345^FS^XZ", ">;>800093012345"},
		{"newline before separator dropped", "^XA^FDWIDGET-3000\n^FS^XZ", "WIDGET-3000"},
		{"inner newline kept", "^XA^FDLINE1\nLINE2\n^FS^XZ", "LINE1\nLINE2"},
		{"indent before separator dropped", "^XA^FDLINE1\nLINE2\n  ^FS^XZ", "LINE1\nLINE2"},
		{"spaces kept", "^XA^FD HELLO ^FS^XZ", " HELLO "},
		{"empty", "^XA^FD^FS^XZ", ""},
		{"field variable", "^XA^FVSERIAL^FS^XZ", "SERIAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := parseSource(t, tt.input)
			label := singleLabel(t, doc)
			var cmd *zpl.Command
			for _, c := range label.Commands() {
				if c.Code() == "^FD" || c.Code() == "^FV" {
					cmd = c
					break
				}
			}
			if cmd == nil {
				t.Fatalf("no field data command in %v", commandCodes(label))
			}
			if cmd.Param != tt.param {
				t.Errorf("field data = %q, want %q", cmd.Param, tt.param)
			}
		})
	}
}

func TestParseComments(t *testing.T) {
	doc, bag := parseSource(t, "^XA\n; own line\n^PW812 ; trailing\n^XZ\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	label := singleLabel(t, doc)
	var comments []*zpl.Comment
	for _, el := range label.Elements {
		if c, ok := el.(*zpl.Comment); ok {
			comments = append(comments, c)
		}
	}
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(comments))
	}
	if comments[0].Text != "; own line" || !comments[0].OwnLine {
		t.Errorf("first comment = %q ownLine=%v, want own-line", comments[0].Text, comments[0].OwnLine)
	}
	if comments[1].Text != "; trailing" || comments[1].OwnLine {
		t.Errorf("second comment = %q ownLine=%v, want trailing", comments[1].Text, comments[1].OwnLine)
	}
}

func TestParseCommentIndentedIsOwnLine(t *testing.T) {
	doc, _ := parseSource(t, "^XA\n  ; indented\n^XZ\n")
	label := singleLabel(t, doc)
	for _, el := range label.Elements {
		if c, ok := el.(*zpl.Comment); ok {
			if !c.OwnLine {
				t.Fatalf("indented comment should count as own-line")
			}
			return
		}
	}
	t.Fatal("comment not found")
}

func TestParseMultipleLabels(t *testing.T) {
	doc, bag := parseSource(t, "^XA^FDONE^FS^XZ\n^XA^FDTWO^FS^XZ\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
	labels := doc.Labels()
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	for i, l := range labels {
		if !l.Complete {
			t.Errorf("label %d should be complete", i)
		}
	}
}

func TestParseContentOutsideLabels(t *testing.T) {
	doc, _ := parseSource(t, "; file header\n^XA^XZ\n~HS\n")
	if len(doc.Items) != 3 {
		t.Fatalf("expected 3 document items, got %d", len(doc.Items))
	}
	if c, ok := doc.Items[0].(*zpl.Comment); !ok || !c.OwnLine {
		t.Errorf("first item should be an own-line comment, got %T", doc.Items[0])
	}
	if _, ok := doc.Items[1].(*zpl.Label); !ok {
		t.Errorf("second item should be a label, got %T", doc.Items[1])
	}
	if c, ok := doc.Items[2].(*zpl.Command); !ok || c.Code() != "~HS" {
		t.Errorf("third item should be ~HS, got %T", doc.Items[2])
	}
}

func TestParseCaseSensitiveNames(t *testing.T) {
	doc, _ := parseSource(t, "^XA^fo30,30^XZ")
	label := singleLabel(t, doc)
	cmd := findCommand(t, label, "^fo")
	if cmd.Name != "fo" || cmd.Param != "30,30" {
		t.Errorf("got name=%q param=%q", cmd.Name, cmd.Param)
	}
}

func TestParseSpans(t *testing.T) {
	input := "^XA^FO30,30^XZ"
	doc, _ := parseSource(t, input)
	label := singleLabel(t, doc)
	cmd := findCommand(t, label, "^FO")
	if got := input[cmd.Span.Start:cmd.Span.End]; got != "^FO30,30" {
		t.Errorf("command span covers %q, want %q", got, "^FO30,30")
	}
	if got := input[label.Span.Start:label.Span.End]; got != input {
		t.Errorf("label span covers %q, want the whole input", got)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	doc, _ := parseSource(t, "")
	if len(doc.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(doc.Items))
	}
}

func TestParseExternalTableFieldData(t *testing.T) {
	schema := `{"version":"1","commands":{"^ZT":{"description":"Zone Text","plane":"format","fieldData":true}}}`
	tbl, err := tables.Load([]byte(schema))
	if err != nil {
		t.Fatalf("load schema: %v", err)
	}

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.zpl", []byte("^XA^ZTabc;note^FS^XZ")))

	bag := diag.NewBag(100)
	res := ParseFile(file, Options{
		MaxErrors: 100,
		Reporter:  diag.BagReporter{Bag: bag},
		Table:     tbl,
	})

	label := singleLabel(t, res.Doc)
	cmd := findCommand(t, label, "^ZT")
	if cmd.Param != "abc;note" {
		t.Errorf("field data = %q, want %q (semicolon must stay literal)", cmd.Param, "abc;note")
	}

	// The builtin table reads ^ZT as an ordinary command, so the semicolon
	// starts a comment and the parameter stops in front of it.
	doc, _ := parseSource(t, "^XA^ZTabc;note^FS^XZ")
	cmd = findCommand(t, singleLabel(t, doc), "^ZT")
	if cmd.Param != "abc" {
		t.Errorf("builtin param = %q, want %q", cmd.Param, "abc")
	}
}
