package format

import (
	"testing"

	"github.com/trevordcampbell/zpl-toolchain/internal/parser"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// formatSource parses input with a fresh file set and renders it under opt.
// Parse diagnostics are irrelevant here; the formatter works on whatever
// document the parser recovered.
func formatSource(t *testing.T, input string, opt Options) string {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.zpl", []byte(input)))
	res := parser.ParseFile(file, parser.Options{MaxErrors: 100})
	if res.Doc == nil {
		t.Fatalf("ParseFile returned nil document for %q", input)
	}
	return string(Document(res.Doc, opt))
}

func TestFormatFlatDefault(t *testing.T) {
	got := formatSource(t, "^XA  ^FO30,30\n\n^FDX^FS   ^XZ\n", Options{})
	want := "^XA\n^FO30,30\n^FDX\n^FS\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatIndentLabel(t *testing.T) {
	got := formatSource(t, "^XA^FO30,30^FDX^FS^XZ", Options{Indent: IndentLabel})
	want := "^XA\n  ^FO30,30\n  ^FDX\n  ^FS\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatIndentField(t *testing.T) {
	// The separator prints at field depth and dedents after its line.
	got := formatSource(t, "^XA^FO30,30^FDX^FS^FO40,40^GB10,10,1^FS^XZ", Options{Indent: IndentField})
	want := "^XA\n" +
		"  ^FO30,30\n" +
		"    ^FDX\n" +
		"    ^FS\n" +
		"  ^FO40,40\n" +
		"    ^GB10,10,1\n" +
		"    ^FS\n" +
		"^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatFieldCompaction(t *testing.T) {
	input := "^XA\n^PW609\n^LL406\n^FO30,30\n^A0N,35,35\n^FDWIDGET-3000\n^FS\n^XZ\n"
	got := formatSource(t, input, Options{Indent: IndentLabel, Compaction: CompactField})
	want := "^XA\n" +
		"  ^PW609\n" +
		"  ^LL406\n" +
		"  ^FO30,30^A0N,35,35^FDWIDGET-3000^FS\n" +
		"^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatCompactionSkipsCommentedBlock(t *testing.T) {
	got := formatSource(t, "^XA^FO30,30\n; note\n^FDX^FS^XZ", Options{Compaction: CompactField})
	want := "^XA\n^FO30,30\n; note\n^FDX\n^FS\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatCompactionSkipsUnclosedField(t *testing.T) {
	got := formatSource(t, "^XA^FO30,30^FDX^XZ", Options{Compaction: CompactField})
	want := "^XA\n^FO30,30\n^FDX\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatCompactionSkipsEmptyField(t *testing.T) {
	// Origin directly followed by the separator stays on two lines.
	got := formatSource(t, "^XA^FO30,30^FS^XZ", Options{Compaction: CompactField})
	want := "^XA\n^FO30,30\n^FS\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatCompactionAfterOrphanOrigin(t *testing.T) {
	// The unclosed first origin stays alone; the complete block after it
	// still compacts.
	got := formatSource(t, "^XA^FO30,30^FT10,10^FDX^FS^XZ", Options{Compaction: CompactField})
	want := "^XA\n^FO30,30\n^FT10,10^FDX^FS\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatTrailingCommentDefault(t *testing.T) {
	got := formatSource(t, "^XA\n^PW812 ; set print width   \n^XZ\n", Options{})
	want := "^XA\n^PW812 ; set print width\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatCommentPlacementLine(t *testing.T) {
	got := formatSource(t, "^XA\n^PW812 ; set print width\n^XZ\n", Options{CommentPlacement: CommentLine})
	want := "^XA\n^PW812\n; set print width\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatOwnLineCommentIndented(t *testing.T) {
	got := formatSource(t, "^XA\n; header\n^PW812 ; width\n^XZ\n", Options{Indent: IndentLabel})
	want := "^XA\n  ; header\n  ^PW812 ; width\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatDocLevelComment(t *testing.T) {
	got := formatSource(t, "; file header\n^XA^XZ\n", Options{Indent: IndentLabel})
	want := "; file header\n^XA\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatParamNormalization(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces around slots", "^XA^FO 30 , 30^FS^XZ", "^XA\n^FO30,30\n^FS\n^XZ\n"},
		{"trailing empty dropped", "^XA^FO30,30,^FS^XZ", "^XA\n^FO30,30\n^FS\n^XZ\n"},
		{"inner empties kept", "^XA^BC,,100,,,Y^FD12345^FS^XZ", "^XA\n^BC,,100,,,Y\n^FD12345\n^FS\n^XZ\n"},
		{"all slots empty", "^XA^FO,,^FS^XZ", "^XA\n^FO\n^FS\n^XZ\n"},
		{"no parameters", "^XA~HS^XZ", "^XA\n~HS\n^XZ\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatSource(t, tt.input, Options{}); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatUnknownCommandVerbatim(t *testing.T) {
	got := formatSource(t, "^XA^QQ 1 ,2^XZ", Options{})
	want := "^XA\n^QQ1 ,2\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatFreeTextVerbatim(t *testing.T) {
	got := formatSource(t, "^XA^FXnote, with comma^FS^XZ", Options{})
	want := "^XA\n^FXnote, with comma\n^FS\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatFieldDataVerbatim(t *testing.T) {
	// Commas, semicolons, and surrounding spaces inside field data are
	// payload, not syntax.
	got := formatSource(t, "^XA^FD 1,2; 50% OFF ^FS^XZ", Options{})
	want := "^XA\n^FD 1,2; 50% OFF \n^FS\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatMultiLineFieldData(t *testing.T) {
	got := formatSource(t, "^XA^FO30,30^FDLINE1\nLINE2^FS^XZ", Options{Indent: IndentField})
	want := "^XA\n  ^FO30,30\n    ^FDLINE1\nLINE2\n    ^FS\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatStrayContent(t *testing.T) {
	got := formatSource(t, "junk before\n^XA\nGARBAGE TEXT\n^XZ\n", Options{Indent: IndentLabel})
	want := "junk before\n^XA\n  GARBAGE TEXT\n^XZ\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatDocLevelCommands(t *testing.T) {
	got := formatSource(t, "~HS\n^PW812\n", Options{Indent: IndentField})
	want := "~HS\n^PW812\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatIncompleteLabel(t *testing.T) {
	got := formatSource(t, "^XA^FO10,10", Options{Indent: IndentLabel})
	want := "^XA\n  ^FO10,10\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatEmptyInput(t *testing.T) {
	if got := formatSource(t, "", Options{}); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestFormatNilDocument(t *testing.T) {
	if out := Document(nil, Options{}); out != nil {
		t.Errorf("got %q, want nil", out)
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []struct {
		name  string
		input string
	}{
		{"compact single line", "^XA^FO30,30^A0N,35,35^FDWIDGET-3000^FS^XZ"},
		{"full label", "^XA\n^PW609\n^LL406\n^FO30,30\n^A0N,35,35\n^FDWIDGET-3000\n^FS\n^XZ\n"},
		{"comments", "^XA\n^PW812 ; trailing\n; own line\n^XZ\n"},
		{"multi-line field data", "^XA^FO30,30^FDLINE1\nLINE2^FS^XZ"},
		{"field data with spaces", "^XA^FD HELLO ^FS^XZ"},
		{"orphan origin", "^XA^FO30,30^FT10,10^FDX^FS^XZ"},
		{"stray content", "junk\n^XA^XZ\n"},
		{"host command", "~HS"},
		{"incomplete label", "^XA^FO10,10"},
	}
	options := []struct {
		name string
		opt  Options
	}{
		{"flat", Options{}},
		{"indent label", Options{Indent: IndentLabel}},
		{"indent field", Options{Indent: IndentField}},
		{"compacted", Options{Indent: IndentLabel, Compaction: CompactField}},
		{"everything", Options{Indent: IndentField, Compaction: CompactField, CommentPlacement: CommentLine}},
	}
	for _, in := range inputs {
		for _, o := range options {
			t.Run(in.name+"/"+o.name, func(t *testing.T) {
				first := formatSource(t, in.input, o.opt)
				second := formatSource(t, first, o.opt)
				if first != second {
					t.Errorf("not idempotent:\nfirst  %q\nsecond %q", first, second)
				}
			})
		}
	}
}

func TestFormatRoundTripPreservesCommands(t *testing.T) {
	inputs := []string{
		"^XA  ^FO30,30\n\n^A0N,35,35 ^FDWIDGET-3000^FS   ^XZ\n",
		"^XA\n^PW812 ; trailing note\n^BCN,100,Y,N,N\n^FD12345678\n^FS\n^XZ\n",
		"junk before\n^XA^FDdata,with,commas^FS^XZ\ntail",
		"~HS\n^XA^FO10,10^FDX^FS^XZ",
	}
	collect := func(input string) []string {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("test.zpl", []byte(input)))
		res := parser.ParseFile(file, parser.Options{MaxErrors: 100})
		var out []string
		for _, item := range res.Doc.Items {
			switch n := item.(type) {
			case *zpl.Command:
				out = append(out, n.Code()+"|"+n.Param)
			case *zpl.Label:
				for _, el := range n.Elements {
					if c, ok := el.(*zpl.Command); ok {
						out = append(out, c.Code()+"|"+c.Param)
					}
				}
			}
		}
		return out
	}
	for _, input := range inputs {
		before := collect(input)
		after := collect(formatSource(t, input, Options{}))
		if len(before) != len(after) {
			t.Errorf("input %q: %d commands before, %d after", input, len(before), len(after))
			continue
		}
		for i := range before {
			if before[i] != after[i] {
				t.Errorf("input %q: command %d changed from %q to %q", input, i, before[i], after[i])
			}
		}
	}
}
