package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

func parseSource(t *testing.T, input string) (*zpl.Document, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.zpl", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	res := ParseFile(file, Options{
		MaxErrors: 100,
		Reporter:  diag.BagReporter{Bag: bag},
	})
	if res.Doc == nil {
		t.Fatalf("ParseFile returned nil document for %q", input)
	}
	if res.Bag != bag {
		t.Fatalf("ParseFile did not hand back the reporter's bag")
	}
	return res.Doc, bag
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func hasDiagnostic(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func findDiagnostic(t *testing.T, bag *diag.Bag, code diag.Code) diag.Diagnostic {
	t.Helper()
	for _, d := range bag.Items() {
		if d.Code == code {
			return d
		}
	}
	t.Fatalf("expected diagnostic %s, got: %s", code.ID(), diagnosticsSummary(bag))
	return diag.Diagnostic{}
}

// commandCodes flattens a label into its command codes, e.g. ["^XA", "^FO"].
func commandCodes(label *zpl.Label) []string {
	cmds := label.Commands()
	codes := make([]string, len(cmds))
	for i, c := range cmds {
		codes[i] = c.Code()
	}
	return codes
}

func singleLabel(t *testing.T, doc *zpl.Document) *zpl.Label {
	t.Helper()
	labels := doc.Labels()
	if len(labels) != 1 {
		t.Fatalf("expected exactly one label, got %d", len(labels))
	}
	return labels[0]
}

// findCommand returns the first command with the given code in the label.
func findCommand(t *testing.T, label *zpl.Label, code string) *zpl.Command {
	t.Helper()
	for _, c := range label.Commands() {
		if c.Code() == code {
			return c
		}
	}
	t.Fatalf("no %s command in label (have %v)", code, commandCodes(label))
	return nil
}
