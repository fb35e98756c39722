package validate

import (
	"fmt"
	"strings"
	"testing"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/parser"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
)

// lint parses input and validates it against the builtin table, collecting
// parser and validator findings in one bag, the way the driver does.
func lint(t *testing.T, input string) *diag.Bag {
	t.Helper()
	return lintWith(t, nil, input)
}

func lintWith(t *testing.T, tbl *tables.Table, input string) *diag.Bag {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.zpl", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	rep := diag.BagReporter{Bag: bag}
	res := parser.ParseFile(file, parser.Options{MaxErrors: 100, Reporter: rep})
	if res.Doc == nil {
		t.Fatalf("ParseFile returned nil document for %q", input)
	}
	Document(res.Doc, Options{Table: tbl, Reporter: rep})
	return bag
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

func countDiagnostic(bag *diag.Bag, code diag.Code) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Code == code {
			n++
		}
	}
	return n
}
