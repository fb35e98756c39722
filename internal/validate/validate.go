// Package validate checks a parsed document against a command table and
// reports lint findings. Validation never fails: every problem, from a
// wrong argument type to a barcode that cannot encode its data, becomes a
// diagnostic, and a document full of errors still validates to completion.
//
// The pass is read-only with respect to both the document and the table,
// so one table can serve concurrent validations of different files.
package validate

import (
	"fmt"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// Options configure a validation pass.
type Options struct {
	// Table resolves command codes. Nil selects the builtin table.
	Table *tables.Table
	// Reporter receives findings. Nil silences the pass.
	Reporter diag.Reporter
}

// Document validates doc and reports findings in document order.
func Document(doc *zpl.Document, opts Options) {
	tbl := opts.Table
	if tbl == nil {
		tbl = tables.Builtin()
	}
	c := &checker{table: tbl, r: opts.Reporter}

	for _, item := range doc.Items {
		switch n := item.(type) {
		case *zpl.Label:
			c.checkLabel(n)
		case *zpl.Command:
			c.checkLooseCommand(n)
		}
	}
}

type checker struct {
	table *tables.Table
	r     diag.Reporter
}

// checkLooseCommand handles commands outside any label: host and device
// traffic, stray terminators, configuration sent between labels.
func (c *checker) checkLooseCommand(cmd *zpl.Command) {
	entry, ok := c.table.Lookup(cmd.Code())
	if !ok {
		c.unknown(cmd)
		return
	}
	c.checkScope(cmd, entry, false)

	switch {
	case entry.FreeText:
	case entry.FieldData:
		// Field data with no label has no origin either.
		diag.ReportWarning(c.r, diag.LintFieldDataWithoutOrigin, cmd.Span,
			fmt.Sprintf("%s without a preceding field origin (^FO/^FT)", cmd.Code())).Emit()
		if cmd.Param == "" {
			diag.ReportWarning(c.r, diag.LintEmptyFieldData, cmd.Span, "empty field data").Emit()
		}
	default:
		c.checkArgs(cmd, entry)
	}
}

func (c *checker) unknown(cmd *zpl.Command) {
	diag.ReportWarning(c.r, diag.ParseUnknownCommand, cmd.Span,
		fmt.Sprintf("unknown command %s", cmd.Code())).Emit()
}

// checkScope flags commands that sit on the wrong side of a label boundary.
// ^XA and ^XZ are the boundary itself and are always exempt.
func (c *checker) checkScope(cmd *zpl.Command, entry *tables.Entry, inLabel bool) {
	code := cmd.Code()
	if code == "^XA" || code == "^XZ" {
		return
	}
	if inLabel && (entry.Plane == tables.PlaneHost || entry.Plane == tables.PlaneDevice) {
		diag.ReportWarning(c.r, diag.LintCommandScope, cmd.Span,
			fmt.Sprintf("%s should not appear inside a label (^XA/^XZ)", code)).Emit()
	}
	if !inLabel && entry.Plane == tables.PlaneFormat {
		diag.ReportWarning(c.r, diag.LintCommandScope, cmd.Span,
			fmt.Sprintf("%s should not appear outside a label (^XA/^XZ)", code)).Emit()
	}
}
