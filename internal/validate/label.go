package validate

import (
	"fmt"
	"strconv"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// labelState tracks field structure while walking one label. A field runs
// from an origin (^FO/^FT) to the separator (^FS); barcode symbology and
// the ^FH hex indicator apply to the field they were set in.
type labelState struct {
	originOpen   bool
	originSpan   source.Span
	dataSeen     bool
	hexIndicator byte              // 0 when ^FH is not active
	rules        *tables.DataRules // active barcode data rules
	rulesCode    string            // symbology that set them

	fieldNums    map[int]source.Span
	commandCount int
}

func (s *labelState) fieldActive() bool {
	return s.originOpen || s.dataSeen
}

func (s *labelState) resetField() {
	s.originOpen = false
	s.dataSeen = false
	s.hexIndicator = 0
	s.rules = nil
	s.rulesCode = ""
}

func (c *checker) checkLabel(label *zpl.Label) {
	codes, printWidth, labelLength := c.scanLabel(label)
	st := &labelState{fieldNums: make(map[int]source.Span)}

	for _, el := range label.Elements {
		cmd, ok := el.(*zpl.Command)
		if !ok {
			continue
		}
		code := cmd.Code()
		if code != "^XA" && code != "^XZ" {
			st.commandCount++
		}

		entry, found := c.table.Lookup(code)
		if !found {
			c.unknown(cmd)
			continue
		}
		c.checkScope(cmd, entry, true)

		if entry.OpensField {
			if st.originOpen {
				diag.ReportWarning(c.r, diag.LintFieldNotClosed, cmd.Span,
					"field not closed before next field origin").
					WithNote(st.originSpan, "previous field opened here").Emit()
			}
			st.resetField()
			st.originOpen = true
			st.originSpan = cmd.Span
		}
		if entry.ClosesField {
			if !st.fieldActive() {
				diag.ReportWarning(c.r, diag.LintOrphanedFieldSeparator, cmd.Span,
					fmt.Sprintf("%s without an open field", code)).
					WithFix(fmt.Sprintf("remove orphaned %s", code),
						diag.FixEdit{Span: cmd.Span}).Emit()
			}
			st.resetField()
		}

		switch {
		case entry.FreeText:
		case entry.FieldData:
			c.checkFieldData(cmd, st)
			st.dataSeen = true
		default:
			c.checkArgs(cmd, entry)
		}

		for _, target := range entry.Requires {
			if !codes[target] {
				diag.ReportWarning(c.r, diag.LintRequiredCommand, cmd.Span,
					fmt.Sprintf("%s requires %s in the same label", code, target)).Emit()
			}
		}

		if entry.Data != nil {
			st.rules = entry.Data
			st.rulesCode = code
		}

		switch code {
		case "^FH":
			st.hexIndicator = hexIndicator(cmd.Param)
		case "^FN":
			c.checkFieldNumber(cmd, st)
		}
		if entry.OpensField {
			c.checkBounds(cmd, printWidth, labelLength)
		}
	}

	if st.originOpen {
		diag.ReportWarning(c.r, diag.LintFieldNotClosed, st.originSpan,
			"field not closed before end of label").
			WithFix("insert ^FS to close the field",
				diag.FixEdit{Span: fieldCloseInsertion(label), NewText: "^FS"}).Emit()
	}
	if st.commandCount == 0 {
		diag.ReportWarning(c.r, diag.LintEmptyLabel, label.Span,
			"Empty label (no commands between ^XA and ^XZ)").Emit()
	}
}

// fieldCloseInsertion picks where an inserted ^FS belongs: just before the
// closing ^XZ, or at the end of a label that was cut off by end of input.
func fieldCloseInsertion(label *zpl.Label) source.Span {
	if label.Complete && len(label.Elements) > 0 {
		if last, ok := label.Elements[len(label.Elements)-1].(*zpl.Command); ok && last.Code() == "^XZ" {
			return source.Span{File: last.Span.File, Start: last.Span.Start, End: last.Span.Start}
		}
	}
	return source.Span{File: label.Span.File, Start: label.Span.End, End: label.Span.End}
}

// scanLabel collects which commands appear in the label plus the declared
// print width and label length. ^PW and ^LL shape the whole label no matter
// where they sit inside it, so the scan runs before the element walk; when
// a command repeats, the last value wins, as it does on the printer.
func (c *checker) scanLabel(label *zpl.Label) (codes map[string]bool, printWidth, labelLength int) {
	codes = make(map[string]bool)
	printWidth, labelLength = -1, -1
	for _, cmd := range label.Commands() {
		code := cmd.Code()
		codes[code] = true
		switch code {
		case "^PW":
			if v, ok := firstIntArg(cmd.Param); ok {
				printWidth = v
			}
		case "^LL":
			if v, ok := firstIntArg(cmd.Param); ok {
				labelLength = v
			}
		}
	}
	return codes, printWidth, labelLength
}

func firstIntArg(param string) (int, bool) {
	parts := zpl.SplitParam(param)
	if len(parts) == 0 || parts[0] == "" {
		return 0, false
	}
	v, err := strconv.Atoi(parts[0])
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// checkFieldNumber flags a ^FN number that is already taken in this label.
// A bare ^FN defaults to field number 0.
func (c *checker) checkFieldNumber(cmd *zpl.Command, st *labelState) {
	parts := zpl.SplitParam(cmd.Param)
	num := 0
	if len(parts) > 0 && parts[0] != "" {
		v, err := strconv.Atoi(parts[0])
		if err != nil {
			return // non-integer is already reported by the argument check
		}
		num = v
	}
	if first, dup := st.fieldNums[num]; dup {
		diag.ReportWarning(c.r, diag.LintDuplicateFieldNumber, cmd.Span,
			fmt.Sprintf("duplicate field number %d", num)).
			WithNote(first, "first used here").Emit()
		return
	}
	st.fieldNums[num] = cmd.Span
}

// checkBounds compares a field origin against ^PW/^LL declared in the same
// label. Unknown dimensions (-1) suppress the check.
func (c *checker) checkBounds(cmd *zpl.Command, printWidth, labelLength int) {
	parts := zpl.SplitParam(cmd.Param)
	if printWidth > 0 && len(parts) > 0 && parts[0] != "" {
		if x, err := strconv.Atoi(parts[0]); err == nil && x > printWidth {
			diag.ReportWarning(c.r, diag.LintPositionOutOfBounds, cmd.Span,
				fmt.Sprintf("%s.x %d exceeds print width %d", cmd.Code(), x, printWidth)).Emit()
		}
	}
	if labelLength > 0 && len(parts) > 1 && parts[1] != "" {
		if y, err := strconv.Atoi(parts[1]); err == nil && y > labelLength {
			diag.ReportWarning(c.r, diag.LintPositionOutOfBounds, cmd.Span,
				fmt.Sprintf("%s.y %d exceeds label length %d", cmd.Code(), y, labelLength)).Emit()
		}
	}
}

// checkFieldData validates ^FD/^FV content: placement, emptiness, hex
// escapes when ^FH is active, and barcode rules when a symbology is.
func (c *checker) checkFieldData(cmd *zpl.Command, st *labelState) {
	if !st.originOpen {
		diag.ReportWarning(c.r, diag.LintFieldDataWithoutOrigin, cmd.Span,
			fmt.Sprintf("%s without a preceding field origin (^FO/^FT)", cmd.Code())).Emit()
	}
	if cmd.Param == "" {
		diag.ReportWarning(c.r, diag.LintEmptyFieldData, cmd.Span, "empty field data").Emit()
		return
	}

	data := cmd.Param
	if st.hexIndicator != 0 {
		data = c.checkHexEscapes(cmd, st.hexIndicator)
	}
	if st.rules != nil {
		c.checkBarcodeData(cmd, st.rulesCode, st.rules, data)
	}
}

// hexIndicator extracts the indicator character from a ^FH parameter,
// defaulting to '_'.
func hexIndicator(param string) byte {
	parts := zpl.SplitParam(param)
	if len(parts) == 0 || parts[0] == "" {
		return '_'
	}
	return parts[0][0]
}
