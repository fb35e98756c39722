package validate

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// checkBarcodeData validates field data against the data rules of the
// symbology in effect. Data is NFC-normalized first so that composed and
// decomposed input measure and match the same way.
func (c *checker) checkBarcodeData(cmd *zpl.Command, bcCode string, rules *tables.DataRules, data string) {
	runes := []rune(norm.NFC.String(data))

	if rules.Charset != "" {
		m := newCharsetMatcher(rules.Charset)
		for _, r := range runes {
			if !m.match(r) {
				diag.ReportError(c.r, diag.LintBarcodeInvalidChar, cmd.Span,
					fmt.Sprintf("barcode data for %s contains invalid character %q", bcCode, r)).Emit()
				break // one finding per field is enough
			}
		}
	}

	n := len(runes)
	switch {
	case rules.ExactLength > 0 && n != rules.ExactLength:
		diag.ReportWarning(c.r, diag.LintBarcodeDataLength, cmd.Span,
			fmt.Sprintf("barcode data for %s must be exactly %d characters, got %d",
				bcCode, rules.ExactLength, n)).Emit()
	case rules.MinLength > 0 && n < rules.MinLength:
		diag.ReportWarning(c.r, diag.LintBarcodeDataLength, cmd.Span,
			fmt.Sprintf("barcode data for %s must be at least %d characters, got %d",
				bcCode, rules.MinLength, n)).Emit()
	case rules.MaxLength > 0 && n > rules.MaxLength:
		diag.ReportWarning(c.r, diag.LintBarcodeDataLength, cmd.Span,
			fmt.Sprintf("barcode data for %s must be at most %d characters, got %d",
				bcCode, rules.MaxLength, n)).Emit()
	}

	if len(rules.AllowedLengths) > 0 && !containsInt(rules.AllowedLengths, n) {
		diag.ReportWarning(c.r, diag.LintBarcodeDataLength, cmd.Span,
			fmt.Sprintf("barcode data for %s must be one of lengths %v, got %d",
				bcCode, rules.AllowedLengths, n)).Emit()
	}
	switch rules.Parity {
	case "even":
		if n%2 != 0 {
			diag.ReportWarning(c.r, diag.LintBarcodeDataLength, cmd.Span,
				fmt.Sprintf("barcode data for %s must have an even number of characters, got %d",
					bcCode, n)).Emit()
		}
	case "odd":
		if n%2 != 1 {
			diag.ReportWarning(c.r, diag.LintBarcodeDataLength, cmd.Span,
				fmt.Sprintf("barcode data for %s must have an odd number of characters, got %d",
					bcCode, n)).Emit()
		}
	}
}

// charsetMatcher interprets the character-class syntax of
// tables.DataRules.Charset: "a-z" ranges, "\\x" literals, and a leading or
// trailing "-" as a literal dash.
type charsetMatcher struct {
	singles map[rune]bool
	ranges  [][2]rune
}

func newCharsetMatcher(spec string) *charsetMatcher {
	m := &charsetMatcher{singles: make(map[rune]bool)}
	rs := []rune(spec)
	for i := 0; i < len(rs); i++ {
		switch {
		case rs[i] == '\\' && i+1 < len(rs):
			m.singles[rs[i+1]] = true
			i++
		case i+2 < len(rs) && rs[i+1] == '-':
			m.ranges = append(m.ranges, [2]rune{rs[i], rs[i+2]})
			i += 2
		default:
			m.singles[rs[i]] = true
		}
	}
	return m
}

func (m *charsetMatcher) match(r rune) bool {
	if m.singles[r] {
		return true
	}
	for _, rg := range m.ranges {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

func containsInt(xs []int, n int) bool {
	for _, x := range xs {
		if x == n {
			return true
		}
	}
	return false
}
