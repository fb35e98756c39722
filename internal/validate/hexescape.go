package validate

import (
	"fmt"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// checkHexEscapes validates ^FH escapes in field data and returns the
// decoded content for downstream barcode checks. Each escape is the
// indicator byte followed by exactly two hex digits; malformed escapes are
// reported at their exact position and passed through undecoded.
func (c *checker) checkHexEscapes(cmd *zpl.Command, indicator byte) string {
	data := cmd.Param
	// Field data spans start at the command leader; the content begins
	// after the leader byte and the command name.
	dataStart := cmd.Span.Start + uint32(1+len(cmd.Name))

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); {
		if data[i] != indicator {
			out = append(out, data[i])
			i++
			continue
		}
		if i+2 >= len(data) {
			diag.ReportError(c.r, diag.LintInvalidHexEscape,
				subSpan(cmd.Span, dataStart+uint32(i), cmd.Span.End),
				"truncated hex escape at end of field data").Emit()
			out = append(out, data[i:]...)
			break
		}
		hi, okHi := hexVal(data[i+1])
		lo, okLo := hexVal(data[i+2])
		if okHi && okLo {
			out = append(out, hi<<4|lo)
			i += 3
			continue
		}
		diag.ReportError(c.r, diag.LintInvalidHexEscape,
			subSpan(cmd.Span, dataStart+uint32(i), dataStart+uint32(i)+3),
			fmt.Sprintf("invalid hex escape %q (expected two hex digits)", data[i:i+3])).Emit()
		out = append(out, data[i])
		i++
	}
	return string(out)
}

func subSpan(base source.Span, start, end uint32) source.Span {
	if end > base.End {
		end = base.End
	}
	if start > end {
		start = end
	}
	return source.Span{File: base.File, Start: start, End: end}
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
