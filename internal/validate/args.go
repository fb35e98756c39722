package validate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// checkArgs validates the comma-separated parameters of one command against
// its table signature: count, required slots, and per-argument type, range,
// and enum constraints.
func (c *checker) checkArgs(cmd *zpl.Command, entry *tables.Entry) {
	code := cmd.Code()
	parts := zpl.SplitParam(cmd.Param)

	if len(parts) > entry.MaxArgs() {
		diag.ReportError(c.r, diag.LintArity, cmd.Span,
			fmt.Sprintf("%s has too many arguments (%d>%d)", code, len(parts), entry.MaxArgs())).Emit()
	}

	for i := range entry.Args {
		arg := &entry.Args[i]
		if i >= len(parts) {
			if arg.Required {
				diag.ReportError(c.r, diag.LintRequiredMissing, cmd.Span,
					fmt.Sprintf("%s.%s is required but missing", code, arg.Name)).Emit()
			}
			continue
		}
		value := parts[i]
		if value == "" {
			if arg.Required {
				diag.ReportWarning(c.r, diag.LintRequiredEmpty, cmd.Span,
					fmt.Sprintf("%s.%s is required but empty", code, arg.Name)).Emit()
			}
			continue
		}
		c.checkArgValue(cmd, code, arg, value)
	}
}

func (c *checker) checkArgValue(cmd *zpl.Command, code string, arg *tables.Arg, value string) {
	switch arg.Type {
	case tables.ArgInt:
		v, err := strconv.Atoi(value)
		if err != nil {
			diag.ReportError(c.r, diag.LintExpectedInteger, cmd.Span,
				fmt.Sprintf("%s.%s expects an integer, got %q", code, arg.Name, value)).Emit()
			return
		}
		c.checkRange(cmd, code, arg, float64(v), value)
	case tables.ArgNum:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			diag.ReportError(c.r, diag.LintExpectedNumber, cmd.Span,
				fmt.Sprintf("%s.%s expects a number, got %q", code, arg.Name, value)).Emit()
			return
		}
		c.checkRange(cmd, code, arg, v, value)
	case tables.ArgEnum:
		for _, allowed := range arg.Enum {
			if value == allowed {
				return
			}
		}
		diag.ReportError(c.r, diag.LintInvalidEnum, cmd.Span,
			fmt.Sprintf("%s.%s must be one of %s, got %q",
				code, arg.Name, strings.Join(arg.Enum, ","), value)).Emit()
	}
}

func (c *checker) checkRange(cmd *zpl.Command, code string, arg *tables.Arg, v float64, value string) {
	if !arg.Ranged() {
		return
	}
	if v < arg.Min || v > arg.Max {
		diag.ReportError(c.r, diag.LintOutOfRange, cmd.Span,
			fmt.Sprintf("%s.%s value %s is out of range [%g,%g]",
				code, arg.Name, value, arg.Min, arg.Max)).Emit()
	}
}
