package driver

import (
	"errors"
	"fmt"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/observ"
	"github.com/trevordcampbell/zpl-toolchain/internal/printer"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
)

// ErrLintFailed marks a print refused by the lint gate. The result still
// carries the bag so the caller can render what blocked the send.
var ErrLintFailed = errors.New("lint reported problems")

// PrintOptions configure a print run.
type PrintOptions struct {
	MaxDiagnostics int
	Table          *tables.Table
	Cache          *DiskCache
	Timer          *observ.Timer

	// NoLint sends the payload without validating it first. The UTF-8
	// decode check still applies.
	NoLint bool
	// Strict widens the gate: warnings block the send, not just errors.
	Strict bool
	// DryRun runs the full gate but opens no connection.
	DryRun bool

	// Addr is the printer address; Printer carries the session options.
	Addr    string
	Printer printer.Options
}

// PrintResult reports one print run. Sent is false for dry runs and
// refused sends.
type PrintResult struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
	Sent    bool
	Result  printer.Result
}

// Print lints path and, when the gate passes, transmits the raw file
// content to the printer. The payload is the file as written; formatting
// is never applied on the way out.
func Print(path string, opts PrintOptions) (*PrintResult, error) {
	if opts.NoLint {
		fs, file, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		out := &PrintResult{FileSet: fs, File: file}
		return transmit(out, opts)
	}

	lr, err := Lint(path, LintOptions{
		MaxDiagnostics: opts.MaxDiagnostics,
		Table:          opts.Table,
		Cache:          opts.Cache,
		Timer:          opts.Timer,
	})
	if err != nil {
		return nil, err
	}
	out := &PrintResult{FileSet: lr.FileSet, File: lr.File, Bag: lr.Bag}

	if lr.Bag.HasErrors() || (opts.Strict && lr.Bag.HasWarnings()) {
		return out, ErrLintFailed
	}
	return transmit(out, opts)
}

func transmit(out *PrintResult, opts PrintOptions) (*PrintResult, error) {
	if opts.DryRun {
		return out, nil
	}
	idx := beginPhase(opts.Timer, "transmit")
	res, err := printer.Transmit(out.File.Content, opts.Addr, opts.Printer)
	endPhase(opts.Timer, idx, fmt.Sprintf("%d bytes", res.BytesSent))
	out.Result = res
	if err != nil {
		return out, err
	}
	out.Sent = true
	return out, nil
}
