package driver

import (
	"errors"
	"os"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/fix"
	"github.com/trevordcampbell/zpl-toolchain/internal/parser"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
	"github.com/trevordcampbell/zpl-toolchain/internal/validate"
)

// maxFixPasses bounds the fix loop. Each pass applies a non-overlapping
// subset; three passes resolve every chain the checks can produce (for
// example a missing ^FS whose insertion point collides with a missing ^XZ).
const maxFixPasses = 3

// FixOptions configure a fix run.
type FixOptions struct {
	MaxDiagnostics int
	Table          *tables.Table
	// DryRun computes the rewritten content without touching the file.
	DryRun bool
}

// FixResult reports what a fix run did to one file.
type FixResult struct {
	FileSet *source.FileSet
	Path    string
	Applied []fix.Applied
	Skipped []fix.Skipped
	// Content is the rewritten file content after all passes.
	Content []byte
	Changed bool
	Wrote   bool
	// Bag holds the diagnostics of the final pass, i.e. what is still
	// wrong after fixing.
	Bag *diag.Bag
}

// Fix lints path and applies the suggested fixes, re-linting between passes
// because one pass can unlock the next. The file is rewritten only when
// something changed and DryRun is off.
func Fix(path string, opts FixOptions) (*FixResult, error) {
	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	tbl := opts.Table
	if tbl == nil {
		tbl = tables.Builtin()
	}

	out := &FixResult{FileSet: fs, Path: path, Content: file.Content}

	for pass := 0; pass < maxFixPasses; pass++ {
		bag := newBag(opts.MaxDiagnostics)
		rep := diag.BagReporter{Bag: bag}
		res := parser.ParseFile(file, parser.Options{MaxErrors: uint(bag.Cap()), Reporter: rep, Table: tbl})
		validate.Document(res.Doc, validate.Options{Table: tbl, Reporter: rep})
		out.Bag = bag

		fr, err := fix.Apply(file, bag.Items())
		if err != nil {
			if errors.Is(err, fix.ErrNoFixes) {
				out.Skipped = append(out.Skipped, fr.Skipped...)
				break
			}
			return nil, err
		}
		out.Applied = append(out.Applied, fr.Applied...)
		out.Skipped = append(out.Skipped, fr.Skipped...)
		out.Content = fr.Content
		out.Changed = true

		id := fs.AddVirtual(path, fr.Content)
		file = fs.Get(id)
	}

	if out.Changed {
		// Re-lint the final content so Bag reflects what fixing left behind.
		bag := newBag(opts.MaxDiagnostics)
		rep := diag.BagReporter{Bag: bag}
		res := parser.ParseFile(file, parser.Options{MaxErrors: uint(bag.Cap()), Reporter: rep, Table: tbl})
		validate.Document(res.Doc, validate.Options{Table: tbl, Reporter: rep})
		out.Bag = bag
	}

	if out.Changed && !opts.DryRun {
		if path == StdinPath {
			return out, errors.New("fix: cannot write standard input in place, use --dry-run")
		}
		mode := os.FileMode(0o644)
		if info, statErr := os.Stat(path); statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, out.Content, mode.Perm()); err != nil {
			return out, err
		}
		out.Wrote = true
	}
	return out, nil
}
