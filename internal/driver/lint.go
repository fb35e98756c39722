package driver

import (
	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/observ"
	"github.com/trevordcampbell/zpl-toolchain/internal/parser"
	"github.com/trevordcampbell/zpl-toolchain/internal/project"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
	"github.com/trevordcampbell/zpl-toolchain/internal/validate"
	"github.com/trevordcampbell/zpl-toolchain/internal/zpl"
)

// LintOptions configure a lint run.
type LintOptions struct {
	MaxDiagnostics int
	// Table resolves command codes; nil selects the builtin table.
	Table *tables.Table
	// Cache, when non-nil, short-circuits repeat runs over unchanged
	// content. The key covers the file content and the table, so either
	// changing invalidates the entry.
	Cache *DiskCache
	// Timer, when non-nil, records the parse and lint phases.
	Timer *observ.Timer
}

// LintResult carries structural and table diagnostics for one file. On a
// cache hit the document is not rebuilt and Doc is nil.
type LintResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Doc      *zpl.Document
	Bag      *diag.Bag
	CacheHit bool
}

// Lint loads path, parses it, and validates the document against the
// command table. Parser and validator findings land in one bag, in
// document order.
func Lint(path string, opts LintOptions) (*LintResult, error) {
	fs, file, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	tbl := opts.Table
	if tbl == nil {
		tbl = tables.Builtin()
	}
	key := project.Combine(project.Digest(file.Hash), project.Digest(tbl.Digest()))

	if opts.Cache != nil {
		var payload lintPayload
		hit, cacheErr := opts.Cache.Get(key, &payload)
		if cacheErr == nil && hit {
			idx := beginPhase(opts.Timer, "lint")
			bag := restoreBag(&payload, file.ID, opts.MaxDiagnostics)
			endPhase(opts.Timer, idx, "cache hit")
			return &LintResult{FileSet: fs, File: file, Bag: bag, CacheHit: true}, nil
		}
		// A broken cache read degrades to a miss.
	}

	bag := newBag(opts.MaxDiagnostics)

	idx := beginPhase(opts.Timer, "parse")
	res := parser.ParseFile(file, parser.Options{
		MaxErrors: uint(bag.Cap()),
		Reporter:  diag.BagReporter{Bag: bag},
		Table:     tbl,
	})
	endPhase(opts.Timer, idx, "")

	idx = beginPhase(opts.Timer, "lint")
	validate.Document(res.Doc, validate.Options{
		Table:    tbl,
		Reporter: diag.BagReporter{Bag: bag},
	})
	endPhase(opts.Timer, idx, "")

	// A bag at capacity may have been truncated; caching it would pin
	// the truncated view for runs with a larger cap.
	if opts.Cache != nil && bag.Len() < int(bag.Cap()) {
		_ = opts.Cache.Put(key, snapshotBag(bag))
	}

	return &LintResult{
		FileSet: fs,
		File:    file,
		Doc:     res.Doc,
		Bag:     bag,
	}, nil
}

func beginPhase(tm *observ.Timer, name string) int {
	if tm == nil {
		return -1
	}
	return tm.Begin(name)
}

func endPhase(tm *observ.Timer, idx int, note string) {
	if tm == nil {
		return
	}
	tm.End(idx, note)
}
