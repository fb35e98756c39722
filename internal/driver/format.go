package driver

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/trevordcampbell/zpl-toolchain/internal/format"
	"github.com/trevordcampbell/zpl-toolchain/internal/parser"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
)

// FormatOptions configure a formatting run.
type FormatOptions struct {
	// Check reports whether files would change without touching them.
	Check bool
	// Write rewrites changed files in place. When neither Check nor
	// Write is set, the formatted content is returned in the results.
	Write bool
	// Jobs caps concurrency; 0 means GOMAXPROCS.
	Jobs    int
	Options format.Options
	// Progress, when non-nil, receives per-file events as the batch runs.
	Progress Sink
}

// FormatResult captures the outcome for a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Err       error
	Formatted []byte // set when neither Check nor Write is requested
}

// FormatPaths formats the given files and directories (directories are
// walked for .zpl files) in parallel. Per-file failures land in the
// result's Err; the returned error reports setup problems and
// cancellation only.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	files, err := collectLabelFiles(ctx, paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no label files found")
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FormatResult, len(files))

	for _, path := range files {
		emit(opts.Progress, path, StatusQueued, "")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			emit(opts.Progress, path, StatusWorking, "")
			results[i] = formatOneFile(path, opts)
			switch r := results[i]; {
			case r.Err != nil:
				emit(opts.Progress, path, StatusError, r.Err.Error())
			case r.Changed && opts.Check:
				emit(opts.Progress, path, StatusDone, "needs format")
			case r.Changed:
				emit(opts.Progress, path, StatusDone, "reformatted")
			default:
				emit(opts.Progress, path, StatusDone, "ok")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// formatOneFile runs the pipeline for one path. The formatter is total
// over any document, so parse diagnostics do not block formatting; only
// I/O and encoding failures do.
func formatOneFile(path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}

	_, file, err := loadFile(path)
	if err != nil {
		result.Err = err
		return result
	}

	res := parser.ParseFile(file, parser.Options{Table: opts.Options.Table})
	formatted := format.Document(res.Doc, opts.Options)

	// Loading normalizes CRLF and strips a BOM, so equality against the
	// normalized content alone would miss files the formatter rewrites.
	normalized := file.Flags&(source.FileHadBOM|source.FileNormalizedCRLF) != 0
	result.Changed = normalized || !bytes.Equal(file.Content, formatted)

	switch {
	case opts.Check:
		// Report only.
	case opts.Write:
		if path == StdinPath {
			result.Err = errors.New("format: cannot write standard input in place")
			return result
		}
		if result.Changed {
			mode := os.FileMode(0o644)
			if info, statErr := os.Stat(path); statErr == nil {
				mode = info.Mode()
			}
			if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
				result.Err = err
			}
		}
	default:
		result.Formatted = formatted
	}
	return result
}

// collectLabelFiles expands paths into a sorted, deduplicated file list.
// Explicit files are taken as given; directories contribute their .zpl
// files recursively.
func collectLabelFiles(ctx context.Context, paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if p == StdinPath {
			addFile(p)
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".zpl") {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
