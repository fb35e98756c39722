package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
	"github.com/trevordcampbell/zpl-toolchain/internal/diagfmt"
	"github.com/trevordcampbell/zpl-toolchain/internal/observ"
	"github.com/trevordcampbell/zpl-toolchain/internal/project"
	"github.com/trevordcampbell/zpl-toolchain/internal/source"
	"github.com/trevordcampbell/zpl-toolchain/internal/tables"
)

// useColor decides colorization for output going to f, honoring the
// persistent --color flag (auto|on|off).
func useColor(cmd *cobra.Command, f *os.File) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch mode {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return isTerminal(f), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

// loadTable resolves the command table for this invocation: the --tables
// schema merged over the builtin table, or nil to let the driver pick the
// builtin default.
func loadTable(cmd *cobra.Command) (*tables.Table, error) {
	path, err := cmd.Root().PersistentFlags().GetString("tables")
	if err != nil {
		return nil, fmt.Errorf("failed to get tables flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	return tables.LoadFile(path)
}

func maxDiagnostics(cmd *cobra.Command) (int, error) {
	n, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return 0, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	return n, nil
}

func quiet(cmd *cobra.Command) bool {
	q, err := cmd.Root().PersistentFlags().GetBool("quiet")
	return err == nil && q
}

// newTimer returns a Timer when --timings is set, nil otherwise. Every
// driver entry point accepts a nil timer.
func newTimer(cmd *cobra.Command) (*observ.Timer, error) {
	on, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if !on {
		return nil, nil
	}
	return observ.NewTimer(), nil
}

func reportTimings(tm *observ.Timer) {
	if tm == nil {
		return
	}
	fmt.Fprint(os.Stderr, tm.Summary())
}

// renderDiagnostics pretty-prints a bag to stderr, sorted, with a summary
// line unless --quiet is set.
func renderDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	color, err := useColor(cmd, os.Stderr)
	if err != nil {
		return err
	}
	bag.Sort()
	diagfmt.Pretty(os.Stderr, bag, fs, diagfmt.PrettyOpts{
		Color:       color,
		Context:     1,
		ShowNotes:   true,
		ShowPreview: true,
	})
	if !quiet(cmd) {
		diagfmt.Summary(os.Stderr, bag, color)
	}
	return nil
}

// loadManifest finds the nearest zpl.toml above the working directory.
// A missing manifest is not an error; every setting has a flag default.
func loadManifest() (*project.Manifest, error) {
	m, ok, err := project.Load(".")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return m, nil
}
