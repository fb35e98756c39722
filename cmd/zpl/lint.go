package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/diagfmt"
	"github.com/trevordcampbell/zpl-toolchain/internal/driver"
	"github.com/trevordcampbell/zpl-toolchain/internal/version"
)

var lintCmd = &cobra.Command{
	Use:     "lint [flags] <file.zpl>",
	Aliases: []string{"validate"},
	Short:   "Validate a ZPL source file against the command table",
	Args:    cobra.ExactArgs(1),
	RunE:    runLint,
}

func init() {
	lintCmd.Flags().String("format", "pretty", "output format (pretty|json|sarif)")
	lintCmd.Flags().Bool("strict", false, "treat warnings as errors")
	lintCmd.Flags().Bool("cache", false, "reuse cached results for unchanged files")
}

func runLint(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	table, err := loadTable(cmd)
	if err != nil {
		return err
	}
	timer, err := newTimer(cmd)
	if err != nil {
		return err
	}

	opts := driver.LintOptions{
		MaxDiagnostics: maxDiags,
		Table:          table,
		Timer:          timer,
	}
	if useCache {
		cache, err := driver.OpenDiskCache("zpl")
		if err == nil {
			opts.Cache = cache
		}
		// A cache that will not open only costs the speedup.
	}

	result, err := driver.Lint(args[0], opts)
	if err != nil {
		return err
	}
	result.Bag.Sort()

	switch format {
	case "pretty":
		if err := renderDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			IncludeFixes:     true,
			Max:              maxDiags,
		}); err != nil {
			return err
		}
	case "sarif":
		if err := diagfmt.Sarif(os.Stdout, result.Bag, result.FileSet, diagfmt.SarifMeta{
			ToolName:       "zpl",
			ToolVersion:    version.Number,
			InvocationArgs: os.Args,
		}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q (expected pretty|json|sarif)", format)
	}

	reportTimings(timer)

	if result.Bag.HasErrors() || (strict && result.Bag.HasWarnings()) {
		return fmt.Errorf("lint reported problems")
	}
	return nil
}
