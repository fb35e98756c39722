package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/diagfmt"
	"github.com/trevordcampbell/zpl-toolchain/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.zpl>",
	Short: "Parse a ZPL source file and dump its document structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	table, err := loadTable(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(args[0], maxDiags, table)
	if err != nil {
		return err
	}
	if err := renderDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}

	switch format {
	case "pretty":
		diagfmt.DocumentPretty(os.Stdout, result.Doc, result.FileSet)
	case "json":
		if err := diagfmt.DocumentJSON(os.Stdout, result.Doc, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
		}); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q (expected pretty|json)", format)
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("parse reported errors")
	}
	return nil
}
