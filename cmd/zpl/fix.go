package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/driver"
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.zpl>",
	Short: "Apply suggested fixes to a ZPL source file",
	Long: "Fix lints the file and applies the corrections its diagnostics " +
		"suggest: closing open fields, terminating labels, removing orphaned " +
		"separators.",
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "show what would change without writing")
}

func runFix(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}
	maxDiags, err := maxDiagnostics(cmd)
	if err != nil {
		return err
	}
	table, err := loadTable(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Fix(args[0], driver.FixOptions{
		MaxDiagnostics: maxDiags,
		Table:          table,
		DryRun:         dryRun,
	})
	if err != nil {
		return err
	}

	if !quiet(cmd) {
		for _, a := range result.Applied {
			fmt.Printf("%s: %s [%s]\n", args[0], a.Title, a.Code.ID())
		}
		for _, s := range result.Skipped {
			fmt.Printf("%s: skipped %q: %s\n", args[0], s.Title, s.Reason)
		}
	}

	switch {
	case !result.Changed:
		if !quiet(cmd) {
			fmt.Printf("%s: nothing to fix\n", args[0])
		}
	case dryRun:
		fmt.Printf("%s: %d fix(es) would apply (dry run)\n", args[0], len(result.Applied))
	default:
		fmt.Printf("%s: applied %d fix(es)\n", args[0], len(result.Applied))
	}

	// Whatever fixing could not resolve still matters to the caller.
	if err := renderDiagnostics(cmd, result.Bag, result.FileSet); err != nil {
		return err
	}
	if result.Bag != nil && result.Bag.HasErrors() {
		return fmt.Errorf("problems remain after fixing")
	}
	return nil
}
