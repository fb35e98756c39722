package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.zpl>",
	Short: "Syntax-check a ZPL source file",
	Long:  "Check parses the file and reports structural problems without running the full lint pass",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

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
	if result.Bag.HasErrors() {
		return fmt.Errorf("check failed")
	}
	if !quiet(cmd) {
		fmt.Printf("%s: ok (%d labels)\n", args[0], len(result.Doc.Labels()))
	}
	return nil
}
