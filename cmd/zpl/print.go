package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/driver"
	"github.com/trevordcampbell/zpl-toolchain/internal/printer"
)

var printCmd = &cobra.Command{
	Use:   "print [flags] <file.zpl>",
	Short: "Send a label file to a network printer",
	Long: "Print lints the file and transmits its raw bytes to the printer " +
		"over TCP port 9100. Lint errors block the send unless --no-lint is set.",
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

func init() {
	addSessionFlags(printCmd)
	printCmd.Flags().Bool("no-lint", false, "send without validating first")
	printCmd.Flags().Bool("strict", false, "let warnings block the send, not just errors")
	printCmd.Flags().Bool("dry-run", false, "run the lint gate but open no connection")
	printCmd.Flags().Bool("keep-alive", false, "enable TCP keepalive probes on the session")
}

func runPrint(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	noLint, err := cmd.Flags().GetBool("no-lint")
	if err != nil {
		return fmt.Errorf("failed to get no-lint flag: %w", err)
	}
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return fmt.Errorf("failed to get strict flag: %w", err)
	}
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("failed to get dry-run flag: %w", err)
	}
	keepAlive, err := cmd.Flags().GetBool("keep-alive")
	if err != nil {
		return fmt.Errorf("failed to get keep-alive flag: %w", err)
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

	addr, session, err := resolveSession(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("keep-alive") {
		if m, _ := loadManifest(); m != nil && m.Defined("print", "keep_alive") {
			keepAlive = m.Config.Print.KeepAlive
		}
	}
	session.KeepAlive = keepAlive

	result, err := driver.Print(args[0], driver.PrintOptions{
		MaxDiagnostics: maxDiags,
		Table:          table,
		Timer:          timer,
		NoLint:         noLint,
		Strict:         strict,
		DryRun:         dryRun,
		Addr:           addr,
		Printer:        session,
	})
	if result != nil {
		if renderErr := renderDiagnostics(cmd, result.Bag, result.FileSet); renderErr != nil {
			return renderErr
		}
	}
	reportTimings(timer)
	if err != nil {
		if errors.Is(err, driver.ErrLintFailed) {
			return fmt.Errorf("print refused: %w", err)
		}
		return describeSessionError(addr, err)
	}

	switch {
	case dryRun:
		fmt.Printf("%s: lint gate passed, no connection opened (dry run)\n", args[0])
	default:
		fmt.Printf("%s: sent %d bytes to %s\n", args[0], result.Result.BytesSent, addr)
	}
	return nil
}

// describeSessionError prefixes a printer failure with its class, so shell
// callers can tell a refused connect from a timeout without parsing.
func describeSessionError(addr string, err error) error {
	if kind := printer.KindOf(err); kind != 0 {
		return fmt.Errorf("%s: %s: %w", addr, kind, err)
	}
	return err
}
