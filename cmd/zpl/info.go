package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/printer"
)

var infoCmd = &cobra.Command{
	Use:   "info [flags]",
	Short: "Query printer identification over ~HI",
	Long: "Info sends ~HI to the printer and reports its model, firmware " +
		"revision, head resolution, and installed memory.",
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func init() {
	addSessionFlags(infoCmd)
	infoCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runInfo(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	addr, session, err := resolveSession(cmd)
	if err != nil {
		return err
	}

	info, err := printer.QueryInfo(addr, session)
	if err != nil {
		return describeSessionError(addr, err)
	}

	switch format {
	case "pretty":
		fmt.Printf("%s: %s\n", addr, info.Model)
		fmt.Printf("  firmware: %s\n", info.Firmware)
		fmt.Printf("  dpi:      %d\n", info.DPI)
		fmt.Printf("  memory:   %d KB\n", info.MemoryKB)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q (expected pretty|json)", format)
	}
	return nil
}
