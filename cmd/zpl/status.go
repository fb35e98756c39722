package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/printer"
)

var statusCmd = &cobra.Command{
	Use:   "status [flags]",
	Short: "Query printer status over ~HS",
	Long: "Status sends ~HS to the printer and decodes its three response " +
		"lines: media state, head state, buffer occupancy, and print mode.",
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	addSessionFlags(statusCmd)
	statusCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	addr, session, err := resolveSession(cmd)
	if err != nil {
		return err
	}

	hs, err := printer.QueryStatus(addr, session)
	if err != nil {
		return describeSessionError(addr, err)
	}

	switch format {
	case "pretty":
		renderStatusPretty(cmd, addr, hs)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(hs); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q (expected pretty|json)", format)
	}
	return nil
}

func renderStatusPretty(cmd *cobra.Command, addr string, hs printer.HostStatus) {
	problems := hs.Problems()
	switch {
	case len(problems) == 0 && !hs.Paused:
		fmt.Printf("%s: ready\n", addr)
	case len(problems) == 0:
		fmt.Printf("%s: paused\n", addr)
	default:
		fmt.Printf("%s: not ready\n", addr)
		for _, p := range problems {
			fmt.Printf("  problem: %s\n", p)
		}
		if hs.Paused {
			fmt.Println("  problem: paused")
		}
	}
	if quiet(cmd) {
		return
	}
	fmt.Printf("  print mode:        %s\n", hs.PrintMode)
	fmt.Printf("  label length:      %d dots\n", hs.LabelLengthDots)
	fmt.Printf("  formats in buffer: %d\n", hs.FormatsInBuffer)
	fmt.Printf("  labels remaining:  %d\n", hs.LabelsRemaining)
	if hs.ThermalTransferMode {
		fmt.Println("  media:             thermal transfer")
	} else {
		fmt.Println("  media:             direct thermal")
	}
}
