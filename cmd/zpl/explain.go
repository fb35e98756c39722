package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/diag"
)

var explainCmd = &cobra.Command{
	Use:   "explain <code>",
	Short: "Explain a diagnostic code",
	Long:  "Explain prints the long-form description behind a diagnostic code, e.g. ZPL1101 or ZPL.PARSER.1102",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExplain,
}

func init() {
	explainCmd.Flags().Bool("list", false, "list every known diagnostic code")
}

func runExplain(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	list, err := cmd.Flags().GetBool("list")
	if err != nil {
		return fmt.Errorf("failed to get list flag: %w", err)
	}
	if list {
		codes := diag.Codes()
		sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
		for _, c := range codes {
			fmt.Printf("%-18s %s\n", c.ID(), c.Title())
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("explain: pass a diagnostic code or --list")
	}
	code := args[0]
	text, ok := diag.Explain(code)
	if !ok {
		// Unknown codes are an answer, not a failure.
		fmt.Printf("no explanation available for %s\n", code)
		return nil
	}
	fmt.Println(text)
	return nil
}
