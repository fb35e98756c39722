package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/diagfmt"
	"github.com/trevordcampbell/zpl-toolchain/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.zpl>",
	Short: "Tokenize a ZPL source file",
	Long:  "Tokenize breaks a ZPL source file into its raw token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.Tokenize(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		diagfmt.TokensPretty(os.Stdout, result.Tokens, result.FileSet)
		return nil
	case "json":
		return diagfmt.TokensJSON(os.Stdout, result.Tokens)
	default:
		return fmt.Errorf("unsupported output format %q (expected pretty|json)", format)
	}
}
