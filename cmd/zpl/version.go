package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/version"
)

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show zpl build fingerprints",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runVersion(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	switch strings.ToLower(format) {
	case "pretty":
		renderVersionPretty(cmd.OutOrStdout())
		return nil
	case "json":
		return renderVersionJSON(cmd.OutOrStdout())
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}

func renderVersionPretty(out io.Writer) {
	fmt.Fprintf(out, "zpl %s\n", version.Version)
	if commit := strings.TrimSpace(version.GitCommit); commit != "" {
		fmt.Fprintf(out, "commit: %s\n", commit)
	}
	if date := strings.TrimSpace(version.BuildDate); date != "" {
		fmt.Fprintf(out, "built:  %s\n", date)
	}
}

func renderVersionJSON(out io.Writer) error {
	payload := versionPayload{
		Tool:      "zpl",
		Version:   strings.TrimSpace(version.Number),
		GitCommit: strings.TrimSpace(version.GitCommit),
		BuildDate: strings.TrimSpace(version.BuildDate),
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
