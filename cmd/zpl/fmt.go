package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/driver"
	"github.com/trevordcampbell/zpl-toolchain/internal/format"
	"github.com/trevordcampbell/zpl-toolchain/internal/project"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format ZPL source files",
	Long: "Fmt re-serializes labels under the configured layout options. " +
		"Without --write or --check the formatted text goes to stdout.",
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "report files that would change, without writing")
	fmtCmd.Flags().Bool("write", false, "rewrite changed files in place")
	fmtCmd.Flags().String("indent", "", "indent granularity (none|label|field)")
	fmtCmd.Flags().String("compaction", "", "field block compaction (none|field)")
	fmtCmd.Flags().String("comment-placement", "", "comment placement (default|line)")
	fmtCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	fmtCmd.Flags().String("ui", "auto", "progress UI for batch runs (auto|on|off)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}
	if check && write {
		return fmt.Errorf("fmt: --check cannot be used with --write")
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	uiMode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	layout, err := resolveFormatOptions(cmd)
	if err != nil {
		return err
	}
	table, err := loadTable(cmd)
	if err != nil {
		return err
	}
	layout.Table = table

	opts := driver.FormatOptions{
		Check:   check,
		Write:   write,
		Jobs:    jobs,
		Options: layout,
	}

	var results []driver.FormatResult
	if (check || write) && shouldUseTUI(uiMode) {
		results, err = runFormatWithUI(cmd, args, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return err
	}

	var failed, changed int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", r.Path, r.Err)
		case check && r.Changed:
			changed++
			fmt.Printf("%s: needs formatting\n", r.Path)
		case write && r.Changed:
			changed++
			if !quiet(cmd) {
				fmt.Printf("%s: reformatted\n", r.Path)
			}
		case !check && !write:
			if _, err := os.Stdout.Write(r.Formatted); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return fmt.Errorf("fmt: failed to format %d file(s)", failed)
	}
	if check && changed > 0 {
		return fmt.Errorf("fmt: %d file(s) need formatting", changed)
	}
	return nil
}

// resolveFormatOptions merges layout settings: flag > zpl.toml > default.
func resolveFormatOptions(cmd *cobra.Command) (format.Options, error) {
	manifest, err := loadManifest()
	if err != nil {
		return format.Options{}, err
	}
	var cfg project.FormatConfig
	if manifest != nil {
		cfg = manifest.Config.Format
	}

	pick := func(flagName, manifestValue string, defined bool) (string, error) {
		v, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return "", fmt.Errorf("failed to get %s flag: %w", flagName, err)
		}
		if v == "" && defined {
			return manifestValue, nil
		}
		return v, nil
	}

	var opts format.Options

	indent, err := pick("indent", cfg.Indent,
		manifest.Defined("format", "indent"))
	if err != nil {
		return opts, err
	}
	compaction, err := pick("compaction", cfg.Compaction,
		manifest.Defined("format", "compaction"))
	if err != nil {
		return opts, err
	}
	placement, err := pick("comment-placement", cfg.CommentPlacement,
		manifest.Defined("format", "comment_placement"))
	if err != nil {
		return opts, err
	}

	if opts.Indent, err = format.ParseIndentMode(indent); err != nil {
		return opts, err
	}
	if opts.Compaction, err = format.ParseCompactionMode(compaction); err != nil {
		return opts, err
	}
	if opts.CommentPlacement, err = format.ParseCommentMode(placement); err != nil {
		return opts, err
	}
	return opts, nil
}
