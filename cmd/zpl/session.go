package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/printer"
	"github.com/trevordcampbell/zpl-toolchain/internal/project"
	"github.com/trevordcampbell/zpl-toolchain/internal/trace"
)

// addSessionFlags registers the flags shared by print, status, and info.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().String("printer", "", "printer address (IP, IP:PORT, or hostname)")
	cmd.Flags().Int64("timeout", 0, "base session timeout in milliseconds")
	cmd.Flags().String("bind", "", "local IP (or IP:port) to dial from")
	cmd.Flags().String("trace", "off", "session tracing (off|session|wire)")
}

// resolveSession merges session settings: flag > zpl.toml > default. The
// timeout value itself is validated by the printer client, so an explicit
// --timeout 0 travels through and fails there with the configuration error.
func resolveSession(cmd *cobra.Command) (addr string, opts printer.Options, err error) {
	manifest, err := loadManifest()
	if err != nil {
		return "", opts, err
	}
	var cfg project.PrintConfig
	if manifest != nil {
		cfg = manifest.Config.Print
	}

	addr, err = cmd.Flags().GetString("printer")
	if err != nil {
		return "", opts, fmt.Errorf("failed to get printer flag: %w", err)
	}
	if addr == "" {
		addr = cfg.Printer
	}
	if addr == "" {
		return "", opts, fmt.Errorf("no printer address: pass --printer or set [print].printer in zpl.toml")
	}

	opts.TimeoutMS, err = cmd.Flags().GetInt64("timeout")
	if err != nil {
		return "", opts, fmt.Errorf("failed to get timeout flag: %w", err)
	}
	if !cmd.Flags().Changed("timeout") {
		if manifest.Defined("print", "timeout_ms") {
			opts.TimeoutMS = cfg.TimeoutMS
		} else {
			opts.TimeoutMS = printer.DefaultTimeoutMS
		}
	}

	opts.BindAddr, err = cmd.Flags().GetString("bind")
	if err != nil {
		return "", opts, fmt.Errorf("failed to get bind flag: %w", err)
	}
	if opts.BindAddr == "" {
		opts.BindAddr = cfg.Bind
	}

	traceFlag, err := cmd.Flags().GetString("trace")
	if err != nil {
		return "", opts, fmt.Errorf("failed to get trace flag: %w", err)
	}
	level, err := trace.ParseLevel(traceFlag)
	if err != nil {
		return "", opts, err
	}
	if level != trace.LevelOff {
		opts.Tracer = trace.NewStreamTracer(os.Stderr, level)
	}

	return addr, opts, nil
}
