package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/trevordcampbell/zpl-toolchain/internal/driver"
	"github.com/trevordcampbell/zpl-toolchain/internal/ui"
)

type uiMode string

const (
	uiModeAuto uiMode = "auto"
	uiModeOn   uiMode = "on"
	uiModeOff  uiMode = "off"
)

func readUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

func shouldUseTUI(mode uiMode) bool {
	switch mode {
	case uiModeOn:
		return true
	case uiModeOff:
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

type formatOutcome struct {
	results []driver.FormatResult
	err     error
}

// runFormatWithUI runs a batch format behind the progress view. The batch
// runs in a goroutine feeding events into the model; closing the channel
// ends the UI.
func runFormatWithUI(cmd *cobra.Command, paths []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan formatOutcome, 1)

	opts.Progress = driver.ChannelSink{Ch: events}
	go func() {
		results, err := driver.FormatPaths(cmd.Context(), paths, opts)
		outcomeCh <- formatOutcome{results: results, err: err}
		close(events)
	}()

	// Seed with nothing: the batch emits a queued event per discovered
	// file, which also covers files found by expanding directories.
	model := ui.NewProgressModel("formatting labels", nil, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
