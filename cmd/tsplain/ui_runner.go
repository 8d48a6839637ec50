package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tsplain/internal/driver"
	"tsplain/internal/tserr"
	"tsplain/internal/ui"
)

type explainOutcome struct {
	result *driver.Result
	err    error
}

func runExplainWithUI(ctx context.Context, title string, files []string, diags []tserr.Diagnostic, opts driver.Options) (*driver.Result, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan explainOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.ExplainDiagnostics(ctx, diags, optsCopy)
		outcomeCh <- explainOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
