package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quasi/internal/checkpipeline"
	"quasi/internal/ui"
)

type checkOutcome struct {
	results []checkpipeline.FileResult
	err     error
}

func runCheckWithUI(ctx context.Context, title string, req checkpipeline.Request) ([]checkpipeline.FileResult, error) {
	events := make(chan checkpipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		req.Progress = checkpipeline.ChannelSink{Ch: events}
		res, err := checkpipeline.Check(ctx, req)
		outcomeCh <- checkOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, req.Files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
