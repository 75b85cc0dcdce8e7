package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"omnicode/internal/driver"
	"omnicode/internal/ui"
)

type dirOutcome struct {
	result *driver.DirResult
	err    error
}

// analyzeDirWithUI runs AnalyzeDir while the progress model renders its
// events on stderr.
func analyzeDirWithUI(ctx context.Context, title, dir string, opts driver.DirOptions) (*driver.DirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan dirOutcome, 1)

	go func() {
		reqCopy := opts
		reqCopy.Events = events
		res, err := driver.AnalyzeDir(ctx, dir, reqCopy)
		outcomeCh <- dirOutcome{result: res, err: err}
	}()

	model := ui.NewProgressModel(title, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr), tea.WithContext(ctx))
	_, uiErr := program.Run()
	// UI мог завершиться раньше анализа: дочитываем канал
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
