package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/exhibit/internal/exhibit"
	"github.com/five82/exhibit/internal/export"
	"github.com/five82/exhibit/internal/state"
)

// Messages

// generatedMsg carries the outcome of one generation attempt.
type generatedMsg struct {
	attempt uint64
	data    exhibit.Data
	err     error
}

// loadingTickMsg rotates the loading message for attempt.
type loadingTickMsg struct {
	attempt uint64
}

// exportedMsg carries the outcome of a PNG export.
type exportedMsg struct {
	path string
	err  error
}

// Commands

func generateCmd(ctx context.Context, gen Generator, attempt uint64, in exhibit.UserInput) tea.Cmd {
	return func() tea.Msg {
		data, err := gen.Generate(ctx, in)
		return generatedMsg{attempt: attempt, data: data, err: err}
	}
}

func loadingTickCmd(attempt uint64) tea.Cmd {
	return tea.Tick(state.TickInterval, func(time.Time) tea.Msg {
		return loadingTickMsg{attempt: attempt}
	})
}

func exportCmd(ctx context.Context, exp Exporter, card export.Card) tea.Cmd {
	return func() tea.Msg {
		path, err := exp.Export(ctx, card)
		return exportedMsg{path: path, err: err}
	}
}
