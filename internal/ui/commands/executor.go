package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"flightbook/internal/booking"
	"flightbook/internal/domain"
	"flightbook/internal/search"
	"flightbook/internal/ui/state"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(ctx context.Context, state *state.AppState, engine *booking.Engine, searcher search.Searcher) *Executor {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Executor{
		ctx: &CommandContext{
			Ctx:      ctx,
			State:    state,
			Engine:   engine,
			Searcher: searcher,
		},
	}
}

// ExecuteSubmit creates and executes a submit command
func (e *Executor) ExecuteSubmit() tea.Cmd {
	cmd := NewSubmitCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteSelect creates and executes a select command
func (e *Executor) ExecuteSelect(id string) tea.Cmd {
	cmd := NewSelectCommand(e.ctx, id)
	return cmd.Execute()
}

// ExecuteEditField creates and executes an edit field command
func (e *Executor) ExecuteEditField(field domain.Field, value interface{}) tea.Cmd {
	cmd := NewEditFieldCommand(e.ctx, field, value)
	return cmd.Execute()
}

// ExecuteToggleRoundtrip creates and executes a toggle roundtrip command
func (e *Executor) ExecuteToggleRoundtrip() tea.Cmd {
	cmd := NewToggleRoundtripCommand(e.ctx)
	return cmd.Execute()
}
