package commands

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"flightbook/internal/booking"
	"flightbook/internal/domain"
	"flightbook/internal/search"
	"flightbook/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx      context.Context
	State    *state.AppState
	Engine   *booking.Engine
	Searcher search.Searcher
}

// SearchResultMsg carries a provider response back to the update loop
type SearchResultMsg struct {
	Seq     uint64
	Flights []domain.FlightOption
	Err     error
}

// SubmitCommand starts a search for the current criteria
type SubmitCommand struct {
	ctx *CommandContext
}

// NewSubmitCommand creates a new submit command
func NewSubmitCommand(ctx *CommandContext) *SubmitCommand {
	return &SubmitCommand{ctx: ctx}
}

// Execute begins the search and returns the command that performs it.
// The submit button is disabled while a search is in flight.
func (c *SubmitCommand) Execute() tea.Cmd {
	if c.ctx.Engine.InFlight() {
		c.ctx.State.StatusMessage = "A search is already in progress"
		return nil
	}

	ticket := c.ctx.Engine.Begin()
	c.ctx.State.StatusMessage = ""
	c.ctx.State.ResultCursor = 0

	searcher := c.ctx.Searcher
	parent := c.ctx.Ctx
	return func() tea.Msg {
		flights, err := searcher.Search(parent, ticket.Criteria.Query())
		return SearchResultMsg{Seq: ticket.Seq, Flights: flights, Err: err}
	}
}

// SelectCommand chooses a flight option
type SelectCommand struct {
	ctx *CommandContext
	id  string
}

// NewSelectCommand creates a new select command
func NewSelectCommand(ctx *CommandContext, id string) *SelectCommand {
	return &SelectCommand{ctx: ctx, id: id}
}

// Execute selects the flight
func (c *SelectCommand) Execute() tea.Cmd {
	if !c.ctx.Engine.Select(c.id) {
		return nil
	}
	if f := c.ctx.Engine.Summary().SelectedFlight; f != nil {
		c.ctx.State.StatusMessage = fmt.Sprintf("Selected %s (%s)", f.Airline, f.Duration)
	}
	return nil
}

// EditFieldCommand writes one criteria field
type EditFieldCommand struct {
	ctx   *CommandContext
	field domain.Field
	value interface{}
}

// NewEditFieldCommand creates a new edit field command
func NewEditFieldCommand(ctx *CommandContext, field domain.Field, value interface{}) *EditFieldCommand {
	return &EditFieldCommand{ctx: ctx, field: field, value: value}
}

// Execute applies the edit
func (c *EditFieldCommand) Execute() tea.Cmd {
	if !c.ctx.Engine.SetField(c.field, c.value) {
		log.Printf("Rejected edit of %s with %T", c.field, c.value)
	}
	return nil
}

// ToggleRoundtripCommand flips the roundtrip switch
type ToggleRoundtripCommand struct {
	ctx *CommandContext
}

// NewToggleRoundtripCommand creates a new toggle roundtrip command
func NewToggleRoundtripCommand(ctx *CommandContext) *ToggleRoundtripCommand {
	return &ToggleRoundtripCommand{ctx: ctx}
}

// Execute toggles the switch and keeps focus on a visible control
func (c *ToggleRoundtripCommand) Execute() tea.Cmd {
	roundtrip := !c.ctx.Engine.Criteria().IsRoundtrip
	c.ctx.Engine.SetField(domain.FieldIsRoundtrip, roundtrip)
	c.ctx.State.NormalizeFocus(roundtrip)
	return nil
}
