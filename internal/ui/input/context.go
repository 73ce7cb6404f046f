package input

import (
	"flightbook/internal/booking"
	"flightbook/internal/domain"
	"flightbook/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler over
// a snapshot of the booking engine taken once per key press
type ModelContext struct {
	State    *state.AppState
	Criteria domain.SearchCriteria
	Booking  booking.State
}

// NewModelContext snapshots the engine for one round of input handling
func NewModelContext(st *state.AppState, engine *booking.Engine) *ModelContext {
	return &ModelContext{
		State:    st,
		Criteria: engine.Criteria(),
		Booking:  engine.State(),
	}
}

func (c *ModelContext) Focus() state.Focus {
	return c.State.Focus
}

func (c *ModelContext) IsRoundtrip() bool {
	return c.Criteria.IsRoundtrip
}

func (c *ModelContext) Submitting() bool {
	return c.Booking.Status() == booking.StatusSubmitting
}

// ResultCount returns the number of listed flights, 0 outside Success
func (c *ModelContext) ResultCount() int {
	if s, ok := c.Booking.(booking.Success); ok {
		return len(s.Results)
	}
	return 0
}

func (c *ModelContext) CursorIndex() int {
	return c.State.ResultCursor
}

// FlightIDAt returns the id of the listed flight at index, or ""
func (c *ModelContext) FlightIDAt(index int) string {
	s, ok := c.Booking.(booking.Success)
	if !ok || index < 0 || index >= len(s.Results) {
		return ""
	}
	return s.Results[index].ID
}
