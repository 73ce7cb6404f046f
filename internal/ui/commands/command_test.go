package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightbook/internal/booking"
	"flightbook/internal/domain"
	"flightbook/internal/search"
	"flightbook/internal/ui/state"
)

func newExecutor(s search.Searcher) (*Executor, *booking.Engine, *state.AppState) {
	engine := booking.NewEngine()
	st := state.NewAppState()
	return NewExecutor(context.Background(), st, engine, s), engine, st
}

func TestSubmitRunsSearchInCommand(t *testing.T) {
	var got domain.SearchQuery
	ex, engine, _ := newExecutor(search.Func(func(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, error) {
		got = q
		return []domain.FlightOption{{ID: "f1", Airline: "AirX", Price: 300, Duration: "5h"}}, nil
	}))
	ex.ExecuteEditField(domain.FieldDestination, "Paris")

	cmd := ex.ExecuteSubmit()
	require.NotNil(t, cmd)
	assert.Equal(t, booking.StatusSubmitting, engine.State().Status(), "submitting before the search runs")

	msg, ok := cmd().(SearchResultMsg)
	require.True(t, ok)
	assert.Equal(t, "Paris", got.Destination)
	assert.NoError(t, msg.Err)
	assert.Len(t, msg.Flights, 1)

	require.True(t, engine.Resolve(msg.Seq, msg.Flights, msg.Err))
	assert.Equal(t, booking.StatusSuccess, engine.State().Status())
}

func TestSubmitDisabledWhileInFlight(t *testing.T) {
	ex, engine, st := newExecutor(search.Func(func(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, error) {
		return nil, nil
	}))

	first := ex.ExecuteSubmit()
	require.NotNil(t, first)
	assert.Nil(t, ex.ExecuteSubmit())
	assert.NotEmpty(t, st.StatusMessage)

	msg := first().(SearchResultMsg)
	engine.Resolve(msg.Seq, msg.Flights, msg.Err)
	assert.NotNil(t, ex.ExecuteSubmit(), "enabled again once resolved")
}

func TestSubmitFailureIsCarried(t *testing.T) {
	boom := errors.New("boom")
	ex, engine, _ := newExecutor(search.Func(func(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, error) {
		return nil, boom
	}))

	msg := ex.ExecuteSubmit()().(SearchResultMsg)
	assert.ErrorIs(t, msg.Err, boom)

	engine.Resolve(msg.Seq, msg.Flights, msg.Err)
	assert.Equal(t, booking.Failed{Message: booking.SearchFailedMessage}, engine.State())
}

func TestSelectSetsStatus(t *testing.T) {
	ex, engine, st := newExecutor(search.Func(func(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, error) {
		return []domain.FlightOption{{ID: "f1", Airline: "AirX", Price: 300, Duration: "5h"}}, nil
	}))
	msg := ex.ExecuteSubmit()().(SearchResultMsg)
	engine.Resolve(msg.Seq, msg.Flights, msg.Err)

	ex.ExecuteSelect("missing")
	assert.Empty(t, st.StatusMessage)

	ex.ExecuteSelect("f1")
	assert.Equal(t, "Selected AirX (5h)", st.StatusMessage)
	assert.Equal(t, 300.0, engine.Summary().TotalPrice)
}

func TestToggleRoundtripMovesFocusOffHiddenField(t *testing.T) {
	ex, engine, st := newExecutor(nil)

	ex.ExecuteToggleRoundtrip()
	assert.True(t, engine.Criteria().IsRoundtrip)

	st.Focus = state.FocusReturnDate
	ex.ExecuteToggleRoundtrip()
	assert.False(t, engine.Criteria().IsRoundtrip)
	assert.Equal(t, state.FocusPassengers, st.Focus)
}
