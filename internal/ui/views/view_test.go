package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"flightbook/internal/booking"
	"flightbook/internal/domain"
	"flightbook/internal/ui/state"
)

var airX = domain.FlightOption{ID: "f1", Airline: "AirX", Price: 300, Duration: "5h"}

func baseState() ViewState {
	return ViewState{
		Width:          100,
		Height:         40,
		Criteria:       domain.DefaultCriteria(),
		Inputs:         map[domain.Field]string{},
		Focus:          state.FocusDestination,
		FormMode:       true,
		Booking:        booking.Idle{},
		CurrencySymbol: "$",
	}
}

func TestRenderIdleForm(t *testing.T) {
	out := NewRenderer().Render(baseState())

	assert.Contains(t, out, "Flight Booking")
	assert.Contains(t, out, "Roundtrip flight")
	assert.Contains(t, out, "Destination")
	assert.Contains(t, out, "Departure Date")
	assert.Contains(t, out, "Number of Passengers")
	assert.Contains(t, out, "Search Flights")
	assert.NotContains(t, out, "Return Date", "hidden for one-way")
	assert.NotContains(t, out, "Available Flights")
}

func TestRenderRoundtripShowsReturnDate(t *testing.T) {
	vs := baseState()
	vs.Criteria.IsRoundtrip = true
	assert.Contains(t, NewRenderer().Render(vs), "Return Date")
}

func TestRenderSubmitting(t *testing.T) {
	vs := baseState()
	vs.Booking = booking.Submitting{}
	vs.Spinner = "*"

	out := NewRenderer().Render(vs)
	assert.Contains(t, out, "Searching...")
	assert.NotContains(t, out, "Search Flights")
}

func TestRenderError(t *testing.T) {
	vs := baseState()
	vs.Booking = booking.Failed{Message: booking.SearchFailedMessage}

	out := NewRenderer().Render(vs)
	assert.Contains(t, out, "An error occurred while searching")
	assert.NotContains(t, out, "Available Flights")
}

func TestRenderEmptyResults(t *testing.T) {
	vs := baseState()
	vs.Booking = booking.Success{Results: []domain.FlightOption{}}

	out := NewRenderer().Render(vs)
	assert.Contains(t, out, "Available Flights")
	assert.Contains(t, out, "No flights found.")
}

func TestRenderResultsAndSummary(t *testing.T) {
	vs := baseState()
	vs.FormMode = false
	vs.Booking = booking.Success{
		Results:    []domain.FlightOption{airX, {ID: "f2", Airline: "SkyLine", Price: 1250.5, Duration: "2h 30m"}},
		SelectedID: "f1",
	}
	vs.Summary = booking.Summary{SelectedFlight: &airX, Passengers: 2, TotalPrice: 600}

	out := NewRenderer().Render(vs)
	assert.Contains(t, out, "AirX")
	assert.Contains(t, out, "$300")
	assert.Contains(t, out, "$1,250.50")
	assert.Contains(t, out, "[Selected]")
	assert.Contains(t, out, "[Select]")
	assert.Contains(t, out, "> AirX")
	assert.Contains(t, out, "Booking Summary")
	assert.Contains(t, out, "Passengers: 2")
	assert.Contains(t, out, "$600")
}

func TestRenderStatusAndFooter(t *testing.T) {
	vs := baseState()
	vs.StatusMessage = "Selected AirX (5h)"
	vs.HelpFooter = "ctrl+s search"

	out := NewRenderer().Render(vs)
	assert.Contains(t, out, "Selected AirX (5h)")
	assert.Contains(t, out, "ctrl+s search")
}

func TestRenderHelpPopup(t *testing.T) {
	vs := baseState()
	vs.ShowHelp = true
	vs.HelpContent = "Flight Booking Help"

	out := NewRenderer().Render(vs)
	assert.Contains(t, out, "Flight Booking Help")
	assert.GreaterOrEqual(t, len(strings.Split(out, "\n")), vs.Height)
}

func TestDesaturateStripsColors(t *testing.T) {
	out := desaturateANSI("\x1b[31mred\x1b[0m")
	assert.Contains(t, out, "red")
	assert.NotContains(t, out, "\x1b[31m")
}
