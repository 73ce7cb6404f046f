package booking

import (
	"flightbook/internal/domain"
)

// Summary is the booking summary derived from the current state
type Summary struct {
	SelectedFlight *domain.FlightOption
	Passengers     int
	TotalPrice     float64 // 0 when nothing is selected
}

// HasSelection reports whether a flight is selected
func (s Summary) HasSelection() bool {
	return s.SelectedFlight != nil
}

// Select marks the flight with id as chosen. It only acts in the Success
// state and only for an id among the results; otherwise it does nothing
// and returns false. A new selection replaces the previous one.
func (e *Engine) Select(id string) bool {
	e.mu.Lock()
	s, ok := e.state.(Success)
	if !ok || id == "" || !s.Has(id) {
		e.mu.Unlock()
		return false
	}
	s.SelectedID = id
	e.state = s
	summary := summarize(e.state, e.criteria)
	e.mu.Unlock()

	e.publish(domain.FlightSelectedEvent{FlightID: id, TotalPrice: summary.TotalPrice})
	return true
}

// Summary computes the selected flight and total price. It has no side
// effects and may be called any number of times.
func (e *Engine) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return summarize(e.state, e.criteria)
}

func summarize(state State, c domain.SearchCriteria) Summary {
	sum := Summary{Passengers: c.PassengerCount}
	s, ok := state.(Success)
	if !ok {
		return sum
	}
	flight, ok := s.Selected()
	if !ok {
		return sum
	}
	sum.SelectedFlight = &flight
	sum.TotalPrice = flight.Price * float64(c.PassengerCount)
	return sum
}
