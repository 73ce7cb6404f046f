package state

import (
	"flightbook/internal/domain"
)

// Focus identifies the form control that receives keyboard input
type Focus int

const (
	FocusRoundtrip Focus = iota
	FocusDestination
	FocusDepartureDate
	FocusReturnDate
	FocusPassengers
	FocusSubmit
)

// Field returns the criteria field edited by this control, if any
func (f Focus) Field() (domain.Field, bool) {
	switch f {
	case FocusRoundtrip:
		return domain.FieldIsRoundtrip, true
	case FocusDestination:
		return domain.FieldDestination, true
	case FocusDepartureDate:
		return domain.FieldDepartureDate, true
	case FocusReturnDate:
		return domain.FieldReturnDate, true
	case FocusPassengers:
		return domain.FieldPassengerCount, true
	}
	return "", false
}

// FocusOrder lists the focusable controls top to bottom. The return date
// is only reachable for roundtrip searches.
func FocusOrder(roundtrip bool) []Focus {
	order := []Focus{FocusRoundtrip, FocusDestination, FocusDepartureDate}
	if roundtrip {
		order = append(order, FocusReturnDate)
	}
	return append(order, FocusPassengers, FocusSubmit)
}

// AppState contains the UI state that is not owned by the booking engine
type AppState struct {
	// Form state
	Focus Focus

	// Results state
	ResultCursor int

	// UI state
	Width            int
	Height           int
	ShowHelp         bool
	HelpScrollOffset int
	StatusMessage    string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		Focus: FocusDestination,
	}
}

// FocusNext moves focus down, wrapping at the end
func (s *AppState) FocusNext(roundtrip bool) {
	s.moveFocus(roundtrip, 1)
}

// FocusPrev moves focus up, wrapping at the start
func (s *AppState) FocusPrev(roundtrip bool) {
	s.moveFocus(roundtrip, -1)
}

func (s *AppState) moveFocus(roundtrip bool, delta int) {
	order := FocusOrder(roundtrip)
	s.NormalizeFocus(roundtrip)
	for i, f := range order {
		if f == s.Focus {
			s.Focus = order[(i+delta+len(order))%len(order)]
			return
		}
	}
}

// NormalizeFocus moves focus off the return date once it is hidden
func (s *AppState) NormalizeFocus(roundtrip bool) {
	if !roundtrip && s.Focus == FocusReturnDate {
		s.Focus = FocusPassengers
	}
}

// MoveCursor moves the results cursor by delta, clamped to count items
func (s *AppState) MoveCursor(delta, count int) {
	s.ResultCursor += delta
	s.ClampCursor(count)
}

// ClampCursor keeps the results cursor within [0, count)
func (s *AppState) ClampCursor(count int) {
	if s.ResultCursor >= count {
		s.ResultCursor = count - 1
	}
	if s.ResultCursor < 0 {
		s.ResultCursor = 0
	}
}
