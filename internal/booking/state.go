package booking

import "flightbook/internal/domain"

// SearchFailedMessage is shown for every failed search, whatever the cause
const SearchFailedMessage = "An error occurred while searching for flights. Please try again."

// Status names the stage of the search lifecycle
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusError      Status = "error"
	StatusSuccess    Status = "success"
)

// State is the search lifecycle. Exactly one of Idle, Submitting, Failed
// or Success; results and a selection only ever exist inside Success.
type State interface {
	Status() Status
	isState()
}

// Idle means no search has been attempted yet
type Idle struct{}

// Submitting means a search is in flight
type Submitting struct{}

// Failed means the most recent search failed
type Failed struct {
	Message string
}

// Success carries the results of the most recent search.
// SelectedID is empty when nothing is selected; otherwise it is the ID
// of one of Results.
type Success struct {
	Results    []domain.FlightOption
	SelectedID string
}

func (Idle) Status() Status       { return StatusIdle }
func (Submitting) Status() Status { return StatusSubmitting }
func (Failed) Status() Status     { return StatusError }
func (Success) Status() Status    { return StatusSuccess }

func (Idle) isState()       {}
func (Submitting) isState() {}
func (Failed) isState()     {}
func (Success) isState()    {}

// Selected returns the selected flight, if any
func (s Success) Selected() (domain.FlightOption, bool) {
	if s.SelectedID == "" {
		return domain.FlightOption{}, false
	}
	return s.find(s.SelectedID)
}

// Has reports whether id is one of the results
func (s Success) Has(id string) bool {
	_, ok := s.find(id)
	return ok
}

func (s Success) find(id string) (domain.FlightOption, bool) {
	for _, f := range s.Results {
		if f.ID == id {
			return f, true
		}
	}
	return domain.FlightOption{}, false
}

func (s Success) clone() Success {
	return Success{
		Results:    cloneOptions(s.Results),
		SelectedID: s.SelectedID,
	}
}

func cloneOptions(in []domain.FlightOption) []domain.FlightOption {
	out := make([]domain.FlightOption, len(in))
	copy(out, in)
	return out
}
