package domain

// Passenger bounds enforced by the input surface, not by the model
const (
	MinPassengers = 1
	MaxPassengers = 9
)

// SearchCriteria holds what the user entered in the search form
type SearchCriteria struct {
	Destination    string
	DepartureDate  string
	ReturnDate     string // kept even while IsRoundtrip is false
	PassengerCount int
	IsRoundtrip    bool
}

// DefaultCriteria returns the criteria a fresh form starts with
func DefaultCriteria() SearchCriteria {
	return SearchCriteria{
		PassengerCount: MinPassengers,
	}
}

// Query builds the snapshot handed to a search provider.
// The return date is only sent for roundtrip searches.
func (c SearchCriteria) Query() SearchQuery {
	q := SearchQuery{
		Destination:   c.Destination,
		DepartureDate: c.DepartureDate,
		Passengers:    c.PassengerCount,
	}
	if c.IsRoundtrip {
		q.ReturnDate = c.ReturnDate
	}
	return q
}

// SearchQuery is the criteria snapshot that crosses the search boundary
type SearchQuery struct {
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date,omitempty"`
	Passengers    int    `json:"passengers"`
}

// IsRoundtrip reports whether the query asks for a return leg
func (q SearchQuery) IsRoundtrip() bool {
	return q.ReturnDate != ""
}

// FlightOption is a single bookable flight returned by a search
type FlightOption struct {
	ID       string  `json:"id"`
	Airline  string  `json:"airline"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"` // display string, e.g. "5h 20m"
}
