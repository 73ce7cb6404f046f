package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFieldChanged    EventType = "FieldChanged"
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchSucceeded EventType = "SearchSucceeded"
	EventSearchFailed    EventType = "SearchFailed"
	EventSearchDiscarded EventType = "SearchDiscarded"
	EventFlightSelected  EventType = "FlightSelected"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FieldChangedEvent is emitted after a form field was edited
type FieldChangedEvent struct {
	Field Field
}

func (e FieldChangedEvent) Type() EventType { return EventFieldChanged }

// SearchStartedEvent is emitted when a submission enters the submitting state
type SearchStartedEvent struct {
	Seq   uint64
	Query SearchQuery
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchSucceededEvent is emitted when the latest search returned results
type SearchSucceededEvent struct {
	Seq   uint64
	Count int
}

func (e SearchSucceededEvent) Type() EventType { return EventSearchSucceeded }

// SearchFailedEvent is emitted when the latest search failed.
// Err is the underlying cause, kept for logging only.
type SearchFailedEvent struct {
	Seq uint64
	Err error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchDiscardedEvent is emitted when a superseded search resolves
type SearchDiscardedEvent struct {
	Seq    uint64
	Latest uint64
}

func (e SearchDiscardedEvent) Type() EventType { return EventSearchDiscarded }

// FlightSelectedEvent is emitted when the user picks a flight
type FlightSelectedEvent struct {
	FlightID   string
	TotalPrice float64
}

func (e FlightSelectedEvent) Type() EventType { return EventFlightSelected }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
