package handlers

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"flightbook/internal/eventbus"
	"flightbook/internal/ui/state"
)

// StaleResultMessage is shown when a superseded search came back
const StaleResultMessage = "Ignored the result of an outdated search"

// EventHandler handles domain events forwarded from the bus and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{
		state: appState,
	}
}

// HandleEvent processes domain events and returns any necessary commands.
// The booking lifecycle itself is driven by search results, never by events.
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SearchDiscardedEvent:
		log.Printf("UI: search #%d superseded by #%d", e.Seq, e.Latest)
		if h.state.StatusMessage == "" {
			h.state.StatusMessage = StaleResultMessage
		}

	case eventbus.FlightSelectedEvent:
		log.Printf("UI: flight %s selected", e.FlightID)
	}

	return nil
}
