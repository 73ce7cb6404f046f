package booking

import (
	"context"
	"log"
	"sync"

	"flightbook/internal/domain"
	"flightbook/internal/eventbus"
	"flightbook/internal/search"
)

// Engine owns the form criteria and the search lifecycle.
// All methods are safe for concurrent use; each transition is applied
// under one lock so readers never observe a half-applied update.
type Engine struct {
	mu       sync.Mutex
	criteria domain.SearchCriteria
	state    State
	issued   uint64 // highest sequence number handed out
	pending  uint64 // sequence number still allowed to resolve, 0 when none
	bus      eventbus.EventBus
}

// Ticket identifies one submission and carries its criteria snapshot
type Ticket struct {
	Seq      uint64
	Criteria domain.SearchCriteria
}

// Option configures an Engine
type Option func(*Engine)

// WithBus publishes lifecycle events to bus
func WithBus(bus eventbus.EventBus) Option {
	return func(e *Engine) { e.bus = bus }
}

// WithCriteria starts the form with the given criteria instead of the defaults
func WithCriteria(c domain.SearchCriteria) Option {
	return func(e *Engine) { e.criteria = c }
}

// NewEngine creates an engine in the Idle state with default criteria
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		criteria: domain.DefaultCriteria(),
		state:    Idle{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Criteria returns a copy of the current form values
func (e *Engine) Criteria() domain.SearchCriteria {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.criteria
}

// State returns the current lifecycle state. A Success value is a copy;
// changing its Results does not affect the engine.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() State {
	if s, ok := e.state.(Success); ok {
		return s.clone()
	}
	return e.state
}

// Begin starts a submission: the lifecycle moves to Submitting, dropping
// any results, error or selection, and the criteria are snapshotted.
// Only the returned ticket may resolve the search from now on.
func (e *Engine) Begin() Ticket {
	e.mu.Lock()
	e.issued++
	seq := e.issued
	if e.pending != 0 {
		log.Printf("Search %d superseded by search %d", e.pending, seq)
	}
	e.pending = seq
	e.state = Submitting{}
	t := Ticket{Seq: seq, Criteria: e.criteria}
	e.mu.Unlock()

	e.publish(domain.SearchStartedEvent{Seq: seq, Query: t.Criteria.Query()})
	return t
}

// Resolve applies the outcome of the search identified by seq. It returns
// false, leaving the state untouched, when seq has been superseded by a
// newer submission or was already resolved.
func (e *Engine) Resolve(seq uint64, results []domain.FlightOption, err error) bool {
	e.mu.Lock()
	if seq == 0 || seq != e.pending {
		latest := e.issued
		e.mu.Unlock()
		log.Printf("Discarding result of search %d (latest is %d)", seq, latest)
		e.publish(domain.SearchDiscardedEvent{Seq: seq, Latest: latest})
		return false
	}
	e.pending = 0

	var event domain.DomainEvent
	if err != nil {
		e.state = Failed{Message: SearchFailedMessage}
		event = domain.SearchFailedEvent{Seq: seq, Err: err}
	} else {
		e.state = Success{Results: cloneOptions(results)}
		event = domain.SearchSucceededEvent{Seq: seq, Count: len(results)}
	}
	e.mu.Unlock()

	if err != nil {
		log.Printf("Search %d failed: %v", seq, err)
	}
	e.publish(event)
	return true
}

// Submit runs one complete submission against searcher and reports whether
// its outcome was applied. The search call is the only blocking step; ctx
// is passed through to it untouched.
func (e *Engine) Submit(ctx context.Context, searcher search.Searcher) bool {
	t := e.Begin()
	results, err := searcher.Search(ctx, t.Criteria.Query())
	return e.Resolve(t.Seq, results, err)
}

// InFlight reports whether a search is awaiting resolution
func (e *Engine) InFlight() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending != 0
}

func (e *Engine) publish(event domain.DomainEvent) {
	if e.bus != nil {
		e.bus.Publish(event)
	}
}
