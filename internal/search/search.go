// Package search provides the flight search providers the booking form
// submits to. A provider is an opaque, possibly slow and possibly failing
// function from a query to an ordered list of flight options.
package search

import (
	"context"

	"flightbook/internal/domain"
)

// Searcher resolves a query to flight options in display order
type Searcher interface {
	Search(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, error)
}

// Func adapts a plain function to the Searcher interface
type Func func(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, error)

// Search calls f
func (f Func) Search(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, error) {
	return f(ctx, q)
}
