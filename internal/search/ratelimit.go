package search

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"flightbook/internal/domain"
)

// RateLimited throttles calls to the wrapped searcher
type RateLimited struct {
	next    Searcher
	limiter *rate.Limiter
}

// NewRateLimited allows rps searches per second with the given burst.
// A non-positive rps disables throttling.
func NewRateLimited(next Searcher, rps float64, burst int) *RateLimited {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(limit, burst),
	}
}

// Search waits for a token, then delegates
func (r *RateLimited) Search(ctx context.Context, q domain.SearchQuery) ([]domain.FlightOption, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	return r.next.Search(ctx, q)
}
