package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/singleflight"

	"flightbook/internal/domain"
	"flightbook/internal/search"
)

const dateLayout = "2006-01-02"

// SharedSearchTimeout bounds a provider call shared by concurrent requests.
// The call outlives any single request, so it cannot use a request context.
const SharedSearchTimeout = 30 * time.Second

// ValidationError is a client error reported with status 400
type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

const (
	ErrMissingDestination   ValidationError = "destination is required"
	ErrMissingDepartureDate ValidationError = "departure_date is required"
	ErrInvalidDate          ValidationError = "dates must use the YYYY-MM-DD format"
	ErrInvalidPassengers    ValidationError = "passengers must be between 1 and 9"
)

// Validate normalizes q and reports the first invalid field
func Validate(q *domain.SearchQuery) error {
	q.Destination = strings.TrimSpace(q.Destination)
	if q.Destination == "" {
		return ErrMissingDestination
	}
	if q.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	if _, err := time.Parse(dateLayout, q.DepartureDate); err != nil {
		return ErrInvalidDate
	}
	if q.ReturnDate != "" {
		if _, err := time.Parse(dateLayout, q.ReturnDate); err != nil {
			return ErrInvalidDate
		}
	}
	if q.Passengers < domain.MinPassengers || q.Passengers > domain.MaxPassengers {
		return ErrInvalidPassengers
	}
	return nil
}

// SearchHandler answers flight searches from a provider, collapsing
// identical in-flight searches and caching successful results
type SearchHandler struct {
	searcher search.Searcher
	cache    Cache
	group    singleflight.Group
}

// NewSearchHandler creates a handler answering from s. A nil cache
// disables caching.
func NewSearchHandler(s search.Searcher, c Cache) *SearchHandler {
	if c == nil {
		c = NewNoOpCache()
	}
	return &SearchHandler{
		searcher: s,
		cache:    c,
	}
}

// Search handles POST /api/v1/flights/search
func (h *SearchHandler) Search(c echo.Context) error {
	ctx := c.Request().Context()

	var q domain.SearchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, search.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body",
			Code:    http.StatusBadRequest,
		})
	}

	if err := Validate(&q); err != nil {
		return c.JSON(http.StatusBadRequest, search.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if cached, found := h.cache.Get(ctx, q); found {
		return c.JSON(http.StatusOK, search.Response{Flights: nonNil(cached), CacheHit: true})
	}

	key := cacheKey(q)
	ch := h.group.DoChan(key, func() (interface{}, error) {
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), SharedSearchTimeout)
		defer cancel()
		return h.searcher.Search(sctx, q)
	})

	var res singleflight.Result
	select {
	case res = <-ch:
	case <-ctx.Done():
		// Other callers keep waiting on the shared search
		log.Printf("Client left search for %q: %v", q.Destination, ctx.Err())
		return ctx.Err()
	}

	v, err, shared := res.Val, res.Err, res.Shared
	if err != nil {
		code := http.StatusBadGateway
		if errors.Is(err, search.ErrSimulatedFailure) {
			code = http.StatusServiceUnavailable
		}
		log.Printf("Search for %q failed: %v", q.Destination, err)
		return c.JSON(code, search.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search flights",
			Code:    code,
		})
	}
	if shared {
		log.Printf("Search for %q shared with a concurrent request", q.Destination)
	}

	flights := nonNil(v.([]domain.FlightOption))
	if err := h.cache.Set(ctx, q, flights); err != nil {
		log.Printf("Failed to cache search results: %v", err)
	}

	return c.JSON(http.StatusOK, search.Response{Flights: flights})
}

// HealthHandler reports that the API is up
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

func nonNil(flights []domain.FlightOption) []domain.FlightOption {
	if flights == nil {
		return []domain.FlightOption{}
	}
	return flights
}
