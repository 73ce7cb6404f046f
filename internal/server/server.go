// Package server is the flight search HTTP API used by the http provider
package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"flightbook/internal/search"
)

// New builds the API with its middleware and routes
func New(s search.Searcher, c Cache) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	Routes(e, NewSearchHandler(s, c))
	return e
}

// Routes registers the API endpoints on e
func Routes(e *echo.Echo, h *SearchHandler) {
	e.POST(search.SearchPath, h.Search)
	e.GET("/health", HealthHandler)
}
