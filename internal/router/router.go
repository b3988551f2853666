package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/filmrental/reports-api/internal/handler" // import the handlers that implement endpoint logic
)

// RegisterRoutes registers the routes that need no repository wiring on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterReports registers the read-only reporting endpoints.  These
// paths mirror the ones the existing frontend consumes, so they live at
// the root rather than under a versioned prefix.
func RegisterReports(e *echo.Echo, h *handler.ReportHandler) {
	// Five most rented films with rental counts
	e.GET("/top_movies", h.TopMovies)
	// Five most credited actors, each with their own top rented films
	e.GET("/top_actors", h.TopActors)
	// Keyword search across film titles, actor names and categories
	e.GET("/search", h.SearchFilms)
	// Inventory units currently offered for rent
	e.GET("/available-rent", h.AvailableInventory)
}
