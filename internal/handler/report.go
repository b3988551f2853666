// Package handler exposes HTTP handlers for the reporting and CRUD
// endpoints. This file defines the reporting handlers: ranked film and
// actor views, keyword film search and the available inventory listing.
// They are read-only and hold no state between requests; every failure
// path answers a JSON body with an "error" field.
package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/filmrental/reports-api/internal/repository"
)

// ReportHandler aggregates the repository needed by the reporting routes.
type ReportHandler struct {
	Reports *repository.ReportRepo // executes the aggregate queries
}

// TopMovies handles GET /top_movies and returns the five most rented
// films with their rental counts, ordered by count descending.
func (h *ReportHandler) TopMovies(c echo.Context) error {
	films, err := h.Reports.TopRentedFilms(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, films)
}

// TopActors handles GET /top_actors and returns the five actors with the
// most film credits, each carrying their own top five rented films.
func (h *ReportHandler) TopActors(c echo.Context) error {
	actors, err := h.Reports.TopActors(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, actors)
}

// SearchFilms handles GET /search?keyword=... and returns films whose
// title, actor names or category match the keyword. A missing or blank
// keyword is rejected with 400 rather than matching everything.
func (h *ReportHandler) SearchFilms(c echo.Context) error {
	keyword := strings.TrimSpace(c.QueryParam("keyword"))
	if keyword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "keyword is required"})
	}
	films, err := h.Reports.SearchFilms(c.Request().Context(), keyword)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, films)
}

// AvailableInventory handles GET /available-rent and lists the inventory
// units currently offered for rent.
func (h *ReportHandler) AvailableInventory(c echo.Context) error {
	items, err := h.Reports.AvailableInventory(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, items)
}
