package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/filmrental/reports-api/internal/repository"
)

// ActorHandler serves the actor listing endpoint.
type ActorHandler struct {
	Actors *repository.ActorRepo // provides read access to actors
}

// ListActors handles GET / and returns every actor. The response wraps
// the array in an "actors" object for backwards compatibility with the
// existing frontend.
func (h *ActorHandler) ListActors(c echo.Context) error {
	actors, err := h.Actors.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"actors": actors})
}
