// Package handler exposes HTTP handlers for the reporting and CRUD
// endpoints. This file covers the rental lifecycle: opening a checkout
// and returning it. Both operations publish a best-effort event to the
// broker after the row has committed; publish failures are logged by the
// publisher and never fail the request.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/filmrental/reports-api/internal/queue"
	"github.com/filmrental/reports-api/internal/repository"
	queue_publisher "github.com/filmrental/reports-api/internal/service"
)

// RentalHandler aggregates the repositories needed by the rental routes.
type RentalHandler struct {
	Rentals   *repository.RentalRepo    // rental insert/update
	Inventory *repository.InventoryRepo // unit existence and checkout state
	Customers *repository.CustomerRepo  // customer existence
}

// OpenRental handles POST /rentals. It validates that the inventory unit
// and customer exist and that the unit is not already checked out, then
// inserts the rental and publishes a RentalOpened event.
func (h *RentalHandler) OpenRental(c echo.Context) error {
	ctx := c.Request().Context()
	var body struct {
		InventoryID uint64 `json:"inventory_id"`
		CustomerID  uint64 `json:"customer_id"`
		StaffID     uint64 `json:"staff_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.InventoryID == 0 || body.CustomerID == 0 || body.StaffID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "inventory_id, customer_id and staff_id are required"})
	}
	if _, err := h.Inventory.GetByID(ctx, body.InventoryID); err != nil {
		if err == repository.ErrInventoryNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "inventory not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if _, err := h.Customers.GetByID(ctx, body.CustomerID); err != nil {
		if err == repository.ErrCustomerNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	open, err := h.Inventory.HasOpenRental(ctx, body.InventoryID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if open {
		return c.JSON(http.StatusConflict, echo.Map{"error": "inventory checked out"})
	}

	opened, err := h.Rentals.Open(ctx, body.InventoryID, body.CustomerID, body.StaffID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not open rental"})
	}

	// Best-effort event; the rental row has already committed.
	_ = queue_publisher.PublishRentalOpened(ctx, queue.RentalOpenedEvent{
		RentalID:     opened.RentalID,
		InventoryID:  opened.InventoryID,
		FilmID:       opened.FilmID,
		FilmTitle:    opened.FilmTitle,
		CustomerID:   opened.CustomerID,
		CustomerName: opened.CustomerName,
		StaffID:      opened.StaffID,
		RentalDate:   opened.RentalDate,
	})

	return c.JSON(http.StatusCreated, opened)
}

// ReturnRental handles POST /rentals/:id/return. Returning an already
// closed rental answers 409.
func (h *RentalHandler) ReturnRental(c echo.Context) error {
	ctx := c.Request().Context()
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	rental, err := h.Rentals.Return(ctx, id)
	if err != nil {
		switch err {
		case repository.ErrRentalNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "rental not found"})
		case repository.ErrRentalAlreadyReturned:
			return c.JSON(http.StatusConflict, echo.Map{"error": "rental already returned"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not return rental"})
	}

	returnDate := ""
	if rental.ReturnDate != nil {
		returnDate = *rental.ReturnDate
	}
	_ = queue_publisher.PublishRentalClosed(ctx, queue.RentalClosedEvent{
		RentalID:    rental.RentalID,
		InventoryID: rental.InventoryID,
		CustomerID:  rental.CustomerID,
		ReturnDate:  returnDate,
	})

	return c.JSON(http.StatusOK, rental)
}
