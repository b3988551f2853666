package router

import (
	"github.com/labstack/echo/v4"

	"github.com/filmrental/reports-api/internal/handler"
)

// RegisterActors registers the actor listing endpoint.  The frontend
// loads the actor table from the root path, so that mapping is kept.
func RegisterActors(e *echo.Echo, h *handler.ActorHandler) {
	e.GET("/", h.ListActors)
}

// RegisterCustomers registers the customer surface: listing, CRUD,
// keyword search with grouped rental history and the flat per-customer
// rental history.
func RegisterCustomers(e *echo.Echo, h *handler.CustomerHandler) {
	e.GET("/customers", h.ListCustomers)
	e.POST("/customers", h.CreateCustomer)
	e.PUT("/customers/:id", h.UpdateCustomer)
	e.DELETE("/customers/:id", h.DeleteCustomer)

	// Search customers by id or name fragment, grouped with rental history
	e.GET("/search/customers", h.SearchCustomers)
	// Flat, date-ordered rental history for one customer
	e.GET("/rental_info", h.RentalInfo)
}

// RegisterRentals registers the rental lifecycle endpoints.
func RegisterRentals(e *echo.Echo, h *handler.RentalHandler) {
	e.POST("/rentals", h.OpenRental)
	e.POST("/rentals/:id/return", h.ReturnRental)
}
