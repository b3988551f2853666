// Package handler exposes HTTP handlers for the reporting and CRUD
// endpoints. This file covers the customer surface: listing, create,
// update, delete, keyword search with grouped rental history, and the
// flat single-customer rental history.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/filmrental/reports-api/internal/model"
	"github.com/filmrental/reports-api/internal/repository"
)

// CustomerHandler aggregates the repositories needed by the customer routes.
type CustomerHandler struct {
	Customers *repository.CustomerRepo // single-row customer persistence
	Reports   *repository.ReportRepo   // customer search and rental history queries
}

// ListCustomers handles GET /customers and returns every customer wrapped
// in a "customers" object, matching the shape the frontend consumes.
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.Customers.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"customers": customers})
}

// CreateCustomer handles POST /customers and creates a new customer.
func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var body struct {
		StoreID   uint64  `json:"store_id"`
		AddressID uint64  `json:"address_id"`
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Email     *string `json:"email"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	first := strings.TrimSpace(body.FirstName)
	last := strings.TrimSpace(body.LastName)
	if first == "" || last == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name and last_name are required"})
	}
	if body.StoreID == 0 || body.AddressID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "store_id and address_id are required"})
	}
	cust := &model.Customer{
		StoreID:   body.StoreID,
		AddressID: body.AddressID,
		FirstName: first,
		LastName:  last,
		Email:     body.Email,
		Active:    true,
	}
	if err := h.Customers.Create(c.Request().Context(), cust); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create customer"})
	}
	return c.JSON(http.StatusCreated, cust)
}

// UpdateCustomer handles PUT /customers/:id and updates a customer's
// names, email and active flag.
func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Email     *string `json:"email"`
		Active    *bool   `json:"active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	first := strings.TrimSpace(body.FirstName)
	last := strings.TrimSpace(body.LastName)
	if first == "" || last == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name and last_name are required"})
	}
	active := true
	if body.Active != nil {
		active = *body.Active
	}
	updated, err := h.Customers.Update(c.Request().Context(), id, first, last, body.Email, active)
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteCustomer handles DELETE /customers/:id. Customers with rental
// history cannot be removed and answer 409.
func (h *CustomerHandler) DeleteCustomer(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Customers.Delete(c.Request().Context(), id); err != nil {
		switch err {
		case repository.ErrCustomerNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		case repository.ErrCustomerHasRentals:
			return c.JSON(http.StatusConflict, echo.Map{"error": "customer has rentals"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// SearchCustomers handles GET /search/customers?keyword=... and returns
// each matching customer once with their grouped rental history.
func (h *CustomerHandler) SearchCustomers(c echo.Context) error {
	keyword := strings.TrimSpace(c.QueryParam("keyword"))
	if keyword == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "keyword is required"})
	}
	customers, err := h.Reports.SearchCustomersWithRentals(c.Request().Context(), keyword)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, customers)
}

// RentalInfo handles GET /rental_info?customer_id=... and returns the
// customer's flat, date-ordered rental history. A missing parameter is a
// 400; an unknown customer is a 404; a known customer with no rentals
// gets an empty array.
func (h *CustomerHandler) RentalInfo(c echo.Context) error {
	raw := strings.TrimSpace(c.QueryParam("customer_id"))
	if raw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_id is required"})
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid customer_id"})
	}
	history, err := h.Reports.RentalHistoryByCustomer(c.Request().Context(), id)
	if err != nil {
		if err == repository.ErrCustomerNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "customer not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, history)
}
