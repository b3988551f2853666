// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrCustomerNotFound lets a handler answer 404 instead of a
// generic database error, while ErrCustomerHasRentals signals that a
// delete cannot proceed because dependent rental rows still exist.
package repository

import "errors"

// ErrCustomerNotFound is returned when a customer id matches no row.
// Handlers should translate this into an HTTP 404 response.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrCustomerHasRentals is returned when a customer delete cannot be
// performed because rental rows still reference the customer. Handlers
// should translate this into an HTTP 409 response.
var ErrCustomerHasRentals = errors.New("customer has rentals")

// ErrRentalNotFound is returned when a rental id matches no row.
var ErrRentalNotFound = errors.New("rental not found")

// ErrRentalAlreadyReturned is returned when a return is attempted on a
// rental whose return_date is already set. Handlers should translate
// this into an HTTP 409 response.
var ErrRentalAlreadyReturned = errors.New("rental already returned")

// ErrInventoryNotFound is returned when an inventory id matches no row.
var ErrInventoryNotFound = errors.New("inventory not found")
