// Package repository contains data access logic for rental checkout and
// return. Rentals are the only rows this service writes besides
// customers; each write is a single-row insert or update with its own
// implicit commit.
package repository

import (
	"context"
	"database/sql"

	"github.com/filmrental/reports-api/internal/model"
)

// RentalRepo manages persistence for rentals.
type RentalRepo struct {
	db *sql.DB
}

// NewRentalRepo constructs a RentalRepo with the given DB handle.
func NewRentalRepo(db *sql.DB) *RentalRepo {
	return &RentalRepo{db: db}
}

// OpenedRental is a freshly created rental joined with the film and
// customer display fields that the published event carries.
type OpenedRental struct {
	model.Rental
	FilmID       uint64 `json:"film_id"`
	FilmTitle    string `json:"film_title"`
	CustomerName string `json:"customer_name"`
}

// rentalColumns formats both rental timestamps in SQL; return_date stays
// NULL (and scans to nil) while the rental is open.
const rentalColumns = `r.rental_id,
	DATE_FORMAT(r.rental_date, '%Y-%m-%d %T') AS rental_date,
	r.inventory_id, r.customer_id,
	DATE_FORMAT(r.return_date, '%Y-%m-%d %T') AS return_date,
	r.staff_id`

// Open inserts a new rental with rental_date = NOW() and re-reads the row
// joined with film and customer so the caller can publish a complete
// event without further queries.
func (r *RentalRepo) Open(ctx context.Context, inventoryID, customerID, staffID uint64) (*OpenedRental, error) {
	const q = `INSERT INTO rental (rental_date, inventory_id, customer_id, staff_id)
		VALUES (NOW(), ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, inventoryID, customerID, staffID)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	const sel = `SELECT ` + rentalColumns + `,
			f.film_id, f.title,
			CONCAT(c.first_name, ' ', c.last_name) AS customer_name
		FROM rental r
		JOIN inventory i ON i.inventory_id = r.inventory_id
		JOIN film f      ON f.film_id = i.film_id
		JOIN customer c  ON c.customer_id = r.customer_id
		WHERE r.rental_id = ?`
	var out OpenedRental
	err = r.db.QueryRowContext(ctx, sel, uint64(id)).Scan(
		&out.RentalID,
		&out.RentalDate,
		&out.InventoryID,
		&out.CustomerID,
		&out.ReturnDate,
		&out.StaffID,
		&out.FilmID,
		&out.FilmTitle,
		&out.CustomerName,
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Return closes a rental by setting return_date = NOW(). It returns
// ErrRentalNotFound for an unknown id and ErrRentalAlreadyReturned when
// the rental is already closed; the guard lives in the UPDATE predicate
// so two concurrent returns cannot both succeed.
func (r *RentalRepo) Return(ctx context.Context, rentalID uint64) (*model.Rental, error) {
	const q = `UPDATE rental SET return_date = NOW()
		WHERE rental_id = ? AND return_date IS NULL`
	res, err := r.db.ExecContext(ctx, q, rentalID)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Either the rental does not exist or it was already returned.
		rental, err := r.GetByID(ctx, rentalID)
		if err != nil {
			return nil, err
		}
		if rental.ReturnDate != nil {
			return nil, ErrRentalAlreadyReturned
		}
		return nil, ErrRentalNotFound
	}
	return r.GetByID(ctx, rentalID)
}

// GetByID retrieves a rental by id. It returns ErrRentalNotFound if
// there is no matching row.
func (r *RentalRepo) GetByID(ctx context.Context, rentalID uint64) (*model.Rental, error) {
	const q = `SELECT ` + rentalColumns + ` FROM rental r WHERE r.rental_id = ?`
	var out model.Rental
	err := r.db.QueryRowContext(ctx, q, rentalID).Scan(
		&out.RentalID,
		&out.RentalDate,
		&out.InventoryID,
		&out.CustomerID,
		&out.ReturnDate,
		&out.StaffID,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrRentalNotFound
		}
		return nil, err
	}
	return &out, nil
}
