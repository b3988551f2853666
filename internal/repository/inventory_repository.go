// Package repository contains data access logic for inventory lookups.
// Inventory rows are read-only here; they exist so the rental endpoints
// can validate a unit before opening a checkout.
package repository

import (
	"context"
	"database/sql"

	"github.com/filmrental/reports-api/internal/model"
)

// InventoryRepo manages read access to inventory units.
type InventoryRepo struct {
	db *sql.DB
}

// NewInventoryRepo constructs an InventoryRepo with the given DB handle.
func NewInventoryRepo(db *sql.DB) *InventoryRepo {
	return &InventoryRepo{db: db}
}

// GetByID retrieves one inventory unit. It returns ErrInventoryNotFound
// if there is no matching row.
func (r *InventoryRepo) GetByID(ctx context.Context, id uint64) (*model.Inventory, error) {
	const q = `SELECT inventory_id, film_id, store_id FROM inventory WHERE inventory_id = ?`
	var inv model.Inventory
	err := r.db.QueryRowContext(ctx, q, id).Scan(&inv.InventoryID, &inv.FilmID, &inv.StoreID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrInventoryNotFound
		}
		return nil, err
	}
	return &inv, nil
}

// HasOpenRental reports whether the unit is currently checked out, i.e.
// a rental row with a NULL return_date references it.
func (r *InventoryRepo) HasOpenRental(ctx context.Context, id uint64) (bool, error) {
	const q = `SELECT EXISTS(
			SELECT 1 FROM rental WHERE inventory_id = ? AND return_date IS NULL)`
	var open bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&open); err != nil {
		return false, err
	}
	return open, nil
}
