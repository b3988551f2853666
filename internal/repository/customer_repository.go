// Package repository contains data access logic for customer CRUD. A
// Customer belongs to one store and one address; email is optional. All
// timestamp fields are stored in UTC and handed out pre-formatted as
// "YYYY-MM-DD HH:MM:SS" strings.
package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/filmrental/reports-api/internal/model"
)

// CustomerRepo manages persistence for customers.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo constructs a CustomerRepo with the given DB handle.
func NewCustomerRepo(db *sql.DB) *CustomerRepo {
	return &CustomerRepo{db: db}
}

// customerColumns is the shared select list; create_date and last_update
// are formatted in SQL so every response uses the same datetime shape.
const customerColumns = `customer_id, store_id, first_name, last_name, email, address_id, active,
	DATE_FORMAT(create_date, '%Y-%m-%d %T') AS create_date,
	DATE_FORMAT(last_update, '%Y-%m-%d %T') AS last_update`

// scanCustomer reads one customer row into a model struct.
func scanCustomer(row interface{ Scan(...any) error }, c *model.Customer) error {
	return row.Scan(
		&c.CustomerID,
		&c.StoreID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.AddressID,
		&c.Active,
		&c.CreateDate,
		&c.LastUpdate,
	)
}

// ListAll returns every customer ordered by id.
func (r *CustomerRepo) ListAll(ctx context.Context) ([]model.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customer ORDER BY customer_id ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Customer, 0, 64)
	for rows.Next() {
		var c model.Customer
		if err := scanCustomer(rows, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// GetByID retrieves a customer by id. It returns ErrCustomerNotFound if
// there is no matching row.
func (r *CustomerRepo) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customer WHERE customer_id = ?`
	var c model.Customer
	if err := scanCustomer(r.db.QueryRowContext(ctx, q, id), &c); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return &c, nil
}

// Create inserts a new customer and assigns the generated ID back to the
// struct. The caller must provide store_id, address_id and both names;
// email may be nil. Create_date is set by the database, and the inserted
// row is re-read so DB defaults land on the returned struct.
func (r *CustomerRepo) Create(ctx context.Context, c *model.Customer) error {
	const q = `INSERT INTO customer (store_id, first_name, last_name, email, address_id, active, create_date)
		VALUES (?, ?, ?, ?, ?, ?, NOW())`
	res, err := r.db.ExecContext(ctx, q, c.StoreID, c.FirstName, c.LastName, c.Email, c.AddressID, c.Active)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.CustomerID = uint64(id)
	const sel = `SELECT ` + customerColumns + ` FROM customer WHERE customer_id = ?`
	return scanCustomer(r.db.QueryRowContext(ctx, sel, c.CustomerID), c)
}

// Update changes a customer's names, email and active flag. It returns
// ErrCustomerNotFound when the id matches no row.
func (r *CustomerRepo) Update(ctx context.Context, id uint64, firstName, lastName string, email *string, active bool) (*model.Customer, error) {
	const q = `UPDATE customer SET first_name = ?, last_name = ?, email = ?, active = ? WHERE customer_id = ?`
	res, err := r.db.ExecContext(ctx, q, firstName, lastName, email, active, id)
	if err != nil {
		return nil, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// Zero rows affected can also mean a no-op update; confirm the
		// row exists before reporting not found.
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, id)
}

// Delete removes a customer. It refuses with ErrCustomerHasRentals while
// rental rows still reference the customer, and also maps the MySQL
// foreign key error (1451) to the same sentinel in case a dependent row
// appears between the check and the delete.
func (r *CustomerRepo) Delete(ctx context.Context, id uint64) error {
	const cnt = `SELECT COUNT(*) FROM rental WHERE customer_id = ?`
	var n int64
	if err := r.db.QueryRowContext(ctx, cnt, id).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return ErrCustomerHasRentals
	}
	const q = `DELETE FROM customer WHERE customer_id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		if strings.Contains(err.Error(), "1451") {
			return ErrCustomerHasRentals
		}
		return err
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}
