// Package repository contains data access logic for the rental schema. This
// file holds the reporting queries: multi-table joins with grouping,
// ranking and nested aggregation. All queries here are read-only; they
// acquire a pooled connection per call and release it when the rows are
// drained. Equal counts are broken by ascending entity id so repeated runs
// against unchanged data return identical orderings.
package repository

import (
	"context"
	"database/sql"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/filmrental/reports-api/internal/model"
)

// ReportRepo executes the aggregate reporting queries.
type ReportRepo struct {
	db *sql.DB
}

// NewReportRepo constructs a ReportRepo with the given DB handle.
func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

// TopFilm is a film annotated with its total rental count.
type TopFilm struct {
	model.Film
	RentalCount uint64 `json:"rental_count"`
}

// ActorFilm is one entry in an actor's personal rental ranking.
type ActorFilm struct {
	FilmID      uint64 `json:"film_id"`
	Title       string `json:"title"`
	RentalCount uint64 `json:"rental_count"`
}

// TopActor is an actor ranked by number of credited films, carrying the
// actor's own top rented films.
type TopActor struct {
	ActorID   uint64      `json:"actor_id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	FilmCount uint64      `json:"film_count"`
	TopMovies []ActorFilm `json:"top_movies"`
}

// RentalHistoryEntry is one rented film with its checkout and return
// timestamps. ReturnDate is nil while the rental is still outstanding.
type RentalHistoryEntry struct {
	FilmID     uint64  `json:"film_id"`
	Title      string  `json:"title"`
	RentalDate string  `json:"rental_date"`
	ReturnDate *string `json:"return_date"`
}

// CustomerWithHistory is one matched customer carrying their full rental
// history ordered by rental date ascending.
type CustomerWithHistory struct {
	CustomerID    uint64               `json:"customer_id"`
	FirstName     string               `json:"first_name"`
	LastName      string               `json:"last_name"`
	Email         *string              `json:"email"`
	RentalHistory []RentalHistoryEntry `json:"rental_history"`
}

// RentalInfoRow is one flat rental row with the customer fields repeated,
// as served by the single-customer history endpoint.
type RentalInfoRow struct {
	CustomerID uint64  `json:"customer_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	FilmID     uint64  `json:"film_id"`
	Title      string  `json:"title"`
	RentalDate string  `json:"rental_date"`
	ReturnDate *string `json:"return_date"`
}

// AvailableItem is one inventory unit currently offered for rent.
type AvailableItem struct {
	FilmID      uint64  `json:"film_id"`
	Title       string  `json:"title"`
	InventoryID uint64  `json:"inventory_id"`
	RentalRate  float64 `json:"rental_rate"`
}

// TopRentedFilms returns the five most rented films. Films with zero
// rentals never appear because the rental join is inner.
func (r *ReportRepo) TopRentedFilms(ctx context.Context) ([]TopFilm, error) {
	// Every selected film attribute is repeated in the GROUP BY so the
	// grouping stays valid under ONLY_FULL_GROUP_BY.
	const q = `SELECT
			f.film_id, f.title, f.description, f.release_year, f.language_id,
			f.rental_duration, f.rental_rate, f.length, f.rating, f.special_features,
			COUNT(r.rental_id) AS rental_count
		FROM film f
		JOIN inventory i ON i.film_id = f.film_id
		JOIN rental r    ON r.inventory_id = i.inventory_id
		GROUP BY f.film_id, f.title, f.description, f.release_year, f.language_id,
			f.rental_duration, f.rental_rate, f.length, f.rating, f.special_features
		ORDER BY rental_count DESC, f.film_id ASC
		LIMIT 5`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TopFilm, 0, 5)
	for rows.Next() {
		var t TopFilm
		if err := rows.Scan(
			&t.FilmID,
			&t.Title,
			&t.Description,
			&t.ReleaseYear,
			&t.LanguageID,
			&t.RentalDuration,
			&t.RentalRate,
			&t.Length,
			&t.Rating,
			&t.SpecialFeatures,
			&t.RentalCount,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// TopActors returns the five actors with the most film credits, each with
// their own five most rented films. The per-actor film queries are
// independent, so they fan out concurrently on separate pooled
// connections; results are written back by actor position, never by
// completion order.
func (r *ReportRepo) TopActors(ctx context.Context) ([]TopActor, error) {
	const q = `SELECT a.actor_id, a.first_name, a.last_name,
			COUNT(fa.film_id) AS film_count
		FROM actor a
		JOIN film_actor fa ON fa.actor_id = a.actor_id
		GROUP BY a.actor_id, a.first_name, a.last_name
		ORDER BY film_count DESC, a.actor_id ASC
		LIMIT 5`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]TopActor, 0, 5)
	for rows.Next() {
		var a TopActor
		if err := rows.Scan(&a.ActorID, &a.FirstName, &a.LastName, &a.FilmCount); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for idx := range out {
		idx := idx
		g.Go(func() error {
			films, err := r.topFilmsByActor(gctx, out[idx].ActorID)
			if err != nil {
				return err
			}
			out[idx].TopMovies = films
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// topFilmsByActor ranks one actor's credited films by rental count. It is
// deterministic for a given actor_id against unchanged data.
func (r *ReportRepo) topFilmsByActor(ctx context.Context, actorID uint64) ([]ActorFilm, error) {
	const q = `SELECT f.film_id, f.title, COUNT(r.rental_id) AS rental_count
		FROM film f
		JOIN film_actor fa ON fa.film_id = f.film_id
		JOIN inventory i   ON i.film_id = f.film_id
		JOIN rental r      ON r.inventory_id = i.inventory_id
		WHERE fa.actor_id = ?
		GROUP BY f.film_id, f.title
		ORDER BY rental_count DESC, f.film_id ASC
		LIMIT 5`

	rows, err := r.db.QueryContext(ctx, q, actorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ActorFilm, 0, 5)
	for rows.Next() {
		var f ActorFilm
		if err := rows.Scan(&f.FilmID, &f.Title, &f.RentalCount); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchFilms returns films whose title, any credited actor's full name or
// any category name contains the keyword, case-insensitively. DISTINCT
// de-duplicates films that match through several actor/category join rows.
func (r *ReportRepo) SearchFilms(ctx context.Context, keyword string) ([]model.Film, error) {
	const q = `SELECT DISTINCT
			f.film_id, f.title, f.description, f.release_year, f.language_id,
			f.rental_duration, f.rental_rate, f.length, f.rating, f.special_features
		FROM film f
		JOIN film_actor fa    ON fa.film_id = f.film_id
		JOIN actor a          ON a.actor_id = fa.actor_id
		JOIN film_category fc ON fc.film_id = f.film_id
		JOIN category c       ON c.category_id = fc.category_id
		WHERE LOWER(f.title) LIKE ?
		   OR LOWER(CONCAT(a.first_name, ' ', a.last_name)) LIKE ?
		   OR LOWER(c.name) LIKE ?
		ORDER BY f.film_id ASC`

	pat := "%" + strings.ToLower(keyword) + "%"
	rows, err := r.db.QueryContext(ctx, q, pat, pat, pat)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Film, 0, 16)
	for rows.Next() {
		var f model.Film
		if err := rows.Scan(
			&f.FilmID,
			&f.Title,
			&f.Description,
			&f.ReleaseYear,
			&f.LanguageID,
			&f.RentalDuration,
			&f.RentalRate,
			&f.Length,
			&f.Rating,
			&f.SpecialFeatures,
		); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// customerRentalRow is the flat shape produced by the customer search join
// before grouping.
type customerRentalRow struct {
	CustomerID uint64
	FirstName  string
	LastName   string
	Email      *string
	FilmID     uint64
	Title      string
	RentalDate string
	ReturnDate *string
}

// SearchCustomersWithRentals matches customers by id or name fragment and
// returns each matched customer once with their full rental history. The
// joined rows are grouped by an explicit map keyed on customer id, so the
// result is correct regardless of the order the store delivers rows in.
func (r *ReportRepo) SearchCustomersWithRentals(ctx context.Context, keyword string) ([]CustomerWithHistory, error) {
	const q = `SELECT c.customer_id, c.first_name, c.last_name, c.email,
			f.film_id, f.title,
			DATE_FORMAT(r.rental_date, '%Y-%m-%d %T') AS rental_date,
			DATE_FORMAT(r.return_date, '%Y-%m-%d %T') AS return_date
		FROM customer c
		JOIN rental r    ON r.customer_id = c.customer_id
		JOIN inventory i ON i.inventory_id = r.inventory_id
		JOIN film f      ON f.film_id = i.film_id
		WHERE c.customer_id = ?
		   OR LOWER(c.first_name) LIKE ?
		   OR LOWER(c.last_name) LIKE ?
		ORDER BY c.customer_id ASC, r.rental_date ASC`

	// A non-numeric keyword can never equal a customer id; 0 matches no row.
	id := parseID(keyword)
	pat := "%" + strings.ToLower(keyword) + "%"

	rows, err := r.db.QueryContext(ctx, q, id, pat, pat)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flat := make([]customerRentalRow, 0, 32)
	for rows.Next() {
		var row customerRentalRow
		if err := rows.Scan(
			&row.CustomerID,
			&row.FirstName,
			&row.LastName,
			&row.Email,
			&row.FilmID,
			&row.Title,
			&row.RentalDate,
			&row.ReturnDate,
		); err != nil {
			return nil, err
		}
		flat = append(flat, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groupCustomerRows(flat), nil
}

// RentalHistoryByCustomer returns the flat, date-ordered rental history of
// one customer. When the customer has no rentals it distinguishes an
// unknown customer (ErrCustomerNotFound) from a known customer with an
// empty history.
func (r *ReportRepo) RentalHistoryByCustomer(ctx context.Context, customerID uint64) ([]RentalInfoRow, error) {
	const q = `SELECT c.customer_id, c.first_name, c.last_name,
			f.film_id, f.title,
			DATE_FORMAT(r.rental_date, '%Y-%m-%d %T') AS rental_date,
			DATE_FORMAT(r.return_date, '%Y-%m-%d %T') AS return_date
		FROM customer c
		JOIN rental r    ON r.customer_id = c.customer_id
		JOIN inventory i ON i.inventory_id = r.inventory_id
		JOIN film f      ON f.film_id = i.film_id
		WHERE c.customer_id = ?
		ORDER BY r.rental_date ASC`

	rows, err := r.db.QueryContext(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RentalInfoRow, 0, 16)
	for rows.Next() {
		var row RentalInfoRow
		if err := rows.Scan(
			&row.CustomerID,
			&row.FirstName,
			&row.LastName,
			&row.FilmID,
			&row.Title,
			&row.RentalDate,
			&row.ReturnDate,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) > 0 {
		return out, nil
	}

	// No rentals: check whether the customer exists at all.
	const exists = `SELECT 1 FROM customer WHERE customer_id = ?`
	var one int
	if err := r.db.QueryRowContext(ctx, exists, customerID).Scan(&one); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return out, nil
}

// AvailableInventory lists inventory units currently offered for rent. The
// availability test runs against each unit's single most recent rental
// row: a unit is available when it has never been rented, or when that
// row's return_date is NULL or still in the future.
func (r *ReportRepo) AvailableInventory(ctx context.Context) ([]AvailableItem, error) {
	const q = `SELECT f.film_id, f.title, i.inventory_id, f.rental_rate
		FROM inventory i
		JOIN film f ON f.film_id = i.film_id
		LEFT JOIN rental r ON r.rental_id = (
			SELECT r2.rental_id FROM rental r2
			WHERE r2.inventory_id = i.inventory_id
			ORDER BY r2.rental_date DESC, r2.rental_id DESC
			LIMIT 1)
		WHERE r.rental_id IS NULL
		   OR r.return_date IS NULL
		   OR r.return_date > NOW()
		ORDER BY i.inventory_id ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AvailableItem, 0, 64)
	for rows.Next() {
		var it AvailableItem
		if err := rows.Scan(&it.FilmID, &it.Title, &it.InventoryID, &it.RentalRate); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
