// Package repository contains data access logic for actor listing. Actors
// are read-only in this service; they are created and maintained by the
// store itself.
package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction

	"github.com/filmrental/reports-api/internal/model"
)

// ActorRepo manages read access to actors.
type ActorRepo struct {
	db *sql.DB
}

// NewActorRepo constructs an ActorRepo with the given DB handle.
func NewActorRepo(db *sql.DB) *ActorRepo {
	return &ActorRepo{db: db}
}

// ListAll returns every actor ordered by id. Timestamps are formatted by
// the database so all endpoints share one canonical datetime format.
func (r *ActorRepo) ListAll(ctx context.Context) ([]model.Actor, error) {
	const q = `SELECT actor_id, first_name, last_name,
			DATE_FORMAT(last_update, '%Y-%m-%d %T') AS last_update
		FROM actor
		ORDER BY actor_id ASC`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Actor, 0, 64)
	for rows.Next() {
		var a model.Actor
		if err := rows.Scan(&a.ActorID, &a.FirstName, &a.LastName, &a.LastUpdate); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
