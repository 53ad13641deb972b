package repository

import (
	"context"
	"database/sql"

	"github.com/campspot-dev/campspot/internal/model"
)

// LocationRepo provides access to the Location table.  Locations are
// reference data created ahead of the spots that point at them.
type LocationRepo struct{ db *sql.DB }

// NewLocationRepo returns a LocationRepo bound to the given database handle.
func NewLocationRepo(db *sql.DB) *LocationRepo { return &LocationRepo{db: db} }

// NewLocation carries the caller-supplied fields of a location insert.
// Coordinates is an opaque string stored verbatim.
type NewLocation struct {
	CityVillage string
	Coordinates string
	Country     string
}

// ListAll returns every location.
func (r *LocationRepo) ListAll(ctx context.Context) ([]model.Location, error) {
	const q = `SELECT LocationId, CityVillage, Coordinates, Country FROM Location`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Location, 0)
	for rows.Next() {
		var l model.Location
		if err := rows.Scan(&l.LocationId, &l.CityVillage, &l.Coordinates, &l.Country); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Create inserts a new location.
func (r *LocationRepo) Create(ctx context.Context, l NewLocation) error {
	const q = `INSERT INTO Location (CityVillage, Coordinates, Country) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, l.CityVillage, l.Coordinates, l.Country)
	return err
}
