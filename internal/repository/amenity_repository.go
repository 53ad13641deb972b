package repository

import (
	"context"
	"database/sql"

	"github.com/campspot-dev/campspot/internal/model"
)

// AmenityRepo provides access to the Amenities table.
type AmenityRepo struct{ db *sql.DB }

// NewAmenityRepo returns an AmenityRepo bound to the given database handle.
func NewAmenityRepo(db *sql.DB) *AmenityRepo { return &AmenityRepo{db: db} }

// ListAll returns every amenity label.
func (r *AmenityRepo) ListAll(ctx context.Context) ([]model.Amenity, error) {
	const q = `SELECT AmenitiesId, Amenities FROM Amenities`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Amenity, 0)
	for rows.Next() {
		var a model.Amenity
		if err := rows.Scan(&a.AmenitiesId, &a.Amenities); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Create inserts a new amenity label.
func (r *AmenityRepo) Create(ctx context.Context, label string) error {
	const q = `INSERT INTO Amenities (Amenities) VALUES (?)`
	_, err := r.db.ExecContext(ctx, q, label)
	return err
}
