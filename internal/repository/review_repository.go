package repository

import (
	"context"
	"database/sql"

	"github.com/campspot-dev/campspot/internal/model"
)

// ReviewRepo provides access to the Reviews table.
type ReviewRepo struct{ db *sql.DB }

// NewReviewRepo returns a ReviewRepo bound to the given database handle.
func NewReviewRepo(db *sql.DB) *ReviewRepo { return &ReviewRepo{db: db} }

// NewReview carries the caller-supplied fields of a review insert.  The
// review date passes through as text; rating bounds are a store concern.
type NewReview struct {
	UserId        uint64
	CampingSpotId uint64
	Rating        uint32
	Comment       string
	DateOfReview  string
}

// ListAll returns every review with all columns.
func (r *ReviewRepo) ListAll(ctx context.Context) ([]model.Review, error) {
	const q = `SELECT UserId, CampingSpotId, Rating, Comment, DateOfReview FROM Reviews`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Review, 0)
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(&rev.UserId, &rev.CampingSpotId, &rev.Rating,
			&rev.Comment, &rev.DateOfReview); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

// Create inserts a new review.
func (r *ReviewRepo) Create(ctx context.Context, rev NewReview) error {
	const q = `INSERT INTO Reviews (UserId, CampingSpotId, Rating, Comment, DateOfReview)
               VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		rev.UserId, rev.CampingSpotId, rev.Rating, rev.Comment, rev.DateOfReview)
	return err
}
