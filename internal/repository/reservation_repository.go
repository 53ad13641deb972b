package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/campspot-dev/campspot/internal/model"
)

// ReservationRepo provides access to the Reservation table.  Reservations
// are append-only in this API; there is no update or cancel operation.
type ReservationRepo struct{ db *sql.DB }

// NewReservationRepo returns a ReservationRepo bound to the given database handle.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// NewReservation carries the caller-supplied fields of a reservation
// insert.  Dates pass through as text and are coerced by the store.
// NumberOfGuests and Message are optional; nil binds as NULL.  No overlap
// or availability check is performed against existing reservations for the
// same spot and range.
type NewReservation struct {
	UserId         uint64
	CampingSpotId  uint64
	StartingDate   string
	EndDate        string
	TotalPrice     float64
	NumberOfGuests *uint32
	Message        *string
}

// BookingRow is a reservation joined with its spot's name, as shown in a
// guest's booking overview.  The alias spotName is part of the wire
// contract.
type BookingRow struct {
	ReservationId uint64    `json:"ReservationId"`
	StartingDate  time.Time `json:"StartingDate"`
	EndDate       time.Time `json:"EndDate"`
	TotalPrice    float64   `json:"TotalPrice"`
	SpotName      string    `json:"spotName"`
	CampingSpotId uint64    `json:"CampingSpotId"`
}

// ListAll returns every reservation with all columns.
func (r *ReservationRepo) ListAll(ctx context.Context) ([]model.Reservation, error) {
	const q = `SELECT ReservationId, UserId, CampingSpotId, StartingDate, EndDate, TotalPrice, NumberOfGuests, Message FROM Reservation`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reservation, 0)
	for rows.Next() {
		var (
			res    model.Reservation
			guests sql.NullInt64
			msg    sql.NullString
		)
		if err := rows.Scan(&res.ReservationId, &res.UserId, &res.CampingSpotId,
			&res.StartingDate, &res.EndDate, &res.TotalPrice, &guests, &msg); err != nil {
			return nil, err
		}
		res.NumberOfGuests = nullCount(guests)
		res.Message = nullStr(msg)
		out = append(out, res)
	}
	return out, rows.Err()
}

// Create inserts a new reservation.
func (r *ReservationRepo) Create(ctx context.Context, res NewReservation) error {
	const q = `INSERT INTO Reservation (UserId, CampingSpotId, StartingDate, EndDate, TotalPrice, NumberOfGuests, Message)
               VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		res.UserId, res.CampingSpotId, res.StartingDate, res.EndDate,
		res.TotalPrice, res.NumberOfGuests, res.Message)
	return err
}

// ListByUser returns one guest's reservations joined with the booked
// spot's name, most recent starting date first.  The ordering clause is
// the only explicit ordering in the API; everywhere else the store's
// natural row order passes through.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID string) ([]BookingRow, error) {
	const q = `
        SELECT r.ReservationId, r.StartingDate, r.EndDate, r.TotalPrice,
               cs.Name AS spotName, cs.CampingSpotId
        FROM Reservation r
        JOIN CampingSpot cs ON r.CampingSpotId = cs.CampingSpotId
        WHERE r.UserId = ?
        ORDER BY r.StartingDate DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BookingRow, 0)
	for rows.Next() {
		var b BookingRow
		if err := rows.Scan(&b.ReservationId, &b.StartingDate, &b.EndDate,
			&b.TotalPrice, &b.SpotName, &b.CampingSpotId); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
