package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/campspot-dev/campspot/internal/model"
)

// ErrSpotNotFound is returned when a spot lookup by identifier matches no
// row.  Handlers translate it into an HTTP 404.
var ErrSpotNotFound = errors.New("camping spot not found")

// SpotRepo provides access to the CampingSpot table and its joined
// projections.  All queries use positional placeholders; caller-supplied
// values are never concatenated into statement text.
type SpotRepo struct{ db *sql.DB }

// NewSpotRepo returns a SpotRepo bound to the given database handle.
func NewSpotRepo(db *sql.DB) *SpotRepo { return &SpotRepo{db: db} }

// SpotRow is the flattened listing projection: the spot's own columns plus
// the joined location columns and the amenity label under its alias.  The
// joins are LEFT JOINs, so a spot without a location or amenity still
// appears with those fields as null.
type SpotRow struct {
	model.CampingSpot
	CityVillage   *string `json:"CityVillage"`
	Coordinates   *string `json:"Coordinates"`
	Country       *string `json:"Country"`
	AmenitiesName *string `json:"AmenitiesName"`
}

// SpotDetail is the single-spot projection returned by the lookup endpoint.
// It joins the location but not the amenity label.
type SpotDetail struct {
	model.CampingSpot
	CityVillage *string `json:"CityVillage"`
	Coordinates *string `json:"Coordinates"`
	Country     *string `json:"Country"`
}

// HostSpot is a spot as shown in a host's own listing overview.  The host
// is implied by the request, so the HostId column is not selected.
type HostSpot struct {
	CampingSpotId uint64  `json:"CampingSpotId"`
	Name          string  `json:"Name"`
	Description   string  `json:"Description"`
	MaxCapacity   uint32  `json:"MaxCapacity"`
	PricePerNight float64 `json:"PricePerNight"`
	AmenitiesId   *uint64 `json:"AmenitiesId"`
	LocationId    *uint64 `json:"LocationId"`
	CityVillage   *string `json:"CityVillage"`
	Coordinates   *string `json:"Coordinates"`
	Country       *string `json:"Country"`
}

// NewSpot carries the caller-supplied fields of a spot insert.  The
// nullable foreign keys are pointers; nil binds as NULL.
type NewSpot struct {
	Name          string
	LocationId    *uint64
	Description   string
	MaxCapacity   uint32
	PricePerNight float64
	AmenitiesId   *uint64
	HostId        uint64
}

// ListAll returns every spot joined with its location and amenity label.
func (r *SpotRepo) ListAll(ctx context.Context) ([]SpotRow, error) {
	const q = `
        SELECT cs.CampingSpotId, cs.Name, cs.Description, cs.MaxCapacity,
               cs.PricePerNight, cs.AmenitiesId, cs.LocationId,
               l.CityVillage, l.Coordinates, l.Country,
               a.Amenities AS AmenitiesName, cs.HostId
        FROM CampingSpot cs
        LEFT JOIN Location l ON cs.LocationId = l.LocationId
        LEFT JOIN Amenities a ON cs.AmenitiesId = a.AmenitiesId`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SpotRow, 0)
	for rows.Next() {
		var (
			s                                  SpotRow
			amenitiesID, locationID            sql.NullInt64
			city, coords, country, amenityName sql.NullString
		)
		if err := rows.Scan(&s.CampingSpotId, &s.Name, &s.Description, &s.MaxCapacity,
			&s.PricePerNight, &amenitiesID, &locationID,
			&city, &coords, &country, &amenityName, &s.HostId); err != nil {
			return nil, err
		}
		s.AmenitiesId = nullID(amenitiesID)
		s.LocationId = nullID(locationID)
		s.CityVillage = nullStr(city)
		s.Coordinates = nullStr(coords)
		s.Country = nullStr(country)
		s.AmenitiesName = nullStr(amenityName)
		out = append(out, s)
	}
	return out, rows.Err()
}

// GetByID returns one spot joined with its location.  The identifier is
// bound as the raw path text; the store coerces it.  sql.ErrNoRows becomes
// ErrSpotNotFound.
func (r *SpotRepo) GetByID(ctx context.Context, id string) (SpotDetail, error) {
	const q = `
        SELECT cs.CampingSpotId, cs.Name, cs.Description, cs.MaxCapacity,
               cs.PricePerNight, cs.AmenitiesId, cs.LocationId,
               l.CityVillage, l.Coordinates, l.Country, cs.HostId
        FROM CampingSpot cs
        LEFT JOIN Location l ON cs.LocationId = l.LocationId
        WHERE cs.CampingSpotId = ?`
	var (
		s                       SpotDetail
		amenitiesID, locationID sql.NullInt64
		city, coords, country   sql.NullString
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.CampingSpotId, &s.Name, &s.Description, &s.MaxCapacity,
		&s.PricePerNight, &amenitiesID, &locationID,
		&city, &coords, &country, &s.HostId)
	if errors.Is(err, sql.ErrNoRows) {
		return SpotDetail{}, ErrSpotNotFound
	}
	if err != nil {
		return SpotDetail{}, err
	}
	s.AmenitiesId = nullID(amenitiesID)
	s.LocationId = nullID(locationID)
	s.CityVillage = nullStr(city)
	s.Coordinates = nullStr(coords)
	s.Country = nullStr(country)
	return s, nil
}

// ListByHost returns the spots owned by one host, joined with location.
func (r *SpotRepo) ListByHost(ctx context.Context, hostID string) ([]HostSpot, error) {
	const q = `
        SELECT cs.CampingSpotId, cs.Name, cs.Description, cs.MaxCapacity,
               cs.PricePerNight, cs.AmenitiesId, cs.LocationId,
               l.CityVillage, l.Coordinates, l.Country
        FROM CampingSpot cs
        LEFT JOIN Location l ON cs.LocationId = l.LocationId
        WHERE cs.HostId = ?`
	rows, err := r.db.QueryContext(ctx, q, hostID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]HostSpot, 0)
	for rows.Next() {
		var (
			s                       HostSpot
			amenitiesID, locationID sql.NullInt64
			city, coords, country   sql.NullString
		)
		if err := rows.Scan(&s.CampingSpotId, &s.Name, &s.Description, &s.MaxCapacity,
			&s.PricePerNight, &amenitiesID, &locationID,
			&city, &coords, &country); err != nil {
			return nil, err
		}
		s.AmenitiesId = nullID(amenitiesID)
		s.LocationId = nullID(locationID)
		s.CityVillage = nullStr(city)
		s.Coordinates = nullStr(coords)
		s.Country = nullStr(country)
		out = append(out, s)
	}
	return out, rows.Err()
}

// Create inserts a new camping spot.  The generated key is not reported
// back; the API confirms creation with a message only.
func (r *SpotRepo) Create(ctx context.Context, s NewSpot) error {
	const q = `INSERT INTO CampingSpot (Name, LocationId, Description, MaxCapacity, PricePerNight, AmenitiesId, HostId)
               VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		s.Name, s.LocationId, s.Description, s.MaxCapacity, s.PricePerNight, s.AmenitiesId, s.HostId)
	return err
}
