package model

// Amenity represents a row in the `Amenities` table.  Each row is a single
// label; a camping spot references at most one amenity row, so there is no
// join table.
//
// Fields:
//
//	AmenitiesId – primary key identifier.
//	Amenities   – label text (the table and column share the name).
type Amenity struct {
	AmenitiesId uint64 `json:"AmenitiesId"` // Amenities.AmenitiesId
	Amenities   string `json:"Amenities"`   // Amenities.Amenities
}
