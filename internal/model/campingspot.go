package model

// CampingSpot represents a row in the `CampingSpot` table.  AmenitiesId and
// LocationId are nullable foreign keys, so they are pointers; a spot without
// a location or amenity still serializes both keys, as JSON null.
//
// Fields:
//
//	CampingSpotId – primary key identifier.
//	Name          – listing title.
//	Description   – listing description.
//	MaxCapacity   – maximum number of guests; positivity is a store concern.
//	PricePerNight – price per night as stored.
//	AmenitiesId   – optional reference into Amenities.
//	LocationId    – optional reference into Location.
//	HostId        – owning user; must be a host-typed account.
type CampingSpot struct {
	CampingSpotId uint64  `json:"CampingSpotId"` // CampingSpot.CampingSpotId
	Name          string  `json:"Name"`          // CampingSpot.Name
	Description   string  `json:"Description"`   // CampingSpot.Description
	MaxCapacity   uint32  `json:"MaxCapacity"`   // CampingSpot.MaxCapacity
	PricePerNight float64 `json:"PricePerNight"` // CampingSpot.PricePerNight
	AmenitiesId   *uint64 `json:"AmenitiesId"`   // CampingSpot.AmenitiesId (nullable)
	LocationId    *uint64 `json:"LocationId"`    // CampingSpot.LocationId (nullable)
	HostId        uint64  `json:"HostId"`        // CampingSpot.HostId
}
