package model

// Location represents a row in the `Location` table.  Coordinates is an
// opaque string whose format is owned by the store; this layer never parses
// it.
//
// Fields:
//
//	LocationId  – primary key identifier.
//	CityVillage – city or village name.
//	Coordinates – store-defined coordinate string.
//	Country     – country name.
type Location struct {
	LocationId  uint64 `json:"LocationId"`  // Location.LocationId
	CityVillage string `json:"CityVillage"` // Location.CityVillage
	Coordinates string `json:"Coordinates"` // Location.Coordinates
	Country     string `json:"Country"`     // Location.Country
}
