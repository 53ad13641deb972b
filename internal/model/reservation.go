package model

import "time"

// Reservation records a guest's booking of a camping spot for a date range.
// TotalPrice is caller-supplied and stored verbatim; the server does not
// derive it from the nightly price.  NumberOfGuests and Message are optional
// columns and persist as NULL when the caller omits them.
//
// Fields:
//
//	ReservationId  – primary key identifier.
//	UserId         – booking guest.
//	CampingSpotId  – booked spot.
//	StartingDate   – first night of the stay.
//	EndDate        – checkout date.
//	TotalPrice     – total price as submitted by the caller.
//	NumberOfGuests – optional party size.
//	Message        – optional message to the host.
type Reservation struct {
	ReservationId  uint64    `json:"ReservationId"`  // Reservation.ReservationId
	UserId         uint64    `json:"UserId"`         // Reservation.UserId
	CampingSpotId  uint64    `json:"CampingSpotId"`  // Reservation.CampingSpotId
	StartingDate   time.Time `json:"StartingDate"`   // Reservation.StartingDate
	EndDate        time.Time `json:"EndDate"`        // Reservation.EndDate
	TotalPrice     float64   `json:"TotalPrice"`     // Reservation.TotalPrice
	NumberOfGuests *uint32   `json:"NumberOfGuests"` // Reservation.NumberOfGuests (nullable)
	Message        *string   `json:"Message"`        // Reservation.Message (nullable)
}
