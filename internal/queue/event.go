// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// ReservationCreatedEvent is published after a reservation row is inserted.
// It carries the submitted booking verbatim so downstream consumers can
// notify hosts or feed analytics without querying the primary database.
type ReservationCreatedEvent struct {
	UserId         uint64  `json:"user_id"`
	CampingSpotId  uint64  `json:"camping_spot_id"`
	StartingDate   string  `json:"starting_date"`
	EndDate        string  `json:"end_date"`
	TotalPrice     float64 `json:"total_price"`
	NumberOfGuests *uint32 `json:"number_of_guests,omitempty"`
	Message        *string `json:"message,omitempty"`
	CreatedAt      string  `json:"created_at"`
}
