package model

import "time"

// Review represents a row in the `Reviews` table.  The table has no
// surrogate key of its own; a review is identified by its user and spot.
// Rating bounds (1–5) are a store-schema concern, not validated here.
//
// Fields:
//
//	UserId        – reviewing user.
//	CampingSpotId – reviewed spot.
//	Rating        – numeric rating.
//	Comment       – free-form review text.
//	DateOfReview  – when the review was written.
type Review struct {
	UserId        uint64    `json:"UserId"`        // Reviews.UserId
	CampingSpotId uint64    `json:"CampingSpotId"` // Reviews.CampingSpotId
	Rating        uint32    `json:"Rating"`        // Reviews.Rating
	Comment       string    `json:"Comment"`       // Reviews.Comment
	DateOfReview  time.Time `json:"DateOfReview"`  // Reviews.DateOfReview
}
