package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campspot-dev/campspot/internal/repository"
)

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	Reviews *repository.ReviewRepo
}

// NewReviewHandler constructs a ReviewHandler.
func NewReviewHandler(reviews *repository.ReviewRepo) *ReviewHandler {
	if reviews == nil {
		panic("nil repository passed to NewReviewHandler")
	}
	return &ReviewHandler{Reviews: reviews}
}

// createReviewReq mirrors the JSON body of a review creation request.
type createReviewReq struct {
	UserId        uint64 `json:"userId"`
	CampingSpotId uint64 `json:"campingSpotId"`
	Rating        uint32 `json:"rating"`
	Comment       string `json:"comment"`
	DateOfReview  string `json:"dateOfReview"`
}

// GetReviews returns all reviews.
func (h *ReviewHandler) GetReviews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	reviews, err := h.Reviews.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch reviews", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, reviews)
}

// CreateReview inserts a new review and confirms with a message.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	err := h.Reviews.Create(ctx, repository.NewReview{
		UserId:        req.UserId,
		CampingSpotId: req.CampingSpotId,
		Rating:        req.Rating,
		Comment:       req.Comment,
		DateOfReview:  req.DateOfReview,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add review", "details": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Review added successfully"})
}
