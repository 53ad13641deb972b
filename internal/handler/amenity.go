package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campspot-dev/campspot/internal/repository"
)

// AmenityHandler serves the amenity endpoints.
type AmenityHandler struct {
	Amenities *repository.AmenityRepo
}

// NewAmenityHandler constructs an AmenityHandler.
func NewAmenityHandler(amenities *repository.AmenityRepo) *AmenityHandler {
	if amenities == nil {
		panic("nil repository passed to NewAmenityHandler")
	}
	return &AmenityHandler{Amenities: amenities}
}

// createAmenityReq mirrors the JSON body of an amenity creation request.
type createAmenityReq struct {
	Amenities string `json:"amenities"`
}

// GetAmenities returns all amenity labels.
func (h *AmenityHandler) GetAmenities(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	amenities, err := h.Amenities.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch amenities", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, amenities)
}

// CreateAmenity inserts a new amenity label and confirms with a message.
func (h *AmenityHandler) CreateAmenity(c echo.Context) error {
	var req createAmenityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	if err := h.Amenities.Create(ctx, req.Amenities); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add amenity", "details": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Amenity added successfully"})
}
