// Package handler translates HTTP requests into repository calls and
// repository results into JSON responses.  Every handler follows the same
// shape: extract parameters, invoke the repository with a bounded context,
// map the outcome onto the fixed status/body contract.  Store failures are
// reported as 500 with the underlying error in a details field; they are
// never retried and never crash the process.
package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campspot-dev/campspot/internal/repository"
)

// queryTimeout bounds every store round trip issued by a handler.
const queryTimeout = 5 * time.Second

// SpotHandler serves the camping spot endpoints.
type SpotHandler struct {
	Spots *repository.SpotRepo
}

// NewSpotHandler constructs a SpotHandler.
func NewSpotHandler(spots *repository.SpotRepo) *SpotHandler {
	if spots == nil {
		panic("nil repository passed to NewSpotHandler")
	}
	return &SpotHandler{Spots: spots}
}

// createSpotReq mirrors the JSON body of a spot creation request.  The
// nullable foreign keys are pointers so an omitted or null value binds as
// NULL instead of zero.
type createSpotReq struct {
	Name          string  `json:"name"`
	LocationId    *uint64 `json:"locationId"`
	Description   string  `json:"description"`
	MaxCapacity   uint32  `json:"maxCapacity"`
	PricePerNight float64 `json:"pricePerNight"`
	AmenitiesId   *uint64 `json:"amenitiesId"`
	HostId        uint64  `json:"hostId"`
}

// GetSpots returns all camping spots joined with their location and
// amenity label.  An empty table is a success: 200 with an empty array.
func (h *SpotHandler) GetSpots(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	spots, err := h.Spots.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch spots", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, spots)
}

// CreateSpot inserts a new camping spot and confirms with a message.
func (h *SpotHandler) CreateSpot(c echo.Context) error {
	var req createSpotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	err := h.Spots.Create(ctx, repository.NewSpot{
		Name:          req.Name,
		LocationId:    req.LocationId,
		Description:   req.Description,
		MaxCapacity:   req.MaxCapacity,
		PricePerNight: req.PricePerNight,
		AmenitiesId:   req.AmenitiesId,
		HostId:        req.HostId,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add camping spot", "details": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Camping spot added successfully"})
}

// GetSpot returns one camping spot by identifier, joined with its
// location.  An empty result is 404, not 500; the identifier stays text
// until the query binds it.
func (h *SpotHandler) GetSpot(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	spot, err := h.Spots.GetByID(ctx, c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrSpotNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Camping spot not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch spot details", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, spot)
}

// GetHostSpots returns the spots listed by one host user.
func (h *SpotHandler) GetHostSpots(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	spots, err := h.Spots.ListByHost(ctx, c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch spots", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, spots)
}
