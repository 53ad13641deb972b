package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campspot-dev/campspot/internal/repository"
)

// LocationHandler serves the location endpoints.  Locations are created
// ahead of the camping spots that reference them.
type LocationHandler struct {
	Locations *repository.LocationRepo
}

// NewLocationHandler constructs a LocationHandler.
func NewLocationHandler(locations *repository.LocationRepo) *LocationHandler {
	if locations == nil {
		panic("nil repository passed to NewLocationHandler")
	}
	return &LocationHandler{Locations: locations}
}

// createLocationReq mirrors the JSON body of a location creation request.
type createLocationReq struct {
	CityVillage string `json:"cityVillage"`
	Coordinates string `json:"coordinates"`
	Country     string `json:"country"`
}

// GetLocations returns all locations.
func (h *LocationHandler) GetLocations(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	locations, err := h.Locations.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch locations", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, locations)
}

// CreateLocation inserts a new location and confirms with a message.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var req createLocationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	err := h.Locations.Create(ctx, repository.NewLocation{
		CityVillage: req.CityVillage,
		Coordinates: req.Coordinates,
		Country:     req.Country,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to add location", "details": err.Error()})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Location added successfully"})
}
