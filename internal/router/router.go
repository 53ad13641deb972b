// Package router defines how HTTP routes are registered for the API.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/campspot-dev/campspot/internal/config"
	"github.com/campspot-dev/campspot/internal/handler"
)

// RegisterRoutes wires the transport-level surface: the CORS policy, the
// read-only image directory and a health check.  Only the single
// configured origin may call the API; PUT and DELETE are declared in the
// policy as reserved surface even though no endpoint implements them yet.
func RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Any file under the image directory is served verbatim with its
	// natural content type.
	e.Static("/img", cfg.ImageDir)

	e.GET("/healthz", handler.Health)
}

// RegisterAPI registers every resource endpoint under /api.  The optional
// middleware (response cache, cache invalidation, rate limiting) applies
// to the whole group; each no-ops when Redis is absent.
func RegisterAPI(e *echo.Echo,
	spots *handler.SpotHandler,
	users *handler.UserHandler,
	reservations *handler.ReservationHandler,
	reviews *handler.ReviewHandler,
	amenities *handler.AmenityHandler,
	locations *handler.LocationHandler,
	mw ...echo.MiddlewareFunc,
) {
	api := e.Group("/api", mw...)

	// Camping spots
	api.GET("/campingspots", spots.GetSpots)
	api.POST("/campingspots", spots.CreateSpot)
	api.GET("/campingspots/:id", spots.GetSpot)
	api.GET("/users/:userId/campingspots", spots.GetHostSpots)

	// Users and login
	api.GET("/users", users.GetUsers)
	api.POST("/users", users.CreateUser)
	api.GET("/users/:userId", users.GetUser)
	api.POST("/login", users.Login)

	// Reservations and per-guest bookings
	api.GET("/reservations", reservations.GetReservations)
	api.POST("/reservations", reservations.CreateReservation)
	api.GET("/users/:userId/bookings", reservations.GetUserBookings)

	// Reviews
	api.GET("/reviews", reviews.GetReviews)
	api.POST("/reviews", reviews.CreateReview)

	// Amenities
	api.GET("/amenities", amenities.GetAmenities)
	api.POST("/amenities", amenities.CreateAmenity)

	// Locations
	api.GET("/locations", locations.GetLocations)
	api.POST("/locations", locations.CreateLocation)
}
