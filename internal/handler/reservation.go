package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/campspot-dev/campspot/internal/queue"
	"github.com/campspot-dev/campspot/internal/repository"
)

// ReservationEventPublisher publishes a reservation.created event after a
// successful insert.  Publishing is best-effort: failures never affect the
// HTTP response.  A nil publisher disables events entirely.
type ReservationEventPublisher interface {
	PublishReservationCreated(ctx context.Context, ev queue.ReservationCreatedEvent) error
}

// ReservationHandler serves the reservation and booking endpoints.
type ReservationHandler struct {
	Reservations *repository.ReservationRepo
	Events       ReservationEventPublisher // optional
}

// NewReservationHandler constructs a ReservationHandler.  events may be nil
// when no broker is configured.
func NewReservationHandler(reservations *repository.ReservationRepo, events ReservationEventPublisher) *ReservationHandler {
	if reservations == nil {
		panic("nil repository passed to NewReservationHandler")
	}
	return &ReservationHandler{Reservations: reservations, Events: events}
}

// createReservationReq mirrors the JSON body of a reservation creation
// request.  numberOfGuests and message are optional and persist as NULL
// when omitted.
type createReservationReq struct {
	UserId         uint64  `json:"userId"`
	CampingSpotId  uint64  `json:"campingSpotId"`
	StartingDate   string  `json:"startingDate"`
	EndDate        string  `json:"endDate"`
	TotalPrice     float64 `json:"totalPrice"`
	NumberOfGuests *uint32 `json:"numberOfGuests"`
	Message        *string `json:"message"`
}

// GetReservations returns all reservations with all columns.
func (h *ReservationHandler) GetReservations(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	reservations, err := h.Reservations.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch reservations", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, reservations)
}

// CreateReservation inserts a new reservation.  TotalPrice is stored as
// submitted and no availability check runs against existing reservations
// for the same spot and range.  On success a reservation.created event is
// published when a broker is configured.
func (h *ReservationHandler) CreateReservation(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	err := h.Reservations.Create(ctx, repository.NewReservation{
		UserId:         req.UserId,
		CampingSpotId:  req.CampingSpotId,
		StartingDate:   req.StartingDate,
		EndDate:        req.EndDate,
		TotalPrice:     req.TotalPrice,
		NumberOfGuests: req.NumberOfGuests,
		Message:        req.Message,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to create reservation", "details": err.Error()})
	}

	if h.Events != nil {
		ev := queue.ReservationCreatedEvent{
			UserId:         req.UserId,
			CampingSpotId:  req.CampingSpotId,
			StartingDate:   req.StartingDate,
			EndDate:        req.EndDate,
			TotalPrice:     req.TotalPrice,
			NumberOfGuests: req.NumberOfGuests,
			Message:        req.Message,
			CreatedAt:      time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Events.PublishReservationCreated(ctx, ev); err != nil {
			c.Logger().Warnf("reservation event publish failed: %v", err)
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "Reservation created successfully", "success": true})
}

// GetUserBookings returns one guest's reservations joined with spot names,
// most recent starting date first.
func (h *ReservationHandler) GetUserBookings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), queryTimeout)
	defer cancel()

	bookings, err := h.Reservations.ListByUser(ctx, c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Failed to fetch bookings", "details": err.Error()})
	}
	return c.JSON(http.StatusOK, bookings)
}
