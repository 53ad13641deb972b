package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campspot-dev/campspot/internal/handler"
	"github.com/campspot-dev/campspot/internal/queue"
	"github.com/campspot-dev/campspot/internal/repository"
)

// recordingPublisher captures published events for inspection.
type recordingPublisher struct {
	events []queue.ReservationCreatedEvent
}

func (p *recordingPublisher) PublishReservationCreated(_ context.Context, ev queue.ReservationCreatedEvent) error {
	p.events = append(p.events, ev)
	return nil
}

func newReservationHandler(t *testing.T, events handler.ReservationEventPublisher) (*handler.ReservationHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return handler.NewReservationHandler(repository.NewReservationRepo(db), events), mock
}

func TestCreateReservationWithoutOptionals(t *testing.T) {
	pub := &recordingPublisher{}
	h, mock := newReservationHandler(t, pub)

	mock.ExpectExec("INSERT INTO Reservation").
		WithArgs(int64(5), int64(7), "2024-01-10", "2024-01-12", 51.0, nil, nil).
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := `{"userId":5,"campingSpotId":7,"startingDate":"2024-01-10","endDate":"2024-01-12","totalPrice":51}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateReservation(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"Reservation created successfully","success":true}`, rec.Body.String())

	// One event per successful insert, mirroring the submitted booking.
	require.Len(t, pub.events, 1)
	assert.Equal(t, uint64(5), pub.events[0].UserId)
	assert.Equal(t, uint64(7), pub.events[0].CampingSpotId)
	assert.Nil(t, pub.events[0].NumberOfGuests)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReservationWithoutPublisher(t *testing.T) {
	h, mock := newReservationHandler(t, nil)

	mock.ExpectExec("INSERT INTO Reservation").
		WithArgs(int64(5), int64(7), "2024-01-10", "2024-01-12", 51.0, int64(2), "late arrival").
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := `{"userId":5,"campingSpotId":7,"startingDate":"2024-01-10","endDate":"2024-01-12","totalPrice":51,"numberOfGuests":2,"message":"late arrival"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateReservation(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateReservationStoreFailure(t *testing.T) {
	pub := &recordingPublisher{}
	h, mock := newReservationHandler(t, pub)

	mock.ExpectExec("INSERT INTO Reservation").WillReturnError(assert.AnError)

	body := `{"userId":5,"campingSpotId":7,"startingDate":"2024-01-10","endDate":"2024-01-12","totalPrice":51}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.CreateReservation(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error":"Failed to create reservation"`)
	// No event when the insert failed.
	assert.Empty(t, pub.events)
}

func TestGetUserBookingsPreservesStoreOrder(t *testing.T) {
	h, mock := newReservationHandler(t, nil)

	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	cols := []string{"ReservationId", "StartingDate", "EndDate", "TotalPrice", "spotName", "CampingSpotId"}
	mock.ExpectQuery("ORDER BY r.StartingDate DESC").
		WithArgs("5").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(2), mar, mar.AddDate(0, 0, 2), 80.0, "Dunes", int64(7)).
			AddRow(int64(1), jan, jan.AddDate(0, 0, 2), 51.0, "Riverside", int64(3)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/5/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/users/:userId/bookings")
	c.SetParamNames("userId")
	c.SetParamValues("5")

	require.NoError(t, h.GetUserBookings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[
        {"ReservationId":2,"StartingDate":"2024-03-01T00:00:00Z","EndDate":"2024-03-03T00:00:00Z","TotalPrice":80,"spotName":"Dunes","CampingSpotId":7},
        {"ReservationId":1,"StartingDate":"2024-01-10T00:00:00Z","EndDate":"2024-01-12T00:00:00Z","TotalPrice":51,"spotName":"Riverside","CampingSpotId":3}
    ]`, rec.Body.String())
}

func TestGetReservationsEmptyCollection(t *testing.T) {
	h, mock := newReservationHandler(t, nil)

	mock.ExpectQuery("FROM Reservation").WillReturnRows(sqlmock.NewRows([]string{
		"ReservationId", "UserId", "CampingSpotId", "StartingDate", "EndDate", "TotalPrice", "NumberOfGuests", "Message",
	}))

	e := echo.New()
	rec := httptest.NewRecorder()
	err := h.GetReservations(e.NewContext(httptest.NewRequest(http.MethodGet, "/api/reservations", nil), rec))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
