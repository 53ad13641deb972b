package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campspot-dev/campspot/internal/config"
	"github.com/campspot-dev/campspot/internal/handler"
	"github.com/campspot-dev/campspot/internal/repository"
	"github.com/campspot-dev/campspot/internal/router"
)

// newServer wires the full route table over a mocked store, so requests
// travel the same path as in production: mux, path params, handler, repo.
func newServer(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	e := echo.New()
	router.RegisterRoutes(e, config.Config{CORSOrigin: "http://localhost:8080", ImageDir: t.TempDir()})
	router.RegisterAPI(e,
		handler.NewSpotHandler(repository.NewSpotRepo(db)),
		handler.NewUserHandler(repository.NewUserRepo(db)),
		handler.NewReservationHandler(repository.NewReservationRepo(db), nil),
		handler.NewReviewHandler(repository.NewReviewRepo(db)),
		handler.NewAmenityHandler(repository.NewAmenityRepo(db)),
		handler.NewLocationHandler(repository.NewLocationRepo(db)),
	)
	return e, mock
}

func TestHealthz(t *testing.T) {
	e, _ := newServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestSpotByIDRoutedThroughMux(t *testing.T) {
	e, mock := newServer(t)

	mock.ExpectQuery("WHERE cs.CampingSpotId").
		WithArgs("42").
		WillReturnRows(sqlmock.NewRows([]string{"CampingSpotId"}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/campingspots/42", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Camping spot not found"}`, rec.Body.String())
}

func TestBookingsRouteBindsUserIdParam(t *testing.T) {
	e, mock := newServer(t)

	mock.ExpectQuery("ORDER BY r.StartingDate DESC").
		WithArgs("5").
		WillReturnRows(sqlmock.NewRows([]string{"ReservationId", "StartingDate", "EndDate", "TotalPrice", "spotName", "CampingSpotId"}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/5/bookings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCORSPreflightAllowsConfiguredOrigin(t *testing.T) {
	e, _ := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/campingspots", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:8080")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:8080", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestCORSRejectsOtherOrigin(t *testing.T) {
	e, _ := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/campingspots", nil)
	req.Header.Set(echo.HeaderOrigin, "http://evil.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
