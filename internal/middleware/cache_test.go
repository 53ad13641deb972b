package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campspot-dev/campspot/internal/config"
)

func ctxFor(t *testing.T, method, path, query string) echo.Context {
	t.Helper()
	e := echo.New()
	target := path
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(method, target, nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath(path)
	return c
}

func TestCacheKeyStableAcrossCalls(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	a := cacheKeyFrom(cfg, ctxFor(t, http.MethodGet, "/api/campingspots", "page=1"))
	b := cacheKeyFrom(cfg, ctxFor(t, http.MethodGet, "/api/campingspots", "page=1"))
	assert.Equal(t, a, b)
	assert.Contains(t, a, "cache:")
}

func TestCacheKeyVariesByQuery(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}

	a := cacheKeyFrom(cfg, ctxFor(t, http.MethodGet, "/api/campingspots", "page=1"))
	b := cacheKeyFrom(cfg, ctxFor(t, http.MethodGet, "/api/campingspots", "page=2"))
	assert.NotEqual(t, a, b)
}

func TestCacheKeyRouteStrategyIgnoresQuery(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route"}

	a := cacheKeyFrom(cfg, ctxFor(t, http.MethodGet, "/api/amenities", "x=1"))
	b := cacheKeyFrom(cfg, ctxFor(t, http.MethodGet, "/api/amenities", "x=2"))
	assert.Equal(t, a, b)
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}, "X-Custom": {"a", "b"}}
	body := []byte(`[{"CampingSpotId":1}]`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr, gotHdr)
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsTruncated(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{0, 0, 0})
	assert.False(t, ok)

	// Header length pointing past the buffer is rejected, not sliced.
	bs, err := encodePayload(http.StatusOK, http.Header{}, []byte("x"))
	require.NoError(t, err)
	_, _, _, ok = decodePayload(bs[:8])
	assert.False(t, ok)
}

func TestMiddlewareNoopWithoutRedis(t *testing.T) {
	cfg := config.CacheConfig{Enabled: true, Methods: map[string]bool{"GET": true}}

	called := false
	next := func(c echo.Context) error { called = true; return nil }

	mw := NewRedisCache(cfg, nil)
	require.NoError(t, mw(next)(ctxFor(t, http.MethodGet, "/api/campingspots", "")))
	assert.True(t, called)

	called = false
	inv := NewCacheInvalidator(cfg, nil)
	require.NoError(t, inv(next)(ctxFor(t, http.MethodPost, "/api/campingspots", "")))
	assert.True(t, called)
}
