package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/travel-reservation/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}, "X-Cache": {"MISS"}}
	body := []byte(`{"items":[]}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr, gotHdr)
	assert.Equal(t, body, gotBody)
}

func TestDecodePayload_RejectsGarbage(t *testing.T) {
	_, _, _, ok := decodePayload(nil)
	assert.False(t, ok)
	_, _, _, ok = decodePayload([]byte{1, 2, 3})
	assert.False(t, ok)
	// header length pointing past the buffer
	_, _, _, ok = decodePayload([]byte{0, 0, 0, 200, 0, 0, 0, 99})
	assert.False(t, ok)
}

func newCtx(method, target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestCacheKey_QueryAware(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "catalog", KeyStrategy: "route_query"}

	a := cacheKeyFrom(cfg, newCtx(http.MethodGet, "/v1/packages?sort=price_asc"))
	b := cacheKeyFrom(cfg, newCtx(http.MethodGet, "/v1/packages?sort=rating"))
	c := cacheKeyFrom(cfg, newCtx(http.MethodGet, "/v1/packages?sort=price_asc"))

	assert.NotEqual(t, a, b)
	assert.Equal(t, a, c)
	assert.Contains(t, a, "catalog:")
}

func TestCacheKey_RouteStrategyIgnoresQuery(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "catalog", KeyStrategy: "route"}

	a := cacheKeyFrom(cfg, newCtx(http.MethodGet, "/v1/packages?sort=price_asc"))
	b := cacheKeyFrom(cfg, newCtx(http.MethodGet, "/v1/packages?sort=rating"))
	assert.Equal(t, a, b)
}

func TestNewRedisCache_NoRedisIsPassthrough(t *testing.T) {
	mw := NewRedisCache(config.CacheConfig{Enabled: true}, nil)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "ok")
	})

	c := newCtx(http.MethodGet, "/v1/packages")
	require.NoError(t, h(c))
	assert.True(t, called)
}

func TestNewTokenBucket_NoRedisIsPassthrough(t *testing.T) {
	mw := NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)

	called := false
	h := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})

	c := newCtx(http.MethodPost, "/v1/reservations")
	require.NoError(t, h(c))
	assert.True(t, called)
}
