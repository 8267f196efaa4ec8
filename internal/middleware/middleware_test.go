package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/sports-ground-booking/internal/config"
	"github.com/iliyamo/sports-ground-booking/internal/session"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func TestRequireSession(t *testing.T) {
	rdb := testRedis(t)
	store := session.NewStore(rdb, "test-secret", time.Hour)
	e := echo.New()

	var seenUser int64
	var seenAdmin bool
	h := RequireSession(store)(func(c echo.Context) error {
		seenUser, _ = c.Get("user_id").(int64)
		seenAdmin, _ = c.Get("is_admin").(bool)
		return okHandler(c)
	})

	// No cookie.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Live session.
	token, _, err := store.Create(req.Context(), session.Data{UserID: 42, IsAdmin: true})
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), seenUser)
	assert.True(t, seenAdmin)

	// Destroyed session.
	require.NoError(t, store.Destroy(req.Context(), token))
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	h := RequireAdmin()(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("is_admin", false)
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.Set("is_admin", true)
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	rdb := testRedis(t)
	e := echo.New()
	cfg := config.RateLimitConfig{Enabled: true, Limit: 2, Window: time.Minute, Prefix: "rl"}
	h := RateLimit(cfg, rdb)(okHandler)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	e := echo.New()
	h := RateLimit(config.RateLimitConfig{Enabled: false}, nil)(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResponseCache(t *testing.T) {
	rdb := testRedis(t)
	e := echo.New()
	cfg := config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "cache"}

	calls := 0
	h := ResponseCache(cfg, rdb)(func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusOK, echo.Map{"n": calls})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/grounds", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, 1, calls)
	first := rec.Body.String()

	req = httptest.NewRequest(http.MethodGet, "/api/grounds", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, 1, calls, "second request should be served from cache")
	assert.Equal(t, first, rec.Body.String())
	assert.Equal(t, "HIT", rec.Header().Get("X-Cache"))

	// A different query string is a different cache entry.
	req = httptest.NewRequest(http.MethodGet, "/api/grounds?x=1", nil)
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, 2, calls)
}

func TestResponseCacheSkipsNonGet(t *testing.T) {
	rdb := testRedis(t)
	e := echo.New()
	cfg := config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "cache"}

	calls := 0
	h := ResponseCache(cfg, rdb)(func(c echo.Context) error {
		calls++
		return okHandler(c)
	})

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/grounds", nil)
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
	}
	assert.Equal(t, 2, calls)
}
