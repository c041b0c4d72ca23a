package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_WindowResets(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}
	ok, _ := l.Allow(ctx, "10.0.0.1")
	assert.False(t, ok, "third request in window")

	ok, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "other keys have their own bucket")

	now = now.Add(time.Minute)
	ok, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, ok, "new window")
}

func TestMemoryLimiter_Prune(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	_, _ = l.Allow(context.Background(), "a")
	now = now.Add(3 * time.Minute)
	l.prune()

	assert.Empty(t, l.entries)
}

func TestRedisLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	l := NewRedisLimiter(rdb, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, time.Minute, mr.TTL("catalogadmin:ratelimit:10.0.0.1"))

	mr.FastForward(time.Minute)
	ok, err = l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok, "counter expired with the window")
}

func TestRedisLimiter_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	_, err := NewRedisLimiter(rdb, 2, time.Minute).Allow(context.Background(), "x")
	assert.Error(t, err)
}

// limiterFunc adapts a function to Limiter.
type limiterFunc func(ctx context.Context, key string) (bool, error)

func (f limiterFunc) Allow(ctx context.Context, key string) (bool, error) { return f(ctx, key) }

func serveWithLimiter(t *testing.T, l Limiter) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Use(RateLimit(l))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	return rec
}

func TestRateLimit_Denied(t *testing.T) {
	rec := serveWithLimiter(t, limiterFunc(func(context.Context, string) (bool, error) {
		return false, nil
	}))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	rec := serveWithLimiter(t, limiterFunc(func(context.Context, string) (bool, error) {
		return false, errors.New("redis down")
	}))
	assert.Equal(t, http.StatusOK, rec.Code)
}
