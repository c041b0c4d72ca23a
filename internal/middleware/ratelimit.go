package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Limiter decides whether one more request from key fits in the current
// window. An error means the limiter could not decide.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit returns middleware that limits requests per client IP using the
// given Limiter. Returns 429 when exceeded. Limiter failures are logged and
// the request is let through, so a Redis outage never takes the dashboard
// down with it.
func RateLimit(l Limiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			ok, err := l.Allow(c.Request().Context(), ip)
			if err != nil {
				slog.Warn("rate limiter unavailable, allowing request",
					slog.String("remote_ip", ip),
					slog.Any("error", err),
				)
				return next(c)
			}
			if !ok {
				return echo.NewHTTPError(http.StatusTooManyRequests,
					"Demasiadas solicitudes. Intente nuevamente en unos momentos.")
			}
			return next(c)
		}
	}
}

// --- In-memory limiter ---

// rateLimitEntry tracks request counts for a single key within a time window.
type rateLimitEntry struct {
	count       int
	windowStart time.Time
}

// MemoryLimiter is a fixed-window counter kept in process memory. Used when
// no Redis is configured; counts are per process.
type MemoryLimiter struct {
	max    int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*rateLimitEntry
}

// NewMemoryLimiter creates a limiter allowing max requests per window.
func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		max:     max,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*rateLimitEntry),
	}
}

// Allow implements Limiter. It never returns an error.
func (m *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.entries[key]
	if !exists || now.Sub(entry.windowStart) >= m.window {
		m.entries[key] = &rateLimitEntry{count: 1, windowStart: now}
		return true, nil
	}

	entry.count++
	return entry.count <= m.max, nil
}

// Sweep drops entries whose window expired long ago. Runs until ctx is done.
func (m *MemoryLimiter) Sweep(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.prune()
		}
	}
}

// prune removes entries older than two windows.
func (m *MemoryLimiter) prune() {
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for key, entry := range m.entries {
		if now.Sub(entry.windowStart) > m.window*2 {
			delete(m.entries, key)
		}
	}
}

// --- Redis limiter ---

// RedisLimiter is a fixed-window counter shared by every dashboard process
// through Redis. Each key lives for one window.
type RedisLimiter struct {
	rdb    *redis.Client
	max    int
	window time.Duration
	prefix string
}

// NewRedisLimiter creates a Redis-backed limiter allowing max requests per window.
func NewRedisLimiter(rdb *redis.Client, max int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		max:    max,
		window: window,
		prefix: "catalogadmin:ratelimit:",
	}
}

// Allow implements Limiter. The expiry is only set by the request that
// created the key, so the window is not extended by later requests.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := r.prefix + key

	count, err := r.rdb.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("incrementing rate limit counter: %w", err)
	}
	if count == 1 {
		if err := r.rdb.PExpire(ctx, k, r.window).Err(); err != nil {
			return false, fmt.Errorf("setting rate limit expiry: %w", err)
		}
	}
	return count <= int64(r.max), nil
}
