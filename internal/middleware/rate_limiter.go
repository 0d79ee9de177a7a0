package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"gestionpos/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Limiter is a fixed-window request counter keyed by client.
type Limiter interface {
	// Allow counts one request for key and reports whether it fits in the
	// current window, plus the time left until the window resets.
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// ── In-memory limiter ─────────────────────────────────────────────────────────

type windowEntry struct {
	count     int
	windowEnd time.Time
}

// MemoryLimiter keeps counters in process. Expired entries are purged lazily
// on Allow, at most once per purgeInterval.
type MemoryLimiter struct {
	mu        sync.Mutex
	entries   map[string]*windowEntry
	limit     int
	window    time.Duration
	lastPurge time.Time
	now       func() time.Time
}

const purgeInterval = 5 * time.Minute

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]*windowEntry),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastPurge) >= purgeInterval {
		l.purgeLocked(now)
	}

	entry, ok := l.entries[key]
	if !ok || now.After(entry.windowEnd) {
		entry = &windowEntry{windowEnd: now.Add(l.window)}
		l.entries[key] = entry
	}
	entry.count++
	return entry.count <= l.limit, entry.windowEnd.Sub(now), nil
}

func (l *MemoryLimiter) purgeLocked(now time.Time) {
	purged := 0
	for key, entry := range l.entries {
		if now.After(entry.windowEnd) {
			delete(l.entries, key)
			purged++
		}
	}
	l.lastPurge = now
	if purged > 0 {
		log.Debug().Int("purged", purged).Int("remaining", len(l.entries)).Msg("rate limiter purged")
	}
}

// ── Redis limiter ─────────────────────────────────────────────────────────────

// RedisLimiter shares counters across every API instance.
type RedisLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, prefix string, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, prefix: prefix, limit: limit, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	k := fmt.Sprintf("%s:%s", l.prefix, key)
	n, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		return true, 0, err
	}
	if n == 1 {
		if err := l.rdb.Expire(ctx, k, l.window).Err(); err != nil {
			return true, 0, err
		}
	}
	ttl, err := l.rdb.PTTL(ctx, k).Result()
	if err != nil || ttl < 0 {
		ttl = l.window
	}
	return n <= int64(l.limit), ttl, nil
}

// ── Middleware ────────────────────────────────────────────────────────────────

// RateLimit rejects requests over the limiter's quota with 429. Limiter
// errors are logged and the request is let through.
func RateLimit(l Limiter, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retry, err := l.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Str("request_id", c.GetString(RequestIDKey)).Msg("rate limiter no disponible")
			c.Next()
			return
		}
		if !ok {
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(msg))
			return
		}
		c.Next()
	}
}

// LoginRateLimiter limits login attempts per IP per minute. Counters live in
// Redis when rdb is set, in process otherwise.
func LoginRateLimiter(rdb *redis.Client, limit int) gin.HandlerFunc {
	var l Limiter = NewMemoryLimiter(limit, time.Minute)
	if rdb != nil {
		l = NewRedisLimiter(rdb, "ratelimit:login", limit, time.Minute)
	}
	return RateLimit(l, "Demasiados intentos de login. Intente en 1 minuto.")
}

// RateLimiter is the general API limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return RateLimit(NewMemoryLimiter(limit, window), "Demasiadas solicitudes. Intente nuevamente en un momento.")
}
