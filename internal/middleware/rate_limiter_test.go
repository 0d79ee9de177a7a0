package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_WindowResets(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(2, time.Minute)
	l.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, _, err := l.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, retry, err := l.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retry)

	ok, _, _ = l.Allow(ctx, "10.0.0.2")
	assert.True(t, ok, "counters are per key")

	now = now.Add(time.Minute + time.Second)
	ok, _, _ = l.Allow(ctx, "10.0.0.1")
	assert.True(t, ok, "a new window starts after expiry")
}

func TestMemoryLimiter_PurgesExpiredEntries(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter(1, time.Minute)
	l.now = func() time.Time { return now }

	_, _, _ = l.Allow(context.Background(), "a")
	_, _, _ = l.Allow(context.Background(), "b")
	now = now.Add(purgeInterval + time.Second)
	_, _, _ = l.Allow(context.Background(), "c")

	l.mu.Lock()
	defer l.mu.Unlock()
	assert.Len(t, l.entries, 1)
	assert.Contains(t, l.entries, "c")
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return false, 0, errors.New("redis caido")
}

func limitedRouter(l Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", RateLimit(l, "Demasiados intentos"), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func post(r http.Handler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "192.0.2.10:1234"
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_TooManyRequests(t *testing.T) {
	r := limitedRouter(NewMemoryLimiter(1, time.Minute))

	assert.Equal(t, http.StatusOK, post(r).Code)
	w := post(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), "Demasiados intentos")
}

func TestRateLimit_FailsOpen(t *testing.T) {
	r := limitedRouter(failingLimiter{})
	assert.Equal(t, http.StatusOK, post(r).Code)
}

func TestLoginRateLimiter_NilRedisUsesMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", LoginRateLimiter(nil, 2), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, post(r).Code)
	assert.Equal(t, http.StatusOK, post(r).Code)
	assert.Equal(t, http.StatusTooManyRequests, post(r).Code)
}
