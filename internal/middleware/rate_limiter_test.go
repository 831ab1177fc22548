package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newDirectIPEcho() *echo.Echo {
	e := echo.New()
	e.IPExtractor = echo.ExtractIPDirect()
	return e
}

func hit(e *echo.Echo, handler echo.HandlerFunc, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/expenses", nil)
	req.RemoteAddr = remoteAddr + ":40000"
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	rec := httptest.NewRecorder()
	_ = handler(e.NewContext(req, rec))
	return rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRateLimiter_BudgetPerWindow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := newDirectIPEcho()
	handler := RateLimiter(ctx, 3, 15*time.Minute)(okHandler)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(e, handler, "203.0.113.7", "").Code, "request %d", i+1)
	}

	rec := hit(e, handler, "203.0.113.7", "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
	assert.Equal(t, "900", rec.Header().Get("Retry-After"))

	// other clients keep their own budget
	assert.Equal(t, http.StatusOK, hit(e, handler, "198.51.100.2", "").Code)
}

func TestRateLimiter_IgnoresSpoofedForwardedFor(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := newDirectIPEcho()
	handler := RateLimiter(ctx, 3, 15*time.Minute)(okHandler)

	allowed := 0
	for i := 0; i < 50; i++ {
		if hit(e, handler, "198.51.100.9", fmt.Sprintf("10.0.0.%d", i)).Code == http.StatusOK {
			allowed++
		}
	}

	assert.Equal(t, 3, allowed)
}

func TestClientLimiter_FixedWindow(t *testing.T) {
	start := time.Date(2026, time.October, 17, 9, 0, 0, 0, time.UTC)
	now := start
	limiter := newClientLimiter(100, 15*time.Minute)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 100; i++ {
		ok, _ := limiter.allow("203.0.113.7")
		assert.True(t, ok, "request %d", i+1)
	}

	now = start.Add(15*time.Minute - time.Second)
	ok, reset := limiter.allow("203.0.113.7")
	assert.False(t, ok, "the budget does not refill inside the window")
	assert.Equal(t, time.Second, reset)

	now = start.Add(15 * time.Minute)
	ok, _ = limiter.allow("203.0.113.7")
	assert.True(t, ok, "a new window starts with a fresh budget")
}

func TestClientLimiter_SweepForgetsEndedWindows(t *testing.T) {
	now := time.Now()
	limiter := newClientLimiter(10, time.Minute)
	limiter.now = func() time.Time { return now }
	limiter.allow("a")
	limiter.allow("b")
	limiter.clients["a"].start = now.Add(-2 * time.Minute)

	limiter.sweep(now)

	assert.NotContains(t, limiter.clients, "a")
	assert.Contains(t, limiter.clients, "b")
}

func TestRetryAfterSeconds(t *testing.T) {
	assert.Equal(t, 1, retryAfterSeconds(0))
	assert.Equal(t, 1, retryAfterSeconds(200*time.Millisecond))
	assert.Equal(t, 2, retryAfterSeconds(1500*time.Millisecond))
	assert.Equal(t, 900, retryAfterSeconds(15*time.Minute))
}
