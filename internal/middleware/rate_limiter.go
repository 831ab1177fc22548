package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"receipt-ledger/internal/errors"
	"receipt-ledger/internal/handlers"

	"github.com/labstack/echo/v4"
)

type clientWindow struct {
	count int
	start time.Time
}

// clientLimiter counts requests per client in fixed windows
type clientLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientWindow
	requests int
	window   time.Duration
	now      func() time.Time
}

func newClientLimiter(requests int, window time.Duration) *clientLimiter {
	return &clientLimiter{
		clients:  make(map[string]*clientWindow),
		requests: requests,
		window:   window,
		now:      time.Now,
	}
}

// allow spends one request of ip's budget. When the budget is gone it returns
// false and the time left until the window resets.
func (l *clientLimiter) allow(ip string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, exists := l.clients[ip]
	if !exists || now.Sub(w.start) >= l.window {
		w = &clientWindow{start: now}
		l.clients[ip] = w
	}

	if w.count >= l.requests {
		return false, w.start.Add(l.window).Sub(now)
	}
	w.count++
	return true, 0
}

// sweep forgets clients whose window has ended; their next request opens a new one anyway
func (l *clientLimiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for ip, w := range l.clients {
		if now.Sub(w.start) >= l.window {
			delete(l.clients, ip)
		}
	}
}

func (l *clientLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.sweep(now)
		}
	}
}

// RateLimiter allows each client IP a fixed budget of requests per window.
// Clients are keyed on c.RealIP(), so the echo IPExtractor decides which headers are trusted.
// Cleanup stops when ctx ends.
func RateLimiter(ctx context.Context, requests int, window time.Duration) echo.MiddlewareFunc {
	limiter := newClientLimiter(requests, window)
	go limiter.cleanup(ctx)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if ok, reset := limiter.allow(c.RealIP()); !ok {
				c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(reset)))
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

// retryAfterSeconds rounds up to whole seconds, at least one
func retryAfterSeconds(d time.Duration) int {
	seconds := int((d + time.Second - 1) / time.Second)
	if seconds < 1 {
		return 1
	}
	return seconds
}
