package services

import (
	"context"
	"time"
)

// RetryPolicy bounds an operation to MaxAttempts tries. Backoff returns the delay after a
// failed attempt (1-based); no delay follows the final attempt.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
	Sleep       func(ctx context.Context, d time.Duration) error
	OnFailure   func(attempt int, err error, delay time.Duration)
}

// RetryOutcome describes how a retried operation finished
type RetryOutcome[T any] struct {
	Value    T
	Attempts int
	Fallback bool
	LastErr  error
}

// ExponentialBackoff doubles base after every failed attempt: base, 2*base, 4*base...
func ExponentialBackoff(base time.Duration) func(attempt int) time.Duration {
	return func(attempt int) time.Duration {
		if attempt < 1 {
			attempt = 1
		}
		return base << (attempt - 1)
	}
}

// SleepContext waits for d or until ctx is done
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Retry runs op until it succeeds or the policy is exhausted, then answers with fallback.
// A cancelled context stops retrying early and also yields the fallback.
func Retry[T any](ctx context.Context, policy RetryPolicy, op func(ctx context.Context, attempt int) (T, error), fallback func(lastErr error) T) RetryOutcome[T] {
	maxAttempts := policy.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	sleep := policy.Sleep
	if sleep == nil {
		sleep = SleepContext
	}

	var lastErr error
	attempt := 0
	for attempt < maxAttempts {
		attempt++

		value, err := op(ctx, attempt)
		if err == nil {
			return RetryOutcome[T]{Value: value, Attempts: attempt}
		}
		lastErr = err

		var delay time.Duration
		if attempt < maxAttempts && policy.Backoff != nil {
			delay = policy.Backoff(attempt)
		}
		if policy.OnFailure != nil {
			policy.OnFailure(attempt, err, delay)
		}
		if attempt == maxAttempts {
			break
		}
		if err := sleep(ctx, delay); err != nil {
			lastErr = err
			break
		}
	}

	return RetryOutcome[T]{Value: fallback(lastErr), Attempts: attempt, Fallback: true, LastErr: lastErr}
}
