// Package ratelimit throttles hub callbacks.
//
// A callback wrapped with Throttle runs only while its Limiter allows it.
// Invocations over the rate are skipped on the spot, the trigger never waits
// for a token:
//
//	// at most 10 redraws per second, bursts of 2
//	limiter := ratelimit.NewTokenBucket(10, 2)
//	h.BindFunc("changed", ratelimit.Throttle(limiter, redraw))
//
// ThrottleStop also cancels propagation for the skipped trigger, so the
// callbacks bound after it are skipped too.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter is the interface for rate limiters.
//
// All implementations must be safe for concurrent use.
type Limiter interface {
	// Allow returns true if an event can happen right now.
	// This is a non-blocking check.
	Allow(ctx context.Context) bool

	// Wait blocks until an event is allowed or context is cancelled.
	// Returns context.Canceled or context.DeadlineExceeded if cancelled.
	Wait(ctx context.Context) error
}

// TokenBucket implements a local token bucket rate limiter on top of
// golang.org/x/time/rate.
//
// The token bucket algorithm:
//   - Tokens are added at the specified rate (rps)
//   - A maximum of 'burst' tokens can accumulate
//   - Each event consumes one token
type TokenBucket struct {
	limiter *rate.Limiter
}

// NewTokenBucket creates a new token bucket rate limiter.
//
// Parameters:
//   - rps: Events per second (rate at which tokens are added)
//   - burst: Maximum burst size (maximum tokens that can accumulate)
func NewTokenBucket(rps float64, burst int) *TokenBucket {
	return &TokenBucket{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// Allow returns true if an event can happen right now.
// Consumes one token if available.
func (t *TokenBucket) Allow(ctx context.Context) bool {
	return t.limiter.Allow()
}

// Wait blocks until an event is allowed or context is cancelled.
func (t *TokenBucket) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// SetLimit updates the rate limit dynamically.
func (t *TokenBucket) SetLimit(rps float64) {
	t.limiter.SetLimit(rate.Limit(rps))
}

// SetBurst updates the burst size dynamically.
func (t *TokenBucket) SetBurst(burst int) {
	t.limiter.SetBurst(burst)
}

// Limit returns the current rate limit (events per second).
func (t *TokenBucket) Limit() float64 {
	return float64(t.limiter.Limit())
}

// Burst returns the current burst size.
func (t *TokenBucket) Burst() int {
	return t.limiter.Burst()
}

// Compile-time check
var _ Limiter = (*TokenBucket)(nil)
