// Package ratelimit provides client-side rate limiting for remote
// embedding APIs.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Config holds rate limiting configuration for a provider.
type Config struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultConfig is a conservative default for embedding endpoints. Both
// remote providers allow far more, but indexing runs are long and steady
// and gain nothing from bursts that risk 429 responses.
var DefaultConfig = Config{RequestsPerSecond: 5.0, BurstSize: 10}

// Limiter provides rate limiting for embedding API requests.
// It uses a token bucket with optional backoff for 429 responses.
type Limiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// New creates a limiter with the given configuration. Zero values fall
// back to DefaultConfig.
func New(cfg Config) *Limiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = DefaultConfig.RequestsPerSecond
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = DefaultConfig.BurstSize
	}

	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Wait blocks until a request can be made without exceeding the rate
// limit. It also respects any backoff period set by RecordRateLimitError.
func (l *Limiter) Wait(ctx context.Context) error {
	l.mu.Lock()
	retryAt := l.retryAt
	l.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}

	return l.limiter.Wait(ctx)
}

// RecordRateLimitError records a 429 response and sets a backoff period.
func (l *Limiter) RecordRateLimitError(retryAfterSeconds int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if retryAfterSeconds <= 0 {
		retryAfterSeconds = 60
	}

	l.retryAt = time.Now().Add(time.Duration(retryAfterSeconds) * time.Second)
}

// Allow checks if a request can be made immediately without blocking.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	retryAt := l.retryAt
	l.mu.Unlock()

	if time.Now().Before(retryAt) {
		return false
	}

	return l.limiter.Allow()
}
