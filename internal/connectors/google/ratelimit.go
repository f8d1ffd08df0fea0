package google

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// ServiceType identifies a Google API service for rate limiting purposes.
type ServiceType string

const (
	// ServiceDocs is the Google Docs API service.
	ServiceDocs ServiceType = "docs"
	// ServiceDrive is the Google Drive API service.
	ServiceDrive ServiceType = "drive"
)

// defaultBackoff is used when a 429 carries no Retry-After.
const defaultBackoff = 60 * time.Second

// RateLimitConfig holds rate limiting configuration for a service.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate limit.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimits provides conservative defaults for each Google service.
var DefaultRateLimits = map[ServiceType]RateLimitConfig{
	ServiceDocs:  {RequestsPerSecond: 5.0, BurstSize: 5},  // 300 reads/min/user
	ServiceDrive: {RequestsPerSecond: 8.0, BurstSize: 10}, // Google allows 10/sec/user
}

// RateLimiter provides rate limiting for Google API requests.
// It uses a token bucket with a backoff window after 429 responses.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
	now     func() time.Time
}

// NewRateLimiter creates a rate limiter with the defaults for service.
func NewRateLimiter(service ServiceType) *RateLimiter {
	cfg, ok := DefaultRateLimits[service]
	if !ok {
		cfg = RateLimitConfig{RequestsPerSecond: 5.0, BurstSize: 10}
	}
	return NewRateLimiterWithConfig(cfg)
}

// NewRateLimiterWithConfig creates a rate limiter with custom configuration.
func NewRateLimiterWithConfig(cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
		now:     time.Now,
	}
}

// Wait blocks until a request can be made without exceeding the rate limit.
// It also respects any backoff period set by RecordRateLimitError.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if delay := r.backoffRemaining(); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return r.limiter.Wait(ctx)
}

// RecordRateLimitError starts a backoff window after a 429 response.
// A non-positive retryAfterSeconds uses the default backoff.
func (r *RateLimiter) RecordRateLimitError(retryAfterSeconds int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	backoff := defaultBackoff
	if retryAfterSeconds > 0 {
		backoff = time.Duration(retryAfterSeconds) * time.Second
	}
	r.retryAt = r.now().Add(backoff)
}

// Allow reports whether a request can be made immediately.
func (r *RateLimiter) Allow() bool {
	if r.backoffRemaining() > 0 {
		return false
	}
	return r.limiter.Allow()
}

func (r *RateLimiter) backoffRemaining() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAt.Sub(r.now())
}
