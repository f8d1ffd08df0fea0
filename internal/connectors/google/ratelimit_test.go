package google

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateLimiter_Defaults(t *testing.T) {
	for _, svc := range []ServiceType{ServiceDocs, ServiceDrive, ServiceType("unknown")} {
		limiter := NewRateLimiter(svc)
		require.NotNil(t, limiter)
		assert.True(t, limiter.Allow(), "fresh limiter for %s should allow a request", svc)
	}
}

func TestRateLimiter_Burst(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 0.001, BurstSize: 2})

	assert.True(t, limiter.Allow())
	assert.True(t, limiter.Allow())
	assert.False(t, limiter.Allow())
}

func TestRateLimiter_RecordRateLimitError(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.RecordRateLimitError(30)
	assert.False(t, limiter.Allow())
	assert.Equal(t, 30*time.Second, limiter.backoffRemaining())

	now = now.Add(31 * time.Second)
	assert.True(t, limiter.Allow())
}

func TestRateLimiter_DefaultBackoff(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10})
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.RecordRateLimitError(0)

	assert.Equal(t, defaultBackoff, limiter.backoffRemaining())
}

func TestRateLimiter_WaitHonoursContextDuringBackoff(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10})
	limiter.RecordRateLimitError(60)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_Wait(t *testing.T) {
	limiter := NewRateLimiterWithConfig(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 1})

	require.NoError(t, limiter.Wait(context.Background()))
	require.NoError(t, limiter.Wait(context.Background()))
}
