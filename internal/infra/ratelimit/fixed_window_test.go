package ratelimit

import (
	"context"
	"testing"
	"time"

	"bookshop/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return client, server
}

func TestFixedWindowLimiter_Allow(t *testing.T) {
	client, _ := newTestClient(t)
	limiter, err := newFixedWindowLimiter(client, "test:ratelimit", 2, time.Minute)
	require.NoError(t, err)
	ctx := context.Background()

	for i, want := range []bool{true, true, false} {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.Equal(t, want, allowed, "request %d", i+1)
	}

	// other clients have their own quota
	allowed, err := limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestFixedWindowLimiter_NewWindowResets(t *testing.T) {
	client, _ := newTestClient(t)
	limiter, err := newFixedWindowLimiter(client, "test:ratelimit", 1, time.Minute)
	require.NoError(t, err)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	allowed, err := limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, allowed)

	limiter.now = func() time.Time { return base.Add(time.Minute) }
	allowed, err = limiter.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestFixedWindowLimiter_FailsClosed(t *testing.T) {
	client, server := newTestClient(t)
	limiter, err := newFixedWindowLimiter(client, "test:ratelimit", 1, time.Second)
	require.NoError(t, err)
	server.Close()

	allowed, err := limiter.Allow(context.Background(), "ip")
	assert.Error(t, err)
	assert.False(t, allowed)
}

func TestNewFixedWindowLimiter(t *testing.T) {
	client, _ := newTestClient(t)

	disabled, err := NewFixedWindowLimiter(client, &config.Config{})
	require.NoError(t, err)
	assert.Nil(t, disabled)

	cfg := &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Limit: 0, Window: time.Minute}}
	_, err = NewFixedWindowLimiter(client, cfg)
	assert.Error(t, err)

	cfg.RateLimit.Limit = 100
	limiter, err := NewFixedWindowLimiter(client, cfg)
	require.NoError(t, err)
	assert.Equal(t, 100, limiter.Limit())
	assert.Equal(t, time.Minute, limiter.Window())
}
