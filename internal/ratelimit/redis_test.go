package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLimiter(t *testing.T, cfg Config) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisLimiter(client, cfg, "test"), mr
}

func TestRedisLimiter_Windowing(t *testing.T) {
	cfg := Config{Window: time.Minute, Max: 3, Message: "slow down"}
	l, mr := newRedisLimiter(t, cfg)
	ctx := context.Background()

	for i := 0; i < cfg.Max; i++ {
		d, err := l.Check(ctx, "203.0.113.7")
		require.NoError(t, err)
		require.True(t, d.Allowed, "call %d should be admitted", i+1)
		assert.Equal(t, cfg.Max-i-1, d.Remaining)
	}

	d, err := l.Check(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, "slow down", d.Message)

	// a fresh window readmits
	mr.FastForward(time.Minute + time.Second)
	d, err = l.Check(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestRedisLimiter_CounterAlwaysExpires(t *testing.T) {
	cfg := Config{Window: time.Minute, Max: 3}
	l, mr := newRedisLimiter(t, cfg)

	_, err := l.Check(context.Background(), "203.0.113.7")
	require.NoError(t, err)

	// increment and expiry land atomically, a counter without a TTL
	// would rate-limit its identifier forever
	ttl := mr.TTL("ratelimit:test:203.0.113.7")
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestRedisLimiter_PerIdentifierIsolation(t *testing.T) {
	cfg := Config{Window: time.Minute, Max: 1, Message: "slow down"}
	l, _ := newRedisLimiter(t, cfg)
	ctx := context.Background()

	d, err := l.Check(ctx, "203.0.113.7")
	require.NoError(t, err)
	require.True(t, d.Allowed)

	d, err = l.Check(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	d, err = l.Check(ctx, "198.51.100.9")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}
