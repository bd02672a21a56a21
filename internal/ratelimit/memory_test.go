package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(cfg Config) (*MemoryLimiter, *time.Time) {
	l := NewMemoryLimiter(cfg)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestMemoryLimiter_Windowing(t *testing.T) {
	l, now := newTestLimiter(Standard)
	ctx := context.Background()

	var last Decision
	for i := 0; i < Standard.Max; i++ {
		d, err := l.Check(ctx, "203.0.113.7")
		require.NoError(t, err)
		require.True(t, d.Allowed, "call %d should be admitted", i+1)
		last = d
	}
	assert.Equal(t, 0, last.Remaining)

	// 101st call in the same window is rejected.
	d, err := l.Check(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, Standard.Message, d.Message)
	assert.Equal(t, now.Add(Standard.Window), d.Reset)

	// After the window elapses the count starts fresh.
	*now = now.Add(Standard.Window + time.Second)
	d, err = l.Check(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, Standard.Max-1, d.Remaining)
}

func TestMemoryLimiter_PerIdentifierIsolation(t *testing.T) {
	l, _ := newTestLimiter(Strict)
	ctx := context.Background()

	for i := 0; i < Strict.Max; i++ {
		d, err := l.Check(ctx, "client-a")
		require.NoError(t, err)
		require.True(t, d.Allowed)
	}

	d, err := l.Check(ctx, "client-a")
	require.NoError(t, err)
	assert.False(t, d.Allowed)

	// A different identifier keeps its own budget.
	d, err = l.Check(ctx, "client-b")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, Strict.Max-1, d.Remaining)
}

func TestMemoryLimiter_LazySweep(t *testing.T) {
	l, now := newTestLimiter(Standard)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := l.Check(ctx, id)
		require.NoError(t, err)
	}
	assert.Len(t, l.entries, 3)

	*now = now.Add(Standard.Window + time.Second)
	_, err := l.Check(ctx, "d")
	require.NoError(t, err)

	// Expired windows were dropped on access, only the fresh one remains.
	assert.Len(t, l.entries, 1)
}

func TestMemoryLimiter_ConcurrentIncrements(t *testing.T) {
	l := NewMemoryLimiter(Config{Window: time.Minute, Max: 1000, Message: "slow down"})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 500; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Check(ctx, "shared")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	d, err := l.Check(ctx, "shared")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	// 500 concurrent + this one: no increments lost.
	assert.Equal(t, 1000-501, d.Remaining)
}
