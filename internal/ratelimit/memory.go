package ratelimit

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	count int
	reset time.Time
}

// MemoryLimiter is a process-local fixed-window counter map. Expired
// entries are reclaimed lazily on the next check, there is no sweeper
// goroutine. Counters do not coordinate across process instances; use the
// Redis limiter for multi-instance deployments.
type MemoryLimiter struct {
	cfg     Config
	mu      sync.Mutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:     cfg,
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

func (l *MemoryLimiter) Check(_ context.Context, identifier string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, ok := l.entries[identifier]
	if !ok || entry.reset.Before(now) {
		entry = &memoryEntry{count: 1, reset: now.Add(l.cfg.Window)}
		l.entries[identifier] = entry
		return Decision{
			Allowed:   true,
			Limit:     l.cfg.Max,
			Remaining: l.cfg.Max - 1,
			Reset:     entry.reset,
		}, nil
	}

	if entry.count >= l.cfg.Max {
		return Decision{
			Allowed:   false,
			Limit:     l.cfg.Max,
			Remaining: 0,
			Reset:     entry.reset,
			Message:   l.cfg.Message,
		}, nil
	}

	entry.count++
	return Decision{
		Allowed:   true,
		Limit:     l.cfg.Max,
		Remaining: l.cfg.Max - entry.count,
		Reset:     entry.reset,
	}, nil
}

// sweep drops expired windows. Called with the lock held.
func (l *MemoryLimiter) sweep(now time.Time) {
	for id, entry := range l.entries {
		if entry.reset.Before(now) {
			delete(l.entries, id)
		}
	}
}
