package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// checkScript bumps the window counter and stamps its expiry in one
// atomic step, so a crash can never leave a counter without a TTL.
var checkScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {count, redis.call("PTTL", KEYS[1])}
`)

// RedisLimiter keeps fixed-window counters in Redis so that instances of
// the service share one admission budget per identifier. Expiry is owned
// by Redis; no sweeping is needed.
type RedisLimiter struct {
	client *redis.Client
	cfg    Config
	prefix string
}

func NewRedisLimiter(client *redis.Client, cfg Config, prefix string) *RedisLimiter {
	return &RedisLimiter{client: client, cfg: cfg, prefix: prefix}
}

func (l *RedisLimiter) Check(ctx context.Context, identifier string) (Decision, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", l.prefix, identifier)

	reply, err := checkScript.Run(ctx, l.client, []string{key}, l.cfg.Window.Milliseconds()).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit check: %w", err)
	}
	if len(reply) != 2 {
		return Decision{}, fmt.Errorf("ratelimit check: unexpected reply %v", reply)
	}

	count := reply[0]
	ttl := time.Duration(reply[1]) * time.Millisecond
	if ttl < 0 {
		ttl = l.cfg.Window
	}
	reset := time.Now().Add(ttl)

	if count > int64(l.cfg.Max) {
		return Decision{
			Allowed:   false,
			Limit:     l.cfg.Max,
			Remaining: 0,
			Reset:     reset,
			Message:   l.cfg.Message,
		}, nil
	}

	return Decision{
		Allowed:   true,
		Limit:     l.cfg.Max,
		Remaining: l.cfg.Max - int(count),
		Reset:     reset,
	}, nil
}
