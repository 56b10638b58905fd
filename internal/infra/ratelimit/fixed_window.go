// Package ratelimit implements a Redis-backed fixed window request limiter.
package ratelimit

import (
	"context"
	"strconv"
	"strings"
	"time"

	"bookshop/config"
	"bookshop/internal/errors"

	"github.com/redis/go-redis/v9"
)

var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

const redisTimeout = 2 * time.Second

// FixedWindowLimiter limits requests per key in a fixed time window shared by all instances.
type FixedWindowLimiter struct {
	limit  int
	window time.Duration

	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewFixedWindowLimiter creates a limiter from the rateLimit section.
// It returns nil when rate limiting is disabled.
func NewFixedWindowLimiter(client *redis.Client, cfg *config.Config) (*FixedWindowLimiter, error) {
	if cfg.RateLimit == nil || !cfg.RateLimit.Enabled {
		return nil, nil //nolint:nilnil // a nil limiter means disabled
	}

	return newFixedWindowLimiter(client, cfg.Redis.KeyPrefix+":ratelimit", cfg.RateLimit.Limit, cfg.RateLimit.Window)
}

func newFixedWindowLimiter(client *redis.Client, prefix string, limit int, window time.Duration) (*FixedWindowLimiter, error) {
	if limit <= 0 || window <= 0 {
		return nil, errors.New("rate limiter requires positive limit and window")
	}
	if client == nil {
		return nil, errors.New("rate limiter requires a redis client")
	}

	return &FixedWindowLimiter{
		limit:  limit,
		window: window,
		client: client,
		prefix: prefix,
		now:    time.Now,
	}, nil
}

// Allow reports whether key is within quota. Redis failures are returned
// so callers can fail closed.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		key = "unknown"
	}

	windowMs := l.window.Milliseconds()
	slot := l.now().UTC().UnixMilli() / windowMs
	redisKey := l.prefix + ":" + key + ":" + strconv.FormatInt(slot, 10)

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	count, err := fixedWindowScript.Run(ctx, l.client, []string{redisKey}, windowMs).Int64()
	if err != nil {
		return false, errors.Wrap(err, "run rate limit script")
	}

	return count <= int64(l.limit), nil
}

// Limit returns the number of requests allowed per window.
func (l *FixedWindowLimiter) Limit() int {
	return l.limit
}

// Window returns the window length.
func (l *FixedWindowLimiter) Window() time.Duration {
	return l.window
}
