// Package ratelimit counts requests per client in fixed windows stored in Redis.
package ratelimit

import (
	"context"
	"time"

	"booking/config"
	"booking/internal/errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "booking:ratelimit:"

// ErrStoreUnavailable is returned when the counter store cannot be reached.
var ErrStoreUnavailable = errors.New("rate limit store unavailable")

// Decision is the outcome of counting one request.
type Decision struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetIn   time.Duration
}

// Limiter enforces a request budget per key using Redis counters.
type Limiter struct {
	redis  redis.UniversalClient
	max    int64
	window time.Duration
}

// NewLimiter creates a Limiter from the rateLimit config section.
func NewLimiter(client redis.UniversalClient, cfg *config.Config) *Limiter {
	return &Limiter{
		redis:  client,
		max:    cfg.RateLimit.Max,
		window: cfg.RateLimit.Window,
	}
}

// Allow counts one request for key and reports whether it fits the current window.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	count, ttl, err := l.increment(ctx, keyPrefix+key)
	if err != nil {
		return Decision{}, err
	}
	if ttl < 0 {
		ttl = l.window
	}

	return Decision{
		Allowed:   count <= l.max,
		Limit:     l.max,
		Remaining: max(l.max-count, 0),
		ResetIn:   ttl,
	}, nil
}

// increment bumps the counter and opens its window in one MULTI/EXEC.
// EXPIRE NX also repairs a counter left without a TTL, so no key outlives its window.
func (l *Limiter) increment(ctx context.Context, key string) (int64, time.Duration, error) {
	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	_, err := l.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, l.window)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, errors.Wrap(ErrStoreUnavailable, err.Error())
	}

	return incr.Val(), ttl.Val(), nil
}
