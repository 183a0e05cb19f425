package ratelimit

import (
	"context"
	"time"

	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// Limiter decides whether an event identified by key is within its rate limit.
type Limiter interface {
	Allow(ctx context.Context, key string, window time.Duration, max int) (allowed bool, remaining int, reset time.Time, err error)
}

// MemoryLimiter is a fixed-window limiter backed by ulule/limiter's in-memory store.
type MemoryLimiter struct {
	Store limiter.Store
}

// NewMemoryLimiter constructs a limiter with a fresh in-memory store.
func NewMemoryLimiter() MemoryLimiter {
	return MemoryLimiter{Store: memory.NewStore()}
}

// Allow registers an event for the given key and returns whether it is within the limit.
func (l MemoryLimiter) Allow(ctx context.Context, key string, window time.Duration, max int) (bool, int, time.Time, error) {
	if l.Store == nil || max <= 0 || window <= 0 {
		return true, max, time.Now().Add(window), nil
	}
	rate := limiter.Rate{Period: window, Limit: int64(max)}
	lctx, err := l.Store.Get(ctx, key, rate)
	if err != nil {
		return true, 0, time.Time{}, err
	}
	return !lctx.Reached, int(lctx.Remaining), time.Unix(lctx.Reset, 0), nil
}
