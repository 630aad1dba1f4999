// Package ratelimit throttles requests per client key.
//
// Local keeps one token bucket per key in process memory and suits a single
// instance. Redis counts requests in fixed windows shared by every instance
// that points at the same server.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// idleTTL is how long an unused per-key bucket is kept.
const idleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Local is an in-process Limiter with one token bucket per key.
type Local struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int
	now     func() time.Time
	sweptAt time.Time
}

// NewLocal allows rps requests per second per key with bursts of up to burst.
func NewLocal(rps float64, burst int) *Local {
	return &Local{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
}

// Allow implements Limiter. It never returns an error.
func (l *Local) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1), nil
}

// sweep drops idle buckets at most once per idleTTL. Callers hold l.mu.
func (l *Local) sweep(now time.Time) {
	if now.Sub(l.sweptAt) < idleTTL {
		return
	}
	for k, b := range l.buckets {
		if now.Sub(b.lastSeen) >= idleTTL {
			delete(l.buckets, k)
		}
	}
	l.sweptAt = now
}

// Redis is a fixed-window Limiter shared through a Redis server.
type Redis struct {
	client redis.Cmdable
	prefix string
	limit  int64
	window time.Duration
	now    func() time.Time
}

// NewRedis allows burst requests per key in each window of burst/rps seconds,
// which matches the long-run rate of a token bucket with the same settings.
func NewRedis(client redis.Cmdable, rps float64, burst int) *Redis {
	window := time.Second
	if rps > 0 {
		window = time.Duration(float64(burst) / rps * float64(time.Second))
	}
	if window < time.Second {
		window = time.Second
	}
	return &Redis{client: client, prefix: "findamechanic:ratelimit:", limit: int64(burst), window: window, now: time.Now}
}

// Allow implements Limiter.
func (r *Redis) Allow(ctx context.Context, key string) (bool, error) {
	slot := r.now().UnixNano() / int64(r.window)
	k := fmt.Sprintf("%s%s:%d", r.prefix, key, slot)

	pipe := r.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("ratelimit.Redis.Allow: %w", err)
	}
	return incr.Val() <= r.limit, nil
}
