// Package limiter throttles repeated login attempts per account.
package limiter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter counts failed attempts within a rolling window.
type Limiter interface {
	// Allow reports whether another attempt for key is permitted.
	Allow(ctx context.Context, key string) (bool, error)
	// Hit records a failed attempt for key.
	Hit(ctx context.Context, key string) error
	// Reset clears the counter for key.
	Reset(ctx context.Context, key string) error
}

// Redis implements Limiter using a redis counter with expiry.
type Redis struct {
	client *redis.Client
	prefix string
	max    int64
	window time.Duration
}

// NewRedis constructs a redis-backed limiter allowing max attempts per window.
func NewRedis(client *redis.Client, max int64, window time.Duration) *Redis {
	return &Redis{
		client: client,
		prefix: "auth:login-attempts:",
		max:    max,
		window: window,
	}
}

// Allow reports whether key is still under the attempt limit.
func (l *Redis) Allow(ctx context.Context, key string) (bool, error) {
	n, err := l.client.Get(ctx, l.prefix+key).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return n < l.max, nil
}

// Hit increments the attempt counter for key, starting the window on the
// first failure.
func (l *Redis) Hit(ctx context.Context, key string) error {
	n, err := l.client.Incr(ctx, l.prefix+key).Result()
	if err != nil {
		return err
	}

	if n == 1 {
		return l.client.Expire(ctx, l.prefix+key, l.window).Err()
	}

	return nil
}

// Reset clears the attempt counter for key.
func (l *Redis) Reset(ctx context.Context, key string) error {
	return l.client.Del(ctx, l.prefix+key).Err()
}
