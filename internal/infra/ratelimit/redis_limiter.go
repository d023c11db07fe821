package ratelimit

import (
	"context"
	"time"

	"vidtube/config"
	"vidtube/internal/domain/service"
	"vidtube/internal/errors"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login_fail:"

// failureScript increments the failure counter and starts the window on the first failure only.
var failureScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`)

// redisLimiter counts failures per identifier in a fixed window.
// Redis errors deny the attempt rather than silently allowing it.
type redisLimiter struct {
	client      redis.Cmdable
	maxAttempts int64
	window      time.Duration
}

// NewRedisLimiter returns a LoginLimiter allowing maxAttempts failures per window.
func NewRedisLimiter(client redis.Cmdable, maxAttempts int, window time.Duration) service.LoginLimiter {
	return &redisLimiter{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

// NewLoginLimiter builds the limiter selected by configuration.
func NewLoginLimiter(cfg *config.Config, client *redis.Client) service.LoginLimiter {
	throttle := cfg.Auth.LoginThrottle

	return NewRedisLimiter(client, throttle.MaxAttempts, throttle.Window)
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.client.Get(ctx, keyPrefix+key).Int64()
	if errors.Is(err, redis.Nil) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "login limiter check %q", key)
	}

	return count < l.maxAttempts, nil
}

func (l *redisLimiter) RecordFailure(ctx context.Context, key string) error {
	err := failureScript.Run(ctx, l.client, []string{keyPrefix + key}, l.window.Milliseconds()).Err()
	if err != nil {
		return errors.Wrapf(err, "login limiter record %q", key)
	}

	return nil
}

func (l *redisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, keyPrefix+key).Err(); err != nil {
		return errors.Wrapf(err, "login limiter reset %q", key)
	}

	return nil
}

type noopLimiter struct{}

// NewNoopLimiter returns a LoginLimiter that never throttles.
func NewNoopLimiter() service.LoginLimiter {
	return noopLimiter{}
}

func (noopLimiter) Allow(context.Context, string) (bool, error) { return true, nil }

func (noopLimiter) RecordFailure(context.Context, string) error { return nil }

func (noopLimiter) Reset(context.Context, string) error { return nil }
