package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/domain/auth"
	"github.com/mrokonuzzaman040/NEIC-Gov-Project-sub001/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

type redisLimiter struct {
	client      redis.Cmdable
	prefix      string
	maxAttempts int
	window      time.Duration
}

// NewRedisClient connects to the configured Redis and verifies it answers.
func NewRedisClient(ctx context.Context, settings config.RedisSettings) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     settings.Addr,
		Password: settings.Password,
		DB:       settings.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", settings.Addr, err)
	}
	return client, nil
}

// NewRedisLimiter returns a LoginLimiter shared by every instance using the same Redis.
// Each failure increments a counter whose expiry is pushed one window forward.
func NewRedisLimiter(client redis.Cmdable, prefix string, maxAttempts int, window time.Duration) auth.LoginLimiter {
	return &redisLimiter{
		client:      client,
		prefix:      prefix,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *redisLimiter) key(identity string) string {
	return l.prefix + identity
}

func (l *redisLimiter) toStatus(failures int64, ttl time.Duration) auth.LockStatus {
	status := auth.LockStatus{Failures: int(failures)}
	if int(failures) >= l.maxAttempts {
		status.Locked = true
		status.RetryAfter = ttl
		if ttl <= 0 {
			status.RetryAfter = l.window
		}
	}
	return status
}

func (l *redisLimiter) Status(ctx context.Context, identity string) (auth.LockStatus, error) {
	key := l.key(identity)

	var getCmd *redis.StringCmd
	var ttlCmd *redis.DurationCmd
	_, err := l.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		getCmd = pipe.Get(ctx, key)
		ttlCmd = pipe.PTTL(ctx, key)
		return nil
	})
	if err != nil && !errors.Is(err, redis.Nil) {
		return auth.LockStatus{}, fmt.Errorf("failed to read login attempts: %w", err)
	}

	failures, err := getCmd.Int64()
	if errors.Is(err, redis.Nil) {
		return auth.LockStatus{}, nil
	}
	if err != nil {
		return auth.LockStatus{}, fmt.Errorf("failed to parse login attempts: %w", err)
	}
	return l.toStatus(failures, ttlCmd.Val()), nil
}

func (l *redisLimiter) RecordFailure(ctx context.Context, identity string) (auth.LockStatus, error) {
	key := l.key(identity)

	var incrCmd *redis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incrCmd = pipe.Incr(ctx, key)
		pipe.PExpire(ctx, key, l.window)
		return nil
	})
	if err != nil {
		return auth.LockStatus{}, fmt.Errorf("failed to record login failure: %w", err)
	}
	return l.toStatus(incrCmd.Val(), l.window), nil
}

func (l *redisLimiter) Reset(ctx context.Context, identity string) error {
	if err := l.client.Del(ctx, l.key(identity)).Err(); err != nil {
		return fmt.Errorf("failed to reset login attempts: %w", err)
	}
	return nil
}
