// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/artcine/internal/platform/constants"
)

// RedisAttemptLimiter implements [AttemptLimiter] with one counter per
// username in Redis.
//
// Each failure increments the counter and restarts its TTL, so a username is
// blocked once it reaches maxAttempts failures with no more than window
// between consecutive ones. A successful login clears the counter.
type RedisAttemptLimiter struct {
	client      redis.Cmdable
	maxAttempts int64
	window      time.Duration
}

// NewRedisAttemptLimiter creates a new Redis-backed [AttemptLimiter].
func NewRedisAttemptLimiter(client redis.Cmdable, maxAttempts int, window time.Duration) *RedisAttemptLimiter {
	return &RedisAttemptLimiter{
		client:      client,
		maxAttempts: int64(maxAttempts),
		window:      window,
	}
}

func attemptsKey(username string) string {
	return constants.RedisPrefixLoginAttempts + username
}

/*
Allow reports whether another attempt is permitted for username.

Returns:
  - bool: false once the failure count has reached the limit
  - time.Duration: time left on the counter when blocked
  - error: Connectivity errors
*/
func (limiter *RedisAttemptLimiter) Allow(ctx context.Context, username string) (bool, time.Duration, error) {
	key := attemptsKey(username)

	count, err := limiter.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, 0, nil
		}
		return false, 0, fmt.Errorf("redis_login_attempts_get_failed: %w", err)
	}

	if count < limiter.maxAttempts {
		return true, 0, nil
	}

	retryAfter, err := limiter.client.TTL(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("redis_login_attempts_ttl_failed: %w", err)
	}
	if retryAfter < 0 {
		retryAfter = limiter.window
	}

	return false, retryAfter, nil
}

// RecordFailure increments the failure counter and restarts its window.
func (limiter *RedisAttemptLimiter) RecordFailure(ctx context.Context, username string) error {
	key := attemptsKey(username)

	_, err := limiter.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, limiter.window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_login_attempts_incr_failed: %w", err)
	}
	return nil
}

// Reset clears the failure counter.
func (limiter *RedisAttemptLimiter) Reset(ctx context.Context, username string) error {
	if err := limiter.client.Del(ctx, attemptsKey(username)).Err(); err != nil {
		return fmt.Errorf("redis_login_attempts_reset_failed: %w", err)
	}
	return nil
}
