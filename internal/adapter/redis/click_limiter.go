// Package redisadapter implements the ClickLimiter port on Redis so
// the click-frequency limit holds across all server instances. Keys
// carry a TTL equal to the window, so entries expire on their own.
package redisadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ClickLimiter is a fixed-window counter: the first request of a
// window creates the key with a TTL, later requests INCR it.
type ClickLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

// NewClickLimiter returns a limiter allowing limit requests per
// (campaign, ip) pair per window.
func NewClickLimiter(client *redis.Client, limit int, window time.Duration) *ClickLimiter {
	return &ClickLimiter{client: client, limit: limit, window: window}
}

// Allow implements port.ClickLimiter. Errors from Redis are returned
// to the caller rather than failing open; the charge path treats them
// as internal errors.
func (l *ClickLimiter) Allow(ctx context.Context, campaignID int64, ip string) (bool, error) {
	key := fmt.Sprintf("ads:clicks:%d:%s", campaignID, ip)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("incr %s: %w", key, err)
	}
	if n == 1 {
		if err = l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("expire %s: %w", key, err)
		}
	}
	return n <= int64(l.limit), nil
}
