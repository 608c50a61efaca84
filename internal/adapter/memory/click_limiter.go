// Package memory provides a process-local ClickLimiter used when no
// Redis instance is configured. Each server instance then enforces its
// own independent limit; deployments with multiple instances should
// configure the Redis limiter instead.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type bucket struct {
	start time.Time
	count int
}

// ClickLimiter is a fixed-window counter keyed by (campaignID, ip).
// Stale buckets are dropped lazily on their next access.
type ClickLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	now     func() time.Time
	buckets map[string]bucket
}

// NewClickLimiter returns a limiter allowing limit requests per key
// per window.
func NewClickLimiter(limit int, window time.Duration) *ClickLimiter {
	return &ClickLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		buckets: map[string]bucket{},
	}
}

// Allow implements port.ClickLimiter. A request with a stale or absent
// bucket restarts the window with count 1. A full bucket rejects
// without consuming capacity; otherwise the count is incremented and
// the window timestamp refreshed.
func (l *ClickLimiter) Allow(_ context.Context, campaignID int64, ip string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}
	key := fmt.Sprintf("%d:%s", campaignID, ip)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok || now.Sub(b.start) >= l.window {
		l.buckets[key] = bucket{start: now, count: 1}
		return true, nil
	}
	if b.count >= l.limit {
		return false, nil
	}
	b.count++
	b.start = now
	l.buckets[key] = b
	return true, nil
}
