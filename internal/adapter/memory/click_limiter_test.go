package memory

import (
	"context"
	"testing"
	"time"
)

// TestClickLimiterWindow checks the 3-per-30s contract: the fourth
// request inside the window is rejected, and a request after the
// window has passed starts a fresh count.
func TestClickLimiterWindow(t *testing.T) {
	l := NewClickLimiter(3, 30*time.Second)
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		ok, err := l.Allow(ctx, 1, "203.0.113.7")
		if err != nil {
			t.Fatalf("Allow error: %v", err)
		}
		if !ok {
			t.Fatalf("request %d should be allowed", i+1)
		}
		now = now.Add(time.Second)
	}

	ok, err := l.Allow(ctx, 1, "203.0.113.7")
	if err != nil {
		t.Fatalf("Allow error: %v", err)
	}
	if ok {
		t.Fatal("fourth request within the window should be rejected")
	}

	// a different key is unaffected
	if ok, _ = l.Allow(ctx, 2, "203.0.113.7"); !ok {
		t.Fatal("other campaign should not be limited")
	}
	if ok, _ = l.Allow(ctx, 1, "203.0.113.8"); !ok {
		t.Fatal("other ip should not be limited")
	}

	// past the window the counter restarts
	now = now.Add(31 * time.Second)
	if ok, _ = l.Allow(ctx, 1, "203.0.113.7"); !ok {
		t.Fatal("request after window expiry should be allowed")
	}
}

// TestClickLimiterRejectionKeepsCapacity ensures rejected requests do
// not extend the block: once the window passes, clicks flow again even
// after a burst of rejections.
func TestClickLimiterRejectionKeepsCapacity(t *testing.T) {
	l := NewClickLimiter(1, 30*time.Second)
	now := time.Unix(1_700_000_000, 0)
	l.now = func() time.Time { return now }

	ctx := context.Background()
	if ok, _ := l.Allow(ctx, 1, "ip"); !ok {
		t.Fatal("first request should be allowed")
	}
	for i := 0; i < 5; i++ {
		now = now.Add(time.Second)
		if ok, _ := l.Allow(ctx, 1, "ip"); ok {
			t.Fatal("burst request should be rejected")
		}
	}

	now = now.Add(30 * time.Second)
	if ok, _ := l.Allow(ctx, 1, "ip"); !ok {
		t.Fatal("request after window should be allowed")
	}
}

// TestClickLimiterDisabled allows everything with a non-positive limit.
func TestClickLimiterDisabled(t *testing.T) {
	l := NewClickLimiter(0, time.Second)
	for i := 0; i < 10; i++ {
		if ok, _ := l.Allow(context.Background(), 1, "ip"); !ok {
			t.Fatal("disabled limiter should always allow")
		}
	}
}
