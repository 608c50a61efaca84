package port

import "context"

// ClickLimiter bounds the rate of click-charge attempts from one
// network origin against one campaign, ahead of any budget check.
// Implementations decide the window scope: the Redis adapter enforces
// the limit cluster-wide, the in-memory adapter per process.
type ClickLimiter interface {
	// Allow reports whether the (campaignID, ip) pair may proceed.
	// A rejected request must not consume window capacity.
	Allow(ctx context.Context, campaignID int64, ip string) (bool, error)
}
