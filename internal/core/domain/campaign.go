package domain

import "time"

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	StatusDraft  CampaignStatus = "DRAFT"
	StatusActive CampaignStatus = "ACTIVE"
	StatusPaused CampaignStatus = "PAUSED"
	StatusEnded  CampaignStatus = "ENDED"
)

// Valid reports whether s is one of the known lifecycle states.
func (s CampaignStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusEnded:
		return true
	}
	return false
}

// Campaign represents a seller's sponsored-listing campaign.
// Monetary amounts are stored in integer units (e.g. kuruş/cents).
// Keywords is a lowercased, comma-joined token list; matching is a
// substring test against the search query.
type Campaign struct {
	ID          int64
	SellerID    int64
	Name        string
	Keywords    string
	DailyBudget int64
	CPCMax      int64 // per-click bid ceiling
	SpentToday  int64 // reset daily by an external job
	Status      CampaignStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive returns true if the campaign may serve placements.
func (c *Campaign) IsActive() bool { return c.Status == StatusActive }

// Remaining returns today's budget headroom. It can be negative if the
// stored spend ever exceeds the budget; callers treat <= 0 as exhausted.
func (c *Campaign) Remaining() int64 { return c.DailyBudget - c.SpentToday }

// MaxCPC returns the largest amount a single click may charge right now:
// the bid ceiling capped by the remaining daily budget.
func (c *Campaign) MaxCPC() int64 {
	if r := c.Remaining(); r < c.CPCMax {
		return r
	}
	return c.CPCMax
}
