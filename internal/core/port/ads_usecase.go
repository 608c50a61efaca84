package port

import (
	"context"
	"time"

	"sponsored-ads/internal/core/domain"
)

// AdsUseCase defines the business operations exposed by the sponsored
// listings engine. This interface is the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
type AdsUseCase interface {
	// AllocateSponsored selects up to k sponsored placements for a
	// free-text search query. An empty query returns an empty slice.
	// The call performs no writes; placements are advisory until a
	// click is charged.
	AllocateSponsored(ctx context.Context, query string, k int) ([]domain.Placement, error)

	// ChargeClick converts an accepted click into a durable charge
	// against the campaign: rate-limit gate, idempotency replay check,
	// budget validation and an atomic spend increment with audit rows.
	ChargeClick(ctx context.Context, req ClickReq) (*ChargeResult, error)

	// CreateCampaign creates a campaign in DRAFT state owned by the
	// acting seller, with its initial keyword list and targets.
	CreateCampaign(ctx context.Context, actor domain.Actor, req CreateCampaignReq) (*CampaignView, error)

	// GetCampaign returns a campaign with its targets. The actor must
	// own the campaign or be an admin.
	GetCampaign(ctx context.Context, actor domain.Actor, id int64) (*CampaignView, error)

	// UpdateCampaign applies a partial edit. When Targets is non-nil
	// the target list is replaced wholesale.
	UpdateCampaign(ctx context.Context, actor domain.Actor, id int64, req UpdateCampaignReq) (*CampaignView, error)

	// EndCampaign soft-retires a campaign by moving it to ENDED.
	// Campaigns are never hard-deleted.
	EndCampaign(ctx context.Context, actor domain.Actor, id int64) error

	// GetStats returns aggregated click counts and spend for the
	// specified campaign (optional) and time period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// ResetDailySpend zeroes spent_today on all campaigns and returns
	// the number of campaigns touched. Admin only; invoked by the
	// external daily reset job.
	ResetDailySpend(ctx context.Context, actor domain.Actor) (int64, error)
}

// ClickReq carries one click-charge attempt.
type ClickReq struct {
	CampaignID     int64
	ProductID      int64
	Cost           int64
	IdempotencyKey string
	IP             string
	UserAgent      string
}

// ChargeResult reports the outcome of an accepted charge. When
// AlreadyProcessed is set the request was an idempotent replay and no
// new charge was recorded; SpentToday and Remaining are then zero.
type ChargeResult struct {
	AlreadyProcessed bool
	SpentToday       int64
	Remaining        int64
}

// TargetReq is one (product, weight) pair in a campaign edit.
type TargetReq struct {
	ProductID int64
	Weight    int32
}

// CreateCampaignReq carries the fields of a new campaign. Keywords is a
// comma-separated list; it is lowercased before storage.
type CreateCampaignReq struct {
	Name        string
	DailyBudget int64
	CPCMax      int64
	Keywords    string
	Targets     []TargetReq
}

// UpdateCampaignReq is a partial campaign edit. Nil fields are left
// untouched. A non-nil Targets replaces the target list wholesale.
type UpdateCampaignReq struct {
	Name        *string
	DailyBudget *int64
	CPCMax      *int64
	Keywords    *string
	Status      *domain.CampaignStatus
	Targets     *[]TargetReq
}

// CampaignView is a campaign together with its targets, returned by
// the campaign-management operations.
type CampaignView struct {
	Campaign domain.Campaign
	Targets  []domain.AdTarget
}

// StatsResp aggregates click events over a period. Spend sums charged
// costs in integer currency units.
type StatsResp struct {
	Clicks int64
	Spend  int64
}

type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}
