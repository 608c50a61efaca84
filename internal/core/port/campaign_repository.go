package port

import (
	"context"
	"errors"

	"sponsored-ads/internal/core/domain"
)

var (
	// ErrInvalidInput is returned when request fields are missing or malformed.
	ErrInvalidInput = errors.New("invalid input")
	// ErrCampaignNotFound is returned when a referenced campaign does not exist.
	ErrCampaignNotFound = errors.New("campaign not found")
	// ErrBudgetExceeded is returned when a charge would push spend past the
	// daily budget or the per-click ceiling.
	ErrBudgetExceeded = errors.New("budget exceeded")
	// ErrDuplicateClick is returned when a charge collides with an existing
	// click for the same campaign, product and idempotency key.
	ErrDuplicateClick = errors.New("duplicate click")
	// ErrRateLimited is returned when the click-frequency guard rejects
	// the request.
	ErrRateLimited = errors.New("rate limited")
	// ErrForbidden is returned when the actor may not manage the campaign.
	ErrForbidden = errors.New("forbidden")
)

// SponsorCandidate is an eligible campaign with its loaded targets.
type SponsorCandidate struct {
	Campaign domain.Campaign
	Targets  []domain.AdTarget
}

// CampaignRepository defines the persistence layer for the engine. It
// is an outbound port in hexagonal architecture. Implementations must
// enforce the budget invariant atomically: ChargeClick may never let
// spent_today exceed daily_budget, regardless of concurrent callers.
type CampaignRepository interface {
	// GetSponsorCandidates returns up to limit ACTIVE campaigns whose
	// keyword list contains the (lowercased) query, each with its
	// targets. Budget filtering is left to the caller.
	GetSponsorCandidates(ctx context.Context, query string, limit int) ([]SponsorCandidate, error)

	// GetCampaign returns a campaign by id, or (nil, nil) when absent.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	// GetTargets returns the campaign's targets.
	GetTargets(ctx context.Context, campaignID int64) ([]domain.AdTarget, error)

	// FindClickByKey returns an existing click for the same campaign,
	// product and idempotency key, or (nil, nil) when none exists.
	FindClickByKey(ctx context.Context, campaignID, productID int64, key string) (*domain.AdClick, error)

	// ChargeClick atomically increments the campaign's spend, inserts
	// the click and appends the ledger entry. The increment is
	// conditional on spent_today + cost <= daily_budget; when the
	// condition fails ErrBudgetExceeded is returned and nothing is
	// written. A collision on the idempotency key returns
	// ErrDuplicateClick. On success the new spent_today is returned.
	ChargeClick(ctx context.Context, click *domain.AdClick, entry *domain.LedgerEntry) (int64, error)

	// CreateCampaign inserts the campaign and its targets, assigning
	// the campaign id.
	CreateCampaign(ctx context.Context, c *domain.Campaign, targets []domain.AdTarget) error
	// UpdateCampaign persists the campaign's mutable fields.
	UpdateCampaign(ctx context.Context, c *domain.Campaign) error
	// ReplaceTargets deletes all targets of the campaign and inserts
	// the new list in one transaction.
	ReplaceTargets(ctx context.Context, campaignID int64, targets []domain.AdTarget) error

	// GetStats returns aggregated click statistics for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// ResetDailySpend zeroes spent_today on all campaigns and returns
	// the number of rows touched. Invoked by the external daily job.
	ResetDailySpend(ctx context.Context) (int64, error)
}
