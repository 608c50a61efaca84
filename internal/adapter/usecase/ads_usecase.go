package usecase

import (
	"context"
	"math/rand"

	"sponsored-ads/internal/core/domain"
	"sponsored-ads/internal/core/port"
)

const (
	defaultMaxPlacements  = 3
	defaultCandidateLimit = 50
	defaultCurrency       = "TRY"
)

// Config tunes the usecase. Zero fields fall back to defaults.
type Config struct {
	// MaxPlacements is the default number of sponsored slots per query.
	MaxPlacements int
	// CandidateLimit bounds the campaign candidate set per allocation.
	CandidateLimit int
	// Currency is the ledger currency code for click charges.
	Currency string
}

// AdsUseCase provides business logic for sponsored placement allocation
// and click charging. It orchestrates the repository and the click
// limiter to implement the AdsUseCase port.
type AdsUseCase struct {
	repo    port.CampaignRepository
	limiter port.ClickLimiter
	cfg     Config

	// randInt63n draws the weighted-selection random value. Swappable
	// in tests for deterministic picks.
	randInt63n func(n int64) int64
}

// NewAdsUseCase creates a usecase with the provided collaborators.
func NewAdsUseCase(repo port.CampaignRepository, limiter port.ClickLimiter, cfg Config) *AdsUseCase {
	if cfg.MaxPlacements <= 0 {
		cfg.MaxPlacements = defaultMaxPlacements
	}
	if cfg.CandidateLimit <= 0 {
		cfg.CandidateLimit = defaultCandidateLimit
	}
	if cfg.Currency == "" {
		cfg.Currency = defaultCurrency
	}
	return &AdsUseCase{
		repo:       repo,
		limiter:    limiter,
		cfg:        cfg,
		randInt63n: rand.Int63n,
	}
}

// GetStats returns aggregated click stats for campaigns in a period.
func (u *AdsUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	return u.repo.GetStats(ctx, req)
}

// ResetDailySpend zeroes spent_today on all campaigns. The daily reset
// is driven by an external scheduler calling the admin endpoint.
func (u *AdsUseCase) ResetDailySpend(ctx context.Context, actor domain.Actor) (int64, error) {
	if actor.Role != domain.RoleAdmin {
		return 0, port.ErrForbidden
	}
	return u.repo.ResetDailySpend(ctx)
}
