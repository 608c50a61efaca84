package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"sponsored-ads/internal/core/domain"
	"sponsored-ads/internal/core/port"
)

// ChargeClick turns an accepted click into a durable charge. The order
// of gates matters: rate limit first, then idempotency replay, then
// budget. The pre-check against the loaded campaign is a fast path
// only; the repository's conditional increment is the enforcement
// point for the budget invariant under concurrent clicks.
func (u *AdsUseCase) ChargeClick(ctx context.Context, req port.ClickReq) (*port.ChargeResult, error) {
	if req.CampaignID == 0 || req.ProductID == 0 || req.Cost <= 0 {
		return nil, port.ErrInvalidInput
	}

	ok, err := u.limiter.Allow(ctx, req.CampaignID, req.IP)
	if err != nil {
		return nil, fmt.Errorf("click limiter: %w", err)
	}
	if !ok {
		return nil, port.ErrRateLimited
	}

	if req.IdempotencyKey != "" {
		existing, err := u.repo.FindClickByKey(ctx, req.CampaignID, req.ProductID, req.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return &port.ChargeResult{AlreadyProcessed: true}, nil
		}
	}

	campaign, err := u.repo.GetCampaign(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrCampaignNotFound
	}
	if req.Cost > campaign.MaxCPC() {
		return nil, port.ErrBudgetExceeded
	}

	click := &domain.AdClick{
		ID:             uuid.NewString(),
		CampaignID:     req.CampaignID,
		ProductID:      req.ProductID,
		Cost:           req.Cost,
		IP:             req.IP,
		UserAgent:      req.UserAgent,
		IdempotencyKey: req.IdempotencyKey,
	}
	entry := &domain.LedgerEntry{
		ID:             uuid.NewString(),
		SellerID:       campaign.SellerID,
		EntryType:      domain.EntryTypeAdSpend,
		Amount:         req.Cost,
		Currency:       u.cfg.Currency,
		CampaignID:     req.CampaignID,
		ProductID:      req.ProductID,
		IdempotencyKey: req.IdempotencyKey,
	}

	spent, err := u.repo.ChargeClick(ctx, click, entry)
	if errors.Is(err, port.ErrDuplicateClick) {
		// a concurrent request with the same key won the race
		return &port.ChargeResult{AlreadyProcessed: true}, nil
	}
	if err != nil {
		return nil, err
	}
	return &port.ChargeResult{
		SpentToday: spent,
		Remaining:  campaign.DailyBudget - spent,
	}, nil
}
