package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"

	"sponsored-ads/internal/core/domain"
	"sponsored-ads/internal/core/port"
	"sponsored-ads/internal/core/port/mocks"
)

func clickReq(cost int64) port.ClickReq {
	return port.ClickReq{
		CampaignID: 1,
		ProductID:  11,
		Cost:       cost,
		IP:         "203.0.113.7",
		UserAgent:  "test",
	}
}

// TestChargeMissingFields ensures invalid requests are rejected before
// any collaborator is called.
func TestChargeMissingFields(t *testing.T) {
	svc := NewAdsUseCase(mocks.NewMockCampaignRepository(t), mocks.NewMockClickLimiter(t), Config{})

	for _, req := range []port.ClickReq{
		{ProductID: 11, Cost: 10},
		{CampaignID: 1, Cost: 10},
		{CampaignID: 1, ProductID: 11},
		{CampaignID: 1, ProductID: 11, Cost: -5},
	} {
		if _, err := svc.ChargeClick(context.Background(), req); !errors.Is(err, port.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for %+v, got %v", req, err)
		}
	}
}

// TestChargeRateLimited ensures a limiter rejection stops the request
// before any database interaction.
func TestChargeRateLimited(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	limiter := mocks.NewMockClickLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(false, nil)

	svc := NewAdsUseCase(repo, limiter, Config{})

	if _, err := svc.ChargeClick(context.Background(), clickReq(10)); !errors.Is(err, port.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

// TestChargeNotFound maps a missing campaign to ErrCampaignNotFound.
func TestChargeNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	limiter := mocks.NewMockClickLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(true, nil)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(nil, nil)

	svc := NewAdsUseCase(repo, limiter, Config{})

	if _, err := svc.ChargeClick(context.Background(), clickReq(10)); !errors.Is(err, port.ErrCampaignNotFound) {
		t.Fatalf("expected ErrCampaignNotFound, got %v", err)
	}
}

// TestChargeBudgetScenario covers the headroom arithmetic: with
// dailyBudget=100, spentToday=90 and cpcMax=20, a cost of 15 exceeds
// the remaining 10 and is rejected, while a cost of 10 lands exactly
// on the budget.
func TestChargeBudgetScenario(t *testing.T) {
	campaign := &domain.Campaign{
		ID:          1,
		SellerID:    5,
		DailyBudget: 100,
		SpentToday:  90,
		CPCMax:      20,
		Status:      domain.StatusActive,
	}

	t.Run("over headroom", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		limiter := mocks.NewMockClickLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(true, nil)
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign, nil)

		svc := NewAdsUseCase(repo, limiter, Config{})
		if _, err := svc.ChargeClick(context.Background(), clickReq(15)); !errors.Is(err, port.ErrBudgetExceeded) {
			t.Fatalf("expected ErrBudgetExceeded, got %v", err)
		}
	})

	t.Run("exact headroom", func(t *testing.T) {
		repo := mocks.NewMockCampaignRepository(t)
		limiter := mocks.NewMockClickLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(true, nil)
		repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign, nil)
		repo.EXPECT().
			ChargeClick(mock.Anything, mock.AnythingOfType("*domain.AdClick"), mock.AnythingOfType("*domain.LedgerEntry")).
			Run(func(ctx context.Context, click *domain.AdClick, entry *domain.LedgerEntry) {
				if click.Cost != 10 || click.CampaignID != 1 || click.ProductID != 11 {
					t.Fatalf("unexpected click %+v", click)
				}
				if entry.SellerID != 5 || entry.Amount != 10 || entry.EntryType != domain.EntryTypeAdSpend {
					t.Fatalf("unexpected ledger entry %+v", entry)
				}
			}).
			Return(int64(100), nil)

		svc := NewAdsUseCase(repo, limiter, Config{})
		result, err := svc.ChargeClick(context.Background(), clickReq(10))
		if err != nil {
			t.Fatalf("ChargeClick error: %v", err)
		}
		if result.SpentToday != 100 || result.Remaining != 0 {
			t.Fatalf("expected spent=100 remaining=0, got %+v", result)
		}
	})
}

// TestChargeIdempotentReplay ensures a known idempotency key returns
// success without a new charge.
func TestChargeIdempotentReplay(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	limiter := mocks.NewMockClickLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(true, nil)
	repo.EXPECT().
		FindClickByKey(mock.Anything, int64(1), int64(11), "key-1").
		Return(&domain.AdClick{ID: "existing", IdempotencyKey: "key-1"}, nil)

	svc := NewAdsUseCase(repo, limiter, Config{})

	req := clickReq(10)
	req.IdempotencyKey = "key-1"
	result, err := svc.ChargeClick(context.Background(), req)
	if err != nil {
		t.Fatalf("ChargeClick error: %v", err)
	}
	if !result.AlreadyProcessed {
		t.Fatal("expected already-processed result")
	}
}

// TestChargeConcurrentDuplicate covers the race where two requests
// with the same key pass the replay lookup: the loser's unique-index
// violation is reported as an idempotent success.
func TestChargeConcurrentDuplicate(t *testing.T) {
	campaign := &domain.Campaign{ID: 1, SellerID: 5, DailyBudget: 100, CPCMax: 20, Status: domain.StatusActive}

	repo := mocks.NewMockCampaignRepository(t)
	limiter := mocks.NewMockClickLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(true, nil)
	repo.EXPECT().FindClickByKey(mock.Anything, int64(1), int64(11), "key-1").Return(nil, nil)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign, nil)
	repo.EXPECT().
		ChargeClick(mock.Anything, mock.AnythingOfType("*domain.AdClick"), mock.AnythingOfType("*domain.LedgerEntry")).
		Return(int64(0), port.ErrDuplicateClick)

	svc := NewAdsUseCase(repo, limiter, Config{})

	req := clickReq(10)
	req.IdempotencyKey = "key-1"
	result, err := svc.ChargeClick(context.Background(), req)
	if err != nil {
		t.Fatalf("ChargeClick error: %v", err)
	}
	if !result.AlreadyProcessed {
		t.Fatal("expected already-processed result")
	}
}

// TestChargeBidCeiling rejects costs above cpcMax even with plenty of
// budget remaining.
func TestChargeBidCeiling(t *testing.T) {
	campaign := &domain.Campaign{ID: 1, SellerID: 5, DailyBudget: 100000, CPCMax: 20, Status: domain.StatusActive}

	repo := mocks.NewMockCampaignRepository(t)
	limiter := mocks.NewMockClickLimiter(t)
	limiter.EXPECT().Allow(mock.Anything, int64(1), "203.0.113.7").Return(true, nil)
	repo.EXPECT().GetCampaign(mock.Anything, int64(1)).Return(campaign, nil)

	svc := NewAdsUseCase(repo, limiter, Config{})

	if _, err := svc.ChargeClick(context.Background(), clickReq(21)); !errors.Is(err, port.ErrBudgetExceeded) {
		t.Fatalf("expected ErrBudgetExceeded, got %v", err)
	}
}
