package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"sponsored-ads/internal/core/domain"
	"sponsored-ads/internal/core/port"
	"sponsored-ads/internal/core/port/mocks"
)

func activeCampaign(id int64, budget, spent, cpcMax int64) domain.Campaign {
	return domain.Campaign{
		ID:          id,
		SellerID:    id,
		DailyBudget: budget,
		SpentToday:  spent,
		CPCMax:      cpcMax,
		Status:      domain.StatusActive,
	}
}

// TestAllocateEmptyQuery ensures an empty query short-circuits without
// touching the repository.
func TestAllocateEmptyQuery(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	svc := NewAdsUseCase(repo, mocks.NewMockClickLimiter(t), Config{})

	placements, err := svc.AllocateSponsored(context.Background(), "   ", 3)
	if err != nil {
		t.Fatalf("AllocateSponsored error: %v", err)
	}
	if len(placements) != 0 {
		t.Fatalf("expected no placements, got %d", len(placements))
	}
}

// TestAllocateEligibility ensures inactive, exhausted and targetless
// campaigns never produce placements, and cpc is capped by remaining
// budget.
func TestAllocateEligibility(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	paused := activeCampaign(1, 1000, 0, 100)
	paused.Status = domain.StatusPaused
	exhausted := activeCampaign(2, 1000, 1000, 100)
	noTargets := activeCampaign(3, 1000, 0, 100)
	capped := activeCampaign(4, 1000, 950, 100) // remaining 50 < cpcMax

	candidates := []port.SponsorCandidate{
		{Campaign: paused, Targets: []domain.AdTarget{{CampaignID: 1, ProductID: 11, Weight: 1}}},
		{Campaign: exhausted, Targets: []domain.AdTarget{{CampaignID: 2, ProductID: 21, Weight: 1}}},
		{Campaign: noTargets},
		{Campaign: capped, Targets: []domain.AdTarget{{CampaignID: 4, ProductID: 41, Weight: 1}}},
	}
	repo.EXPECT().
		GetSponsorCandidates(mock.Anything, "figür", 50).
		Return(candidates, nil)

	svc := NewAdsUseCase(repo, mocks.NewMockClickLimiter(t), Config{})

	placements, err := svc.AllocateSponsored(context.Background(), "Figür", 3)
	if err != nil {
		t.Fatalf("AllocateSponsored error: %v", err)
	}
	if len(placements) != 1 {
		t.Fatalf("expected 1 placement, got %d", len(placements))
	}
	p := placements[0]
	if p.CampaignID != 4 || p.ProductID != 41 {
		t.Fatalf("unexpected placement %+v", p)
	}
	if p.CPC != 50 {
		t.Fatalf("expected cpc capped at remaining 50, got %d", p.CPC)
	}
	if p.Label != domain.SponsoredLabel {
		t.Fatalf("unexpected label %q", p.Label)
	}
}

// TestAllocateCap ensures no more than k placements are returned even
// when more campaigns are eligible.
func TestAllocateCap(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	candidates := make([]port.SponsorCandidate, 0, 5)
	for i := int64(1); i <= 5; i++ {
		candidates = append(candidates, port.SponsorCandidate{
			Campaign: activeCampaign(i, 1000, 0, 100),
			Targets:  []domain.AdTarget{{CampaignID: i, ProductID: i * 10, Weight: 1}},
		})
	}
	repo.EXPECT().
		GetSponsorCandidates(mock.Anything, "poster", 50).
		Return(candidates, nil)

	svc := NewAdsUseCase(repo, mocks.NewMockClickLimiter(t), Config{})

	placements, err := svc.AllocateSponsored(context.Background(), "poster", 3)
	if err != nil {
		t.Fatalf("AllocateSponsored error: %v", err)
	}
	if len(placements) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(placements))
	}
}

// TestAllocateWeightedSelection checks the weighted random walk picks
// targets proportionally to their weight: over many runs a weight-3
// target should win roughly three times as often as a weight-1 target.
func TestAllocateWeightedSelection(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)

	candidates := []port.SponsorCandidate{{
		Campaign: activeCampaign(1, 1000, 0, 100),
		Targets: []domain.AdTarget{
			{CampaignID: 1, ProductID: 101, Weight: 1},
			{CampaignID: 1, ProductID: 102, Weight: 3},
		},
	}}
	repo.EXPECT().
		GetSponsorCandidates(mock.Anything, "figür", 50).
		Return(candidates, nil)

	svc := NewAdsUseCase(repo, mocks.NewMockClickLimiter(t), Config{})

	counts := map[int64]int{}
	const runs = 4000
	for i := 0; i < runs; i++ {
		placements, err := svc.AllocateSponsored(context.Background(), "figür", 1)
		if err != nil {
			t.Fatalf("AllocateSponsored error: %v", err)
		}
		if len(placements) != 1 {
			t.Fatalf("expected 1 placement, got %d", len(placements))
		}
		counts[placements[0].ProductID]++
	}

	if counts[101] == 0 || counts[102] == 0 {
		t.Fatalf("both targets should be selected, got %v", counts)
	}
	ratio := float64(counts[102]) / float64(counts[101])
	if ratio < 2.2 || ratio > 4.0 {
		t.Fatalf("expected selection ratio near 3, got %.2f (%v)", ratio, counts)
	}
}

// TestPickTargetDeterministic exercises the walk boundaries with a
// stubbed random source.
func TestPickTargetDeterministic(t *testing.T) {
	svc := NewAdsUseCase(mocks.NewMockCampaignRepository(t), mocks.NewMockClickLimiter(t), Config{})
	targets := []domain.AdTarget{
		{ProductID: 1, Weight: 1},
		{ProductID: 2, Weight: 3},
	}

	for draw, want := range map[int64]int64{0: 1, 1: 2, 3: 2} {
		svc.randInt63n = func(int64) int64 { return draw }
		got, ok := svc.pickTarget(targets)
		if !ok {
			t.Fatalf("draw %d: expected a pick", draw)
		}
		if got.ProductID != want {
			t.Fatalf("draw %d: expected product %d, got %d", draw, want, got.ProductID)
		}
	}

	if _, ok := svc.pickTarget(nil); ok {
		t.Fatal("expected no pick for empty target list")
	}
}
