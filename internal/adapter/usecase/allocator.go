package usecase

import (
	"context"
	"strings"

	"sponsored-ads/internal/core/domain"
	"sponsored-ads/internal/core/port"
)

// AllocateSponsored selects up to k sponsored placements for the query.
// Candidates are ACTIVE campaigns whose keyword list contains the
// lowercased query; campaigns without budget headroom or targets are
// skipped. Within a campaign the product is picked by weighted random
// selection, so repeated calls may surface different products. The
// call performs no writes.
func (u *AdsUseCase) AllocateSponsored(ctx context.Context, query string, k int) ([]domain.Placement, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []domain.Placement{}, nil
	}
	if k <= 0 || k > u.cfg.MaxPlacements {
		k = u.cfg.MaxPlacements
	}

	candidates, err := u.repo.GetSponsorCandidates(ctx, query, u.cfg.CandidateLimit)
	if err != nil {
		return nil, err
	}

	placements := make([]domain.Placement, 0, k)
	for i := range candidates {
		if len(placements) == k {
			break
		}
		c := &candidates[i].Campaign
		if !c.IsActive() || c.Remaining() <= 0 {
			continue
		}
		cpc := c.MaxCPC()
		if cpc <= 0 {
			continue
		}
		target, ok := u.pickTarget(candidates[i].Targets)
		if !ok {
			continue
		}
		placements = append(placements, domain.Placement{
			CampaignID: c.ID,
			ProductID:  target.ProductID,
			CPC:        cpc,
			Label:      domain.SponsoredLabel,
		})
	}
	return placements, nil
}

// pickTarget draws a uniform value in [0, totalWeight) and walks the
// target list subtracting weights until the draw goes negative. O(n)
// per call; target lists are small enough that a cumulative-weight
// index is not worth maintaining.
func (u *AdsUseCase) pickTarget(targets []domain.AdTarget) (domain.AdTarget, bool) {
	var total int64
	for _, t := range targets {
		if t.Weight > 0 {
			total += int64(t.Weight)
		}
	}
	if total <= 0 {
		return domain.AdTarget{}, false
	}
	r := u.randInt63n(total)
	for _, t := range targets {
		if t.Weight <= 0 {
			continue
		}
		r -= int64(t.Weight)
		if r < 0 {
			return t, true
		}
	}
	// unreachable while weights sum to total
	return targets[len(targets)-1], true
}

var _ port.AdsUseCase = (*AdsUseCase)(nil)
