package usecase

import (
	"context"
	"strings"

	"sponsored-ads/internal/core/domain"
	"sponsored-ads/internal/core/port"
)

// CreateCampaign creates a DRAFT campaign owned by the acting seller.
func (u *AdsUseCase) CreateCampaign(ctx context.Context, actor domain.Actor, req port.CreateCampaignReq) (*port.CampaignView, error) {
	if req.Name == "" || req.DailyBudget <= 0 || req.CPCMax <= 0 {
		return nil, port.ErrInvalidInput
	}
	targets, err := buildTargets(0, req.Targets)
	if err != nil {
		return nil, err
	}
	c := &domain.Campaign{
		SellerID:    actor.SellerID,
		Name:        req.Name,
		Keywords:    normalizeKeywords(req.Keywords),
		DailyBudget: req.DailyBudget,
		CPCMax:      req.CPCMax,
		Status:      domain.StatusDraft,
	}
	if err = u.repo.CreateCampaign(ctx, c, targets); err != nil {
		return nil, err
	}
	return u.campaignView(ctx, c)
}

// GetCampaign loads a campaign with its targets for its owner or an admin.
func (u *AdsUseCase) GetCampaign(ctx context.Context, actor domain.Actor, id int64) (*port.CampaignView, error) {
	c, err := u.loadManaged(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return u.campaignView(ctx, c)
}

// UpdateCampaign applies a partial edit. A supplied target list
// replaces the existing one wholesale.
func (u *AdsUseCase) UpdateCampaign(ctx context.Context, actor domain.Actor, id int64, req port.UpdateCampaignReq) (*port.CampaignView, error) {
	c, err := u.loadManaged(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, port.ErrInvalidInput
		}
		c.Name = *req.Name
	}
	if req.DailyBudget != nil {
		if *req.DailyBudget <= 0 {
			return nil, port.ErrInvalidInput
		}
		c.DailyBudget = *req.DailyBudget
	}
	if req.CPCMax != nil {
		if *req.CPCMax <= 0 {
			return nil, port.ErrInvalidInput
		}
		c.CPCMax = *req.CPCMax
	}
	if req.Keywords != nil {
		c.Keywords = normalizeKeywords(*req.Keywords)
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return nil, port.ErrInvalidInput
		}
		c.Status = *req.Status
	}

	if err = u.repo.UpdateCampaign(ctx, c); err != nil {
		return nil, err
	}
	if req.Targets != nil {
		targets, err := buildTargets(c.ID, *req.Targets)
		if err != nil {
			return nil, err
		}
		if err = u.repo.ReplaceTargets(ctx, c.ID, targets); err != nil {
			return nil, err
		}
	}
	return u.campaignView(ctx, c)
}

// EndCampaign soft-retires the campaign. Already-ended campaigns are a
// no-op so the operation is safe to retry.
func (u *AdsUseCase) EndCampaign(ctx context.Context, actor domain.Actor, id int64) error {
	c, err := u.loadManaged(ctx, actor, id)
	if err != nil {
		return err
	}
	if c.Status == domain.StatusEnded {
		return nil
	}
	c.Status = domain.StatusEnded
	return u.repo.UpdateCampaign(ctx, c)
}

func (u *AdsUseCase) loadManaged(ctx context.Context, actor domain.Actor, id int64) (*domain.Campaign, error) {
	c, err := u.repo.GetCampaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	if !actor.CanManage(c) {
		return nil, port.ErrForbidden
	}
	return c, nil
}

func (u *AdsUseCase) campaignView(ctx context.Context, c *domain.Campaign) (*port.CampaignView, error) {
	targets, err := u.repo.GetTargets(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &port.CampaignView{Campaign: *c, Targets: targets}, nil
}

func buildTargets(campaignID int64, reqs []port.TargetReq) ([]domain.AdTarget, error) {
	targets := make([]domain.AdTarget, 0, len(reqs))
	for _, t := range reqs {
		if t.ProductID == 0 || t.Weight <= 0 {
			return nil, port.ErrInvalidInput
		}
		targets = append(targets, domain.AdTarget{
			CampaignID: campaignID,
			ProductID:  t.ProductID,
			Weight:     t.Weight,
		})
	}
	return targets, nil
}

// normalizeKeywords lowercases and trims a comma-separated keyword
// list, dropping empty tokens.
func normalizeKeywords(raw string) string {
	parts := strings.Split(strings.ToLower(raw), ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return strings.Join(tokens, ",")
}
