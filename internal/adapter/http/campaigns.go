package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"sponsored-ads/internal/core/domain"
	"sponsored-ads/internal/core/port"
)

type targetRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
	Weight    int32 `json:"weight" validate:"required,gt=0"`
}

type campaignCreateRequest struct {
	Name        string          `json:"name" validate:"required"`
	DailyBudget int64           `json:"dailyBudget" validate:"required,gt=0"`
	CPCMax      int64           `json:"cpcMax" validate:"required,gt=0"`
	Keywords    string          `json:"keywords"`
	Targets     []targetRequest `json:"targets" validate:"dive"`
}

type campaignUpdateRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1"`
	DailyBudget *int64           `json:"dailyBudget" validate:"omitempty,gt=0"`
	CPCMax      *int64           `json:"cpcMax" validate:"omitempty,gt=0"`
	Keywords    *string          `json:"keywords"`
	Status      *string          `json:"status" validate:"omitempty,oneof=DRAFT ACTIVE PAUSED ENDED"`
	Targets     *[]targetRequest `json:"targets" validate:"omitempty,dive"`
}

type targetResponse struct {
	ProductID int64 `json:"productId"`
	Weight    int32 `json:"weight"`
}

type campaignResponse struct {
	ID          int64            `json:"id"`
	SellerID    int64            `json:"sellerId"`
	Name        string           `json:"name"`
	Keywords    string           `json:"keywords"`
	DailyBudget int64            `json:"dailyBudget"`
	CPCMax      int64            `json:"cpcMax"`
	SpentToday  int64            `json:"spentToday"`
	Status      string           `json:"status"`
	Targets     []targetResponse `json:"targets"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func toCampaignResponse(view *port.CampaignView) campaignResponse {
	targets := make([]targetResponse, 0, len(view.Targets))
	for _, t := range view.Targets {
		targets = append(targets, targetResponse{ProductID: t.ProductID, Weight: t.Weight})
	}
	c := view.Campaign
	return campaignResponse{
		ID:          c.ID,
		SellerID:    c.SellerID,
		Name:        c.Name,
		Keywords:    c.Keywords,
		DailyBudget: c.DailyBudget,
		CPCMax:      c.CPCMax,
		SpentToday:  c.SpentToday,
		Status:      string(c.Status),
		Targets:     targets,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toTargetReqs(reqs []targetRequest) []port.TargetReq {
	targets := make([]port.TargetReq, 0, len(reqs))
	for _, t := range reqs {
		targets = append(targets, port.TargetReq{ProductID: t.ProductID, Weight: t.Weight})
	}
	return targets
}

func campaignID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// handleCreateCampaign creates a DRAFT campaign for the acting seller.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	view, err := h.svc.CreateCampaign(r.Context(), actorFromContext(r.Context()), port.CreateCampaignReq{
		Name:        req.Name,
		DailyBudget: req.DailyBudget,
		CPCMax:      req.CPCMax,
		Keywords:    req.Keywords,
		Targets:     toTargetReqs(req.Targets),
	})
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignResponse(view))
}

// handleGetCampaign returns a campaign with targets for its owner or
// an admin.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	view, err := h.svc.GetCampaign(r.Context(), actorFromContext(r.Context()), id)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(view))
}

// handleUpdateCampaign applies a partial edit; a supplied target list
// replaces the existing one wholesale.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	var req campaignUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	update := port.UpdateCampaignReq{
		Name:        req.Name,
		DailyBudget: req.DailyBudget,
		CPCMax:      req.CPCMax,
		Keywords:    req.Keywords,
	}
	if req.Status != nil {
		status := domain.CampaignStatus(*req.Status)
		update.Status = &status
	}
	if req.Targets != nil {
		targets := toTargetReqs(*req.Targets)
		update.Targets = &targets
	}

	view, err := h.svc.UpdateCampaign(r.Context(), actorFromContext(r.Context()), id, update)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignResponse(view))
}

// handleEndCampaign soft-retires a campaign; it is never hard-deleted.
func (h *Handler) handleEndCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := campaignID(r)
	if !ok {
		h.writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	if err := h.svc.EndCampaign(r.Context(), actorFromContext(r.Context()), id); err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
