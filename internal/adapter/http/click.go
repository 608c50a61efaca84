package httpadapter

import (
	"encoding/json"
	"net/http"

	"sponsored-ads/internal/core/port"
)

type clickRequest struct {
	CampaignID     int64  `json:"campaignId" validate:"required"`
	ProductID      int64  `json:"productId" validate:"required"`
	Cost           int64  `json:"cost" validate:"required,gt=0"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type clickResponse struct {
	OK         bool   `json:"ok"`
	Message    string `json:"message,omitempty"`
	SpentToday *int64 `json:"spentToday,omitempty"`
	Remaining  *int64 `json:"remaining,omitempty"`
}

// handleClick charges a campaign for a click on one of its sponsored
// placements. Missing fields yield 400, rate-limited requests 429, an
// unknown campaign 404 and insufficient headroom 409. A replay with a
// previously seen idempotency key returns 200 with
// message "already_processed" and no new charge.
func (h *Handler) handleClick(w http.ResponseWriter, r *http.Request) {
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	result, err := h.svc.ChargeClick(r.Context(), port.ClickReq{
		CampaignID:     req.CampaignID,
		ProductID:      req.ProductID,
		Cost:           req.Cost,
		IdempotencyKey: req.IdempotencyKey,
		IP:             clientIP(r),
		UserAgent:      r.UserAgent(),
	})
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}

	if result.AlreadyProcessed {
		h.writeJSON(w, http.StatusOK, clickResponse{OK: true, Message: "already_processed"})
		return
	}
	h.writeJSON(w, http.StatusOK, clickResponse{
		OK:         true,
		SpentToday: &result.SpentToday,
		Remaining:  &result.Remaining,
	})
}
