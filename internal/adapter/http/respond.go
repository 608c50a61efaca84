package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"sponsored-ads/internal/core/port"
)

// errorResponse is the JSON error envelope. Details carries per-field
// validation messages when present.
type errorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, code string) {
	h.writeJSON(w, status, errorResponse{Error: code})
}

// writeValidationError renders a 400 with one detail entry per failed
// field.
func (h *Handler) writeValidationError(w http.ResponseWriter, err error) {
	resp := errorResponse{Error: "bad_request"}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		resp.Details = make(map[string]string, len(verrs))
		for _, fe := range verrs {
			resp.Details[fe.Field()] = "failed on '" + fe.Tag() + "' validation"
		}
	}
	h.writeJSON(w, http.StatusBadRequest, resp)
}

// writeUseCaseError maps port sentinel errors onto the endpoint error
// contract; anything unrecognized is logged and reported as a 500.
func (h *Handler) writeUseCaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidInput):
		h.writeError(w, http.StatusBadRequest, "bad_request")
	case errors.Is(err, port.ErrForbidden):
		h.writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeError(w, http.StatusNotFound, "campaign_not_found")
	case errors.Is(err, port.ErrBudgetExceeded):
		h.writeError(w, http.StatusConflict, "budget_exceeded")
	case errors.Is(err, port.ErrRateLimited):
		h.writeError(w, http.StatusTooManyRequests, "rate_limited")
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal_error")
	}
}
