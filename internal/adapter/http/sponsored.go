package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"

	"sponsored-ads/internal/core/domain"
)

// handleSponsored returns sponsored placements for a search query. It
// is the internal surface the storefront search path calls before
// blending placements with organic results. An empty or missing query
// yields an empty list, never an error.
func (h *Handler) handleSponsored(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")

	k := 0
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "bad_request")
			return
		}
		k = parsed
	}

	placements, err := h.svc.AllocateSponsored(r.Context(), q, k)
	if err != nil {
		h.logger.Error("allocate sponsored error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	if placements == nil {
		placements = []domain.Placement{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"placements": placements})
}
