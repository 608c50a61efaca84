package httpadapter

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"sponsored-ads/internal/core/port"
)

// handleStatsOverview returns aggregated click statistics over a
// specified period. It accepts optional `from`, `to` (RFC3339
// timestamps) and `campaign_id` query parameters. If no period is
// provided, it defaults to the last 24 hours. Invalid parameters
// result in HTTP 400, internal errors in HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "bad_request")
			return
		}
	} else {
		req.From = time.Now().Add(-24 * time.Hour)
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "bad_request")
			return
		}
	} else {
		req.To = time.Now()
	}

	if cid := q.Get("campaign_id"); cid != "" {
		id, err := strconv.ParseInt(cid, 10, 64)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "bad_request")
			return
		}
		req.CampaignID = &id
	}

	stats, err := h.svc.GetStats(r.Context(), req)
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		h.writeError(w, http.StatusInternalServerError, "internal_error")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{
		"clicks": stats.Clicks,
		"spend":  stats.Spend,
	})
}

// handleResetSpend zeroes spent_today on all campaigns. The external
// daily scheduler calls this with an admin token at midnight.
func (h *Handler) handleResetSpend(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.ResetDailySpend(r.Context(), actorFromContext(r.Context()))
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"campaigns": n})
}
