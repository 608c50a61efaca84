package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"log/slog"

	"sponsored-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter
// for HTTP. It holds the use case to execute business logic, a logger
// for structured logging and a validator for request bodies. Routes
// are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc      port.AdsUseCase
	logger   *slog.Logger
	validate *validator.Validate
	secret   []byte
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. The
// allocator, click and stats endpoints are open (the click endpoint is
// guarded by the rate limiter inside the use case); campaign
// management requires a bearer token signed with authSecret.
func NewHandler(svc port.AdsUseCase, logger *slog.Logger, authSecret string) *Handler {
	h := &Handler{
		svc:      svc,
		logger:   logger,
		validate: validator.New(),
		secret:   []byte(authSecret),
	}
	r := chi.NewRouter()

	r.Route("/api/v1/ads", func(r chi.Router) {
		r.Get("/sponsored", h.handleSponsored)
		r.Post("/click", h.handleClick)
		r.Get("/stats/overview", h.handleStatsOverview)

		r.Group(func(r chi.Router) {
			r.Use(h.authenticate)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Route("/campaigns/{id}", func(r chi.Router) {
				r.Get("/", h.handleGetCampaign)
				r.Patch("/", h.handleUpdateCampaign)
				r.Delete("/", h.handleEndCampaign)
			})
			r.Post("/admin/reset-spend", h.handleResetSpend)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
