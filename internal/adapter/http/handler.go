package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"campaign-sim/internal/core/port"
	"campaign-sim/internal/metrics"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the campaign use case and a logger for structured logging.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         int((5 * time.Minute).Seconds()),
	}))

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/simulations", func(r chi.Router) {
			r.Post("/", h.handleSimulate)
			r.Get("/", h.handleListRuns)
			r.Post("/compare", h.handleCompareRuns)
			r.Get("/{id}", h.handleGetRun)
		})
		r.Post("/significance", h.handleSignificance)
		r.Post("/market/size", h.handleMarketSize)
		r.Get("/channels", h.handleChannels)
		r.Post("/channels/plan", h.handlePlan)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}
