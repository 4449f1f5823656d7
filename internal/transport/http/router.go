package httptransport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chipscope/internal/platform/middleware"
	"chipscope/internal/ratelimit"
)

// NewRouter wires the public endpoints. Read routes are open (fleet data is
// operator-LAN only); the manual poll trigger requires a bearer token and is
// rate limited per client since every trigger touches the whole fleet.
func NewRouter(h *Handler, validator middleware.JWTValidator, pollLimiter *ratelimit.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recovery(h.logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(h.logger))
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/fleet/snapshot", h.handleSnapshot)
	r.Get("/fleet/miners/{id}", h.handleMiner)
	r.Get("/fleet/miners/{id}/heatmap", h.handleMinerHeatmap)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(validator, h.logger))
		r.Use(ratelimit.Middleware(pollLimiter))
		r.Post("/fleet/poll", h.handlePoll)
	})

	return r
}
