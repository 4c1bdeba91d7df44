package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"syncsolved/backend-go/internal/config"
	"syncsolved/backend-go/internal/handlers"
)

func NewRouter(cfg config.Config, api *handlers.API, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()

	// Outermost first: CORS answers preflights before anything else runs.
	r.Use(withCORS)
	r.Use(withRateLimit(cfg.RateLimitPerMin))
	r.Use(withLogging)
	r.Use(withRecovery)

	r.Get("/api/data/{type}", api.Data)
	r.Post("/api/contact", api.Contact)
	r.Get("/api/v1/health", api.Health)
	r.Handle("/metrics", metricsHandler)

	return r
}
