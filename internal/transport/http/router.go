package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"polititrack/internal/metrics"
)

// NewRouter assembles the API router with its middleware chain and the
// /metrics endpoint.
func NewRouter(h *Handler, logger *slog.Logger, m *metrics.Metrics) chi.Router {
	r := chi.NewRouter()

	r.Use(WithRequestID)
	r.Use(WithObservability(logger, m))

	h.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// NewServer builds an HTTP server with sane defaults.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
