package wire

import (
	"movie-review/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireHealth(r chi.Router, healthHandler *adaptor.HealthHandler) {
	r.Get("/health", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)
}
