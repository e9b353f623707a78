package adaptor

import (
	"net/http"

	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type HealthHandler struct {
	service usecase.HealthService
	log     *zap.Logger
}

func NewHealthHandler(service usecase.HealthService, log *zap.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		log:     log.With(zap.String("handler", "health")),
	}
}

// Live handles GET /health
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Ready handles GET /health/ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Ready(r.Context()); err != nil {
		h.log.Warn("Readiness check failed", zap.Error(err))
		utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
