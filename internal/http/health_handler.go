package http

import (
	"net/http"

	"github.com/sagestone/sagestone/internal/domain"
)

// HealthHandler reports configuration and connectivity. It is registered
// outside the database guard so it can describe a missing connection string.
type HealthHandler struct {
	service domain.HealthService
}

func NewHealthHandler(service domain.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/health", h.handleHealth)
}

func (h *HealthHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := h.service.Check(r.Context())

	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, report)
}
