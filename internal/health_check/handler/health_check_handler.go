package handler

import (
	"net/http"

	"github.com/commhealth/screening-record-service/internal/health_check/service"
	"github.com/commhealth/screening-record-service/internal/system/utils"
)

// HealthHandler implements health and readiness endpoints.
type HealthHandler struct {
	healthCheckService *service.HealthCheckService
}

// NewHealthHandler creates a new instance of HealthHandler.
func NewHealthHandler(healthCheckService *service.HealthCheckService) *HealthHandler {
	return &HealthHandler{
		healthCheckService: healthCheckService,
	}
}

// HandleHealth responds to /health requests.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// HandleReadiness responds to /ready requests.
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	if err := h.healthCheckService.CheckReadiness(r.Context()); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ready"})
}
