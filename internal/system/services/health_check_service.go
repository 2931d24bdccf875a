package services

import (
	"net/http"

	"github.com/commhealth/screening-record-service/internal/health_check/handler"
)

// HealthCheckService registers the health and readiness endpoints.
type HealthCheckService struct {
	healthHandler *handler.HealthHandler
}

func NewHealthCheckService(mux *http.ServeMux, healthHandler *handler.HealthHandler) *HealthCheckService {

	instance := &HealthCheckService{
		healthHandler: healthHandler,
	}
	instance.RegisterRoutes(mux)

	return instance
}

func (s *HealthCheckService) RegisterRoutes(mux *http.ServeMux) {

	mux.HandleFunc("GET /health", s.healthHandler.HandleHealth)
	mux.HandleFunc("GET /ready", s.healthHandler.HandleReadiness)
}
