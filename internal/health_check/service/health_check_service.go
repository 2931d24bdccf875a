package service

import (
	"context"
	"time"
)

// Pinger is the connection probe the readiness check depends on.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheckService reports service readiness.
type HealthCheckService struct {
	database Pinger
}

// NewHealthCheckService creates a new instance of HealthCheckService.
func NewHealthCheckService(database Pinger) *HealthCheckService {
	return &HealthCheckService{
		database: database,
	}
}

// CheckReadiness verifies the record store connection is live.
func (s *HealthCheckService) CheckReadiness(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.database.Ping(ctx)
}
