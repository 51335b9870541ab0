package service

import (
	"context"
	"fmt"

	"usersvc/internal/metrics"
	"usersvc/internal/model"
	"usersvc/internal/repository"
)

// HealthService probes store connectivity and records probe outcomes.
type HealthService interface {
	// Check verifies database connectivity and records a healthy probe row.
	Check(ctx context.Context) (*model.HealthCheck, error)
	// Ping verifies connectivity without recording anything.
	Ping(ctx context.Context) error
}

type healthService struct {
	repo repository.HealthCheckRepository
}

// NewHealthService builds a HealthService.
func NewHealthService(repo repository.HealthCheckRepository) HealthService {
	return &healthService{repo: repo}
}

func (s *healthService) Check(ctx context.Context) (*model.HealthCheck, error) {
	if err := s.repo.Ping(ctx); err != nil {
		metrics.HealthChecks.WithLabelValues(model.StatusUnhealthy).Inc()
		logger.Error().Err(err).Msg("health check failed")
		return nil, fmt.Errorf("database ping: %w", err)
	}

	check := &model.HealthCheck{Status: model.StatusHealthy}
	if err := s.repo.Create(ctx, check); err != nil {
		metrics.HealthChecks.WithLabelValues(model.StatusUnhealthy).Inc()
		logger.Error().Err(err).Msg("health check record failed")
		return nil, fmt.Errorf("record health check: %w", err)
	}

	metrics.HealthChecks.WithLabelValues(model.StatusHealthy).Inc()
	return check, nil
}

func (s *healthService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
