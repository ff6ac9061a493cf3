package service

import (
	"context"

	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/ports"
)

type (
	HealthService interface {
		FetchReadinessReport(ctx context.Context) (*domain.ReadinessResult, error)
		FetchLivenessReport(ctx context.Context) (*domain.LivenessResult, error)
	}

	healthService struct {
		healthChecker ports.HealthChecker
	}
)

func NewHealthService(healthChecker ports.HealthChecker) HealthService {
	return &healthService{
		healthChecker: healthChecker,
	}
}

func (s *healthService) FetchReadinessReport(ctx context.Context) (*domain.ReadinessResult, error) {
	return s.healthChecker.CheckReadiness(ctx), nil
}

func (s *healthService) FetchLivenessReport(ctx context.Context) (*domain.LivenessResult, error) {
	return s.healthChecker.CheckLiveness(ctx), nil
}
