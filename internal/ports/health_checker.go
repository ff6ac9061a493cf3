//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"

	"github.com/architeacher/svc-order-events/internal/domain"
)

//counterfeiter:generate -o ../mocks/health_checker.go . HealthChecker
//counterfeiter:generate -o ../mocks/pinger.go . Pinger

type (
	HealthChecker interface {
		CheckReadiness(ctx context.Context) *domain.ReadinessResult
		CheckLiveness(ctx context.Context) *domain.LivenessResult
	}

	// Pinger reports whether a backing dependency is reachable.
	Pinger interface {
		Ping(ctx context.Context) error
	}
)
