package queries

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/service"
	"github.com/architeacher/svc-order-events/internal/shared/decorator"
)

type (
	FetchReadinessReportQuery struct{}

	FetchLivenessReportQuery struct{}

	FetchReadinessReportQueryHandler decorator.QueryHandler[FetchReadinessReportQuery, *domain.ReadinessResult]

	FetchLivenessReportQueryHandler decorator.QueryHandler[FetchLivenessReportQuery, *domain.LivenessResult]

	fetchReadinessReportQueryHandler struct {
		healthService service.HealthService
	}

	fetchLivenessReportQueryHandler struct {
		healthService service.HealthService
	}
)

func NewFetchReadinessReportQueryHandler(
	healthService service.HealthService,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) FetchReadinessReportQueryHandler {
	return decorator.ApplyQueryDecorators[FetchReadinessReportQuery, *domain.ReadinessResult](
		fetchReadinessReportQueryHandler{healthService: healthService},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func NewFetchLivenessReportQueryHandler(
	healthService service.HealthService,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) FetchLivenessReportQueryHandler {
	return decorator.ApplyQueryDecorators[FetchLivenessReportQuery, *domain.LivenessResult](
		fetchLivenessReportQueryHandler{healthService: healthService},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h fetchReadinessReportQueryHandler) Execute(
	ctx context.Context,
	_ FetchReadinessReportQuery,
) (*domain.ReadinessResult, error) {
	return h.healthService.FetchReadinessReport(ctx)
}

func (h fetchLivenessReportQueryHandler) Execute(
	ctx context.Context,
	_ FetchLivenessReportQuery,
) (*domain.LivenessResult, error) {
	return h.healthService.FetchLivenessReport(ctx)
}
