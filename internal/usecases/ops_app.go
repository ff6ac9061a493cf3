package usecases

import (
	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/service"
	"github.com/architeacher/svc-order-events/internal/shared/decorator"
	"github.com/architeacher/svc-order-events/internal/usecases/queries"
)

type (
	// OpsApplication serves the operational endpoints of the subscriber.
	OpsApplication struct {
		Queries OpsQueries
	}

	OpsQueries struct {
		FetchReadinessReportQueryHandler queries.FetchReadinessReportQueryHandler
		FetchLivenessReportQueryHandler  queries.FetchLivenessReportQueryHandler
	}
)

func NewOpsApplication(
	healthService service.HealthService,
	logger infrastructure.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient decorator.MetricsClient,
) *OpsApplication {
	return &OpsApplication{
		Queries: OpsQueries{
			FetchReadinessReportQueryHandler: queries.NewFetchReadinessReportQueryHandler(
				healthService, logger, tracerProvider, metricsClient,
			),
			FetchLivenessReportQueryHandler: queries.NewFetchLivenessReportQueryHandler(
				healthService, logger, tracerProvider, metricsClient,
			),
		},
	}
}
