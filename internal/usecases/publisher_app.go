package usecases

import (
	otelTrace "go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/service"
	"github.com/architeacher/svc-order-events/internal/shared/decorator"
	"github.com/architeacher/svc-order-events/internal/usecases/commands"
	"github.com/architeacher/svc-order-events/internal/usecases/queries"
)

type (
	PublisherApplication struct {
		Commands PublisherCommands
		Queries  PublisherQueries
	}

	PublisherCommands struct {
		PublishOutboxEventHandler commands.PublishOutboxEventHandler
	}

	PublisherQueries struct {
		FetchPendingOutboxEventsQueryHandler   queries.FetchPendingOutboxEventsQueryHandler
		FetchRetryableOutboxEventsQueryHandler queries.FetchRetryableOutboxEventsQueryHandler
	}
)

func NewPublisherApplication(
	publisherService service.PublisherService,
	logger infrastructure.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient decorator.MetricsClient,
) *PublisherApplication {
	return &PublisherApplication{
		Commands: PublisherCommands{
			PublishOutboxEventHandler: commands.NewPublishOutboxEventHandler(
				publisherService,
				logger,
				tracerProvider,
				metricsClient,
			),
		},
		Queries: PublisherQueries{
			FetchPendingOutboxEventsQueryHandler: queries.NewFetchPendingOutboxEventsQueryHandler(
				publisherService,
				logger,
				tracerProvider,
				metricsClient,
			),
			FetchRetryableOutboxEventsQueryHandler: queries.NewFetchRetryableOutboxEventsQueryHandler(
				publisherService,
				logger,
				tracerProvider,
				metricsClient,
			),
		},
	}
}
