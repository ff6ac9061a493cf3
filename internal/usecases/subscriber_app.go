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
	SubscriberApplication struct {
		Commands SubscriberCommands
		Queries  SubscriberQueries
	}

	SubscriberCommands struct {
		DeleteOrderHandler      commands.DeleteOrderHandler
		DeleteUserOrdersHandler commands.DeleteUserOrdersHandler
	}

	SubscriberQueries struct {
		FetchOrderQueryHandler queries.FetchOrderQueryHandler
	}
)

func NewSubscriberApplication(
	orderService service.OrderService,
	logger infrastructure.Logger,
	tracerProvider otelTrace.TracerProvider,
	metricsClient decorator.MetricsClient,
) *SubscriberApplication {
	return &SubscriberApplication{
		Commands: SubscriberCommands{
			DeleteOrderHandler: commands.NewDeleteOrderHandler(
				orderService,
				logger,
				tracerProvider,
				metricsClient,
			),
			DeleteUserOrdersHandler: commands.NewDeleteUserOrdersHandler(
				orderService,
				logger,
				tracerProvider,
				metricsClient,
			),
		},
		Queries: SubscriberQueries{
			FetchOrderQueryHandler: queries.NewFetchOrderQueryHandler(
				orderService,
				logger,
				tracerProvider,
				metricsClient,
			),
		},
	}
}
