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
	FetchOrderQuery struct {
		OrderID int64
	}

	FetchOrderQueryHandler decorator.QueryHandler[FetchOrderQuery, *domain.Order]

	fetchOrderQueryHandler struct {
		orderService service.OrderService
	}
)

func NewFetchOrderQueryHandler(
	orderService service.OrderService,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) FetchOrderQueryHandler {
	return decorator.ApplyQueryDecorators[FetchOrderQuery, *domain.Order](
		fetchOrderQueryHandler{
			orderService: orderService,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h fetchOrderQueryHandler) Execute(ctx context.Context, q FetchOrderQuery) (*domain.Order, error) {
	return h.orderService.FetchOrder(ctx, q.OrderID)
}
