package commands

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/service"
	"github.com/architeacher/svc-order-events/internal/shared/decorator"
)

type (
	DeleteOrderCommand struct {
		OrderID int64
	}

	DeleteOrderHandler decorator.CommandHandler[DeleteOrderCommand, *domain.DeleteOrderResult]

	deleteOrderHandler struct {
		orderService service.OrderService
	}
)

func NewDeleteOrderHandler(
	orderService service.OrderService,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) DeleteOrderHandler {
	return decorator.ApplyCommandDecorators[DeleteOrderCommand, *domain.DeleteOrderResult](
		deleteOrderHandler{
			orderService: orderService,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h deleteOrderHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (*domain.DeleteOrderResult, error) {
	if err := h.orderService.DeleteOrder(ctx, cmd.OrderID); err != nil {
		return nil, err
	}

	return &domain.DeleteOrderResult{OrderID: cmd.OrderID}, nil
}
