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
	DeleteUserOrdersCommand struct {
		UserID int64
	}

	DeleteUserOrdersHandler decorator.CommandHandler[DeleteUserOrdersCommand, *domain.DeleteUserOrdersResult]

	deleteUserOrdersHandler struct {
		orderService service.OrderService
	}
)

func NewDeleteUserOrdersHandler(
	orderService service.OrderService,
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient decorator.MetricsClient,
) DeleteUserOrdersHandler {
	return decorator.ApplyCommandDecorators[DeleteUserOrdersCommand, *domain.DeleteUserOrdersResult](
		deleteUserOrdersHandler{
			orderService: orderService,
		},
		logger,
		tracerProvider,
		metricsClient,
	)
}

func (h deleteUserOrdersHandler) Handle(
	ctx context.Context,
	cmd DeleteUserOrdersCommand,
) (*domain.DeleteUserOrdersResult, error) {
	deleted, err := h.orderService.DeleteUserOrders(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	return &domain.DeleteUserOrdersResult{
		UserID:          cmd.UserID,
		DeletedOrderIDs: deleted,
	}, nil
}
