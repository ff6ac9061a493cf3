package queue

import (
	"context"
	"fmt"

	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/ports"
	"github.com/architeacher/svc-order-events/internal/usecases"
	"github.com/architeacher/svc-order-events/internal/usecases/commands"
	"github.com/architeacher/svc-order-events/pkg/queue"
)

var (
	_ ports.MessageHandler = (*OrderDeletedWorker)(nil)
	_ ports.MessageHandler = (*UserDeletedWorker)(nil)
)

type (
	// OrderDeletedWorker consumes order.deleted events.
	OrderDeletedWorker struct {
		app    *usecases.SubscriberApplication
		logger infrastructure.Logger
	}

	// UserDeletedWorker consumes user.deleted events and drops every order
	// owned by the user.
	UserDeletedWorker struct {
		app    *usecases.SubscriberApplication
		logger infrastructure.Logger
	}
)

func NewOrderDeletedWorker(app *usecases.SubscriberApplication, logger infrastructure.Logger) *OrderDeletedWorker {
	return &OrderDeletedWorker{
		app:    app,
		logger: logger,
	}
}

func NewUserDeletedWorker(app *usecases.SubscriberApplication, logger infrastructure.Logger) *UserDeletedWorker {
	return &UserDeletedWorker{
		app:    app,
		logger: logger,
	}
}

func (w *OrderDeletedWorker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	var event domain.OrderDeletedEvent
	if err := decodeEvent(msg, &event); err != nil {
		w.logger.Warn().Err(err).Str("message_id", msg.MessageID()).Msg("rejecting order.deleted message")

		return err
	}

	_, err := w.app.Commands.DeleteOrderHandler.Handle(ctx, commands.DeleteOrderCommand{
		OrderID: *event.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete order %d: %w", *event.ID, err)
	}

	return nil
}

func (w *UserDeletedWorker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	var event domain.UserDeletedEvent
	if err := decodeEvent(msg, &event); err != nil {
		w.logger.Warn().Err(err).Str("message_id", msg.MessageID()).Msg("rejecting user.deleted message")

		return err
	}

	result, err := w.app.Commands.DeleteUserOrdersHandler.Handle(ctx, commands.DeleteUserOrdersCommand{
		UserID: *event.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete orders of user %d: %w", *event.ID, err)
	}

	w.logger.Debug().
		Int64("user_id", result.UserID).
		Ints64("order_ids", result.DeletedOrderIDs).
		Msg("user orders removed")

	return nil
}

type validatable interface {
	Validate() error
}

func decodeEvent(msg queue.Message, event validatable) error {
	if err := msg.Unmarshal(event); err != nil {
		return domain.NewInvalidMessageError(msg.RoutingKey, fmt.Errorf("%w: %w", domain.ErrInvalidMessage, err))
	}

	return event.Validate()
}
