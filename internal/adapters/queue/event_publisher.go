package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/ports"
	"github.com/architeacher/svc-order-events/pkg/queue"
)

var _ ports.EventPublisher = (*OutboxEventPublisher)(nil)

// OutboxEventPublisher publishes outbox events to their exchange with the
// event type as routing key. The outbox event id becomes the message id, so
// consumers can recognize a relay that published twice.
type OutboxEventPublisher struct {
	client         *queue.Client
	maxRetries     int
	publishTimeout time.Duration
}

func NewOutboxEventPublisher(client *queue.Client, maxRetries int, publishTimeout time.Duration) *OutboxEventPublisher {
	return &OutboxEventPublisher{
		client:         client,
		maxRetries:     maxRetries,
		publishTimeout: publishTimeout,
	}
}

func (p *OutboxEventPublisher) PublishEvent(ctx context.Context, event *domain.OutboxEvent) error {
	opts := []queue.PublisherOption{
		queue.WithMessageID(event.ID.String()),
		queue.WithMaxRetries(p.maxRetries),
	}

	if p.publishTimeout > 0 {
		opts = append(opts, queue.WithPublishingTimeout(p.publishTimeout))
	}

	if err := p.client.Publish(ctx, event.Exchange, event.EventType, event.Payload, opts...); err != nil {
		return fmt.Errorf("failed to publish %s event %s: %w", event.EventType, event.ID, err)
	}

	return nil
}
