//go:generate go tool github.com/maxbrunsfeld/counterfeiter/v6 -generate

package ports

import (
	"context"
	"time"

	"github.com/architeacher/svc-order-events/internal/domain"
)

//counterfeiter:generate -o ../mocks/outbox_repository.go . OutboxRepository
//counterfeiter:generate -o ../mocks/event_publisher.go . EventPublisher

type (
	OutboxRepository interface {
		FindPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
		FindRetryable(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
		// ClaimForProcessing moves a pending or failed event to processing.
		// It returns domain.ErrOutboxEventNotClaimable when another relay won.
		ClaimForProcessing(ctx context.Context, eventID string) (*domain.OutboxEvent, error)
		MarkPublished(ctx context.Context, eventID string) error
		MarkFailed(ctx context.Context, eventID string, errorDetails string, nextRetryAt *time.Time) error
		MarkPermanentlyFailed(ctx context.Context, eventID string, errorDetails string) error
	}

	// EventPublisher hands an outbox event to the broker.
	EventPublisher interface {
		PublishEvent(ctx context.Context, event *domain.OutboxEvent) error
	}

	BackgroundProcessor interface {
		Start(ctx context.Context) error
	}
)
