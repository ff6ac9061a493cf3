package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/ports"
	"github.com/architeacher/svc-order-events/internal/shared/backoff"
)

type (
	PublisherService interface {
		FetchPendingEvents(ctx context.Context, batchSize int) ([]*domain.OutboxEvent, error)
		FetchRetryableEvents(ctx context.Context, batchSize int) ([]*domain.OutboxEvent, error)
		PublishEvent(ctx context.Context, event *domain.OutboxEvent) (*domain.PublishOutboxEventResult, error)
	}

	publisherService struct {
		outboxRepo      ports.OutboxRepository
		eventPublisher  ports.EventPublisher
		backoffStrategy backoff.Strategy
		logger          infrastructure.Logger
		metrics         infrastructure.Metrics
		now             func() time.Time
	}
)

func NewPublisherService(
	outboxRepo ports.OutboxRepository,
	eventPublisher ports.EventPublisher,
	backoffStrategy backoff.Strategy,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
) PublisherService {
	return publisherService{
		outboxRepo:      outboxRepo,
		eventPublisher:  eventPublisher,
		backoffStrategy: backoffStrategy,
		logger:          logger,
		metrics:         metrics,
		now:             time.Now,
	}
}

func (s publisherService) FetchPendingEvents(ctx context.Context, batchSize int) ([]*domain.OutboxEvent, error) {
	return s.outboxRepo.FindPending(ctx, batchSize)
}

func (s publisherService) FetchRetryableEvents(ctx context.Context, batchSize int) ([]*domain.OutboxEvent, error) {
	return s.outboxRepo.FindRetryable(ctx, batchSize)
}

// PublishEvent claims the event, hands it to the broker and records the
// outcome. An event claimed by another relay is skipped. A failed publish is
// scheduled for retry or marked permanently failed and is not returned as an
// error; only bookkeeping failures are.
func (s publisherService) PublishEvent(ctx context.Context, event *domain.OutboxEvent) (*domain.PublishOutboxEventResult, error) {
	claimedEvent, err := s.outboxRepo.ClaimForProcessing(ctx, event.ID.String())
	if err != nil {
		if errors.Is(err, domain.ErrOutboxEventNotClaimable) {
			s.logger.Debug().
				Str("event_id", event.ID.String()).
				Msg("outbox event already claimed, skipping")

			return &domain.PublishOutboxEventResult{EventID: event.ID, Skipped: true}, nil
		}

		return nil, fmt.Errorf("failed to claim outbox event: %w", err)
	}

	if err := s.eventPublisher.PublishEvent(ctx, claimedEvent); err != nil {
		s.metrics.RecordOutboxEvent(ctx, claimedEvent.EventType, false)

		return s.handlePublishFailure(ctx, claimedEvent, err)
	}

	if err := s.outboxRepo.MarkPublished(ctx, claimedEvent.ID.String()); err != nil {
		return nil, fmt.Errorf("failed to mark outbox event as published: %w", err)
	}

	s.metrics.RecordOutboxEvent(ctx, claimedEvent.EventType, true)

	s.logger.Debug().
		Str("event_id", claimedEvent.ID.String()).
		Str("event_type", claimedEvent.EventType).
		Msg("outbox event published")

	return &domain.PublishOutboxEventResult{EventID: claimedEvent.ID, Published: true}, nil
}

func (s publisherService) handlePublishFailure(
	ctx context.Context,
	event *domain.OutboxEvent,
	publishErr error,
) (*domain.PublishOutboxEventResult, error) {
	errorDetails := publishErr.Error()

	if !event.CanRetry() {
		if err := s.outboxRepo.MarkPermanentlyFailed(ctx, event.ID.String(), errorDetails); err != nil {
			return nil, fmt.Errorf("failed to mark outbox event as permanently failed: %w", err)
		}

		s.logger.Warn().
			Err(publishErr).
			Str("event_id", event.ID.String()).
			Int("retry_count", event.RetryCount+1).
			Msg("outbox event permanently failed after max retries")

		return &domain.PublishOutboxEventResult{EventID: event.ID, PermanentlyFailed: true}, nil
	}

	nextRetryAt := s.now().Add(s.backoffStrategy.Backoff(event.RetryCount))

	if err := s.outboxRepo.MarkFailed(ctx, event.ID.String(), errorDetails, &nextRetryAt); err != nil {
		return nil, fmt.Errorf("failed to mark outbox event as failed: %w", err)
	}

	s.logger.Debug().
		Err(publishErr).
		Str("event_id", event.ID.String()).
		Int("retry_count", event.RetryCount+1).
		Time("next_retry_at", nextRetryAt).
		Msg("outbox event scheduled for retry")

	return &domain.PublishOutboxEventResult{EventID: event.ID, NextRetryAt: &nextRetryAt}, nil
}
