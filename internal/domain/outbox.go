package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	OutboxEventStatusPending    OutboxEventStatus = "pending"
	OutboxEventStatusProcessing OutboxEventStatus = "processing"
	OutboxEventStatusPublished  OutboxEventStatus = "published"
	OutboxEventStatusFailed     OutboxEventStatus = "failed"

	AggregateTypeOrder = "order"
)

type (
	OutboxEventStatus string

	// OutboxEvent is a message written in the same transaction as the state
	// change it announces and relayed to the broker afterwards.
	OutboxEvent struct {
		ID                  uuid.UUID         `db:"id"`
		AggregateID         string            `db:"aggregate_id"`
		AggregateType       string            `db:"aggregate_type"`
		Exchange            string            `db:"exchange"`
		EventType           string            `db:"event_type"`
		Payload             json.RawMessage   `db:"payload"`
		Status              OutboxEventStatus `db:"status"`
		RetryCount          int               `db:"retry_count"`
		MaxRetries          int               `db:"max_retries"`
		ErrorDetails        *string           `db:"error_details"`
		CreatedAt           time.Time         `db:"created_at"`
		PublishedAt         *time.Time        `db:"published_at"`
		ProcessingStartedAt *time.Time        `db:"processing_started_at"`
		NextRetryAt         *time.Time        `db:"next_retry_at"`
	}

	// OutboxRoute tells where events of one type are published. An empty
	// exchange disables the events.
	OutboxRoute struct {
		Exchange   string
		EventType  string
		MaxRetries int
	}

	PublishOutboxEventResult struct {
		EventID           uuid.UUID
		Published         bool
		Skipped           bool
		PermanentlyFailed bool
		NextRetryAt       *time.Time
	}
)

func (r OutboxRoute) Enabled() bool {
	return r.Exchange != ""
}

func NewOrderDeletedOutboxEvent(orderID int64, route OutboxRoute) (*OutboxEvent, error) {
	payload, err := json.Marshal(OrderDeletedEvent{ID: &orderID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order deleted event: %w", err)
	}

	return &OutboxEvent{
		ID:            uuid.New(),
		AggregateID:   fmt.Sprintf("%d", orderID),
		AggregateType: AggregateTypeOrder,
		Exchange:      route.Exchange,
		EventType:     route.EventType,
		Payload:       payload,
		Status:        OutboxEventStatusPending,
		MaxRetries:    route.MaxRetries,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// CanRetry reports whether another failed attempt leaves room for a retry.
func (e *OutboxEvent) CanRetry() bool {
	return e.RetryCount+1 < e.MaxRetries
}
