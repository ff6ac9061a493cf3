package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/architeacher/svc-order-events/internal/domain"
)

const outboxEventsTable = "outbox_events"

var outboxColumns = []string{
	"id",
	"aggregate_id",
	"aggregate_type",
	"exchange",
	"event_type",
	"payload",
	"status",
	"retry_count",
	"max_retries",
	"error_details",
	"created_at",
	"published_at",
	"processing_started_at",
	"next_retry_at",
}

type OutboxRepository struct {
	conn *sqlx.DB
}

func NewOutboxRepository(db *sqlx.DB) *OutboxRepository {
	return &OutboxRepository{
		conn: db,
	}
}

// SaveInTx writes the event with the executor of the surrounding transaction.
func SaveInTx(ctx context.Context, tx sqlx.ExecerContext, event *domain.OutboxEvent) error {
	query, args, err := psql.Insert(outboxEventsTable).
		Columns("id", "aggregate_id", "aggregate_type", "exchange", "event_type",
			"payload", "status", "retry_count", "max_retries", "created_at").
		Values(event.ID, event.AggregateID, event.AggregateType, event.Exchange, event.EventType,
			string(event.Payload), event.Status, event.RetryCount, event.MaxRetries, event.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save outbox event: %w", err)
	}

	return nil
}

// FindPending returns pending events, oldest first.
func (r *OutboxRepository) FindPending(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	query, args, err := psql.Select(outboxColumns...).
		From(outboxEventsTable).
		Where(sq.Eq{"status": domain.OutboxEventStatusPending}).
		OrderBy("created_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	events := make([]*domain.OutboxEvent, 0)

	if err := r.conn.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query pending outbox events: %w", err)
	}

	return events, nil
}

// FindRetryable returns failed events whose retry time has come.
func (r *OutboxRepository) FindRetryable(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	query, args, err := psql.Select(outboxColumns...).
		From(outboxEventsTable).
		Where(sq.And{
			sq.Eq{"status": domain.OutboxEventStatusFailed},
			sq.NotEq{"next_retry_at": nil},
			sq.Expr("next_retry_at <= NOW()"),
			sq.Expr("retry_count < max_retries"),
		}).
		OrderBy("next_retry_at ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	events := make([]*domain.OutboxEvent, 0)

	if err := r.conn.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query retryable outbox events: %w", err)
	}

	return events, nil
}

func (r *OutboxRepository) ClaimForProcessing(ctx context.Context, eventID string) (*domain.OutboxEvent, error) {
	query, args, err := psql.Update(outboxEventsTable).
		Set("status", domain.OutboxEventStatusProcessing).
		Set("processing_started_at", sq.Expr("NOW()")).
		Where(sq.And{
			sq.Eq{"id": eventID},
			sq.Eq{"status": []domain.OutboxEventStatus{domain.OutboxEventStatusPending, domain.OutboxEventStatusFailed}},
		}).
		Suffix("RETURNING " + strings.Join(outboxColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update query: %w", err)
	}

	var event domain.OutboxEvent

	if err := r.conn.GetContext(ctx, &event, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewOutboxEventNotClaimableError(eventID)
		}

		return nil, fmt.Errorf("failed to claim outbox event %s: %w", eventID, err)
	}

	return &event, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, eventID string) error {
	return r.update(ctx, eventID, "published", psql.Update(outboxEventsTable).
		Set("status", domain.OutboxEventStatusPublished).
		Set("published_at", sq.Expr("NOW()")).
		Set("processing_started_at", nil),
	)
}

func (r *OutboxRepository) MarkFailed(ctx context.Context, eventID string, errorDetails string, nextRetryAt *time.Time) error {
	return r.update(ctx, eventID, "failed", psql.Update(outboxEventsTable).
		Set("status", domain.OutboxEventStatusFailed).
		Set("retry_count", sq.Expr("retry_count + 1")).
		Set("error_details", errorDetails).
		Set("next_retry_at", nextRetryAt).
		Set("processing_started_at", nil),
	)
}

// MarkPermanentlyFailed leaves the event failed with no retry time, so
// FindRetryable never returns it again.
func (r *OutboxRepository) MarkPermanentlyFailed(ctx context.Context, eventID string, errorDetails string) error {
	return r.update(ctx, eventID, "permanently failed", psql.Update(outboxEventsTable).
		Set("status", domain.OutboxEventStatusFailed).
		Set("retry_count", sq.Expr("retry_count + 1")).
		Set("error_details", errorDetails).
		Set("next_retry_at", nil).
		Set("processing_started_at", nil),
	)
}

func (r *OutboxRepository) update(ctx context.Context, eventID, state string, builder sq.UpdateBuilder) error {
	query, args, err := builder.Where(sq.Eq{"id": eventID}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark event as %s: %w", state, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("outbox event not found: %s", eventID)
	}

	return nil
}
