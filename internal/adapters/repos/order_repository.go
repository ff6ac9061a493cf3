package repos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/architeacher/svc-order-events/internal/domain"
)

const ordersTable = "orders"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	orderColumns = []string{
		"id",
		"external_identifier",
		"mode",
		"user_id",
		"product_id",
		"created_at",
		"updated_at",
	}
)

type OrderRepository struct {
	conn         *sqlx.DB
	deletedRoute domain.OutboxRoute
}

// NewOrderRepository builds the repository. When deletedRoute is enabled,
// orders removed with their user are announced through the outbox.
func NewOrderRepository(db *sqlx.DB, deletedRoute domain.OutboxRoute) *OrderRepository {
	return &OrderRepository{
		conn:         db,
		deletedRoute: deletedRoute,
	}
}

func (r *OrderRepository) Find(ctx context.Context, orderID int64) (*domain.Order, error) {
	query, args, err := psql.Select(orderColumns...).
		From(ordersTable).
		Where(sq.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var order domain.Order

	if err := r.conn.GetContext(ctx, &order, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewOrderNotFoundError(orderID)
		}

		return nil, fmt.Errorf("failed to find order %d: %w", orderID, err)
	}

	return &order, nil
}

// Delete removes the order. Deleting an order that does not exist succeeds,
// so redelivered events settle cleanly.
func (r *OrderRepository) Delete(ctx context.Context, orderID int64) error {
	query, args, err := psql.Delete(ordersTable).
		Where(sq.Eq{"id": orderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete order %d: %w", orderID, err)
	}

	return nil
}

// DeleteByUser removes the user's orders and queues an order.deleted outbox
// event for each of them in the same transaction.
func (r *OrderRepository) DeleteByUser(ctx context.Context, userID int64) (deleted []int64, err error) {
	query, args, err := psql.Delete(ordersTable).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build delete query: %w", err)
	}

	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	deleted = make([]int64, 0)

	if err := tx.SelectContext(ctx, &deleted, query, args...); err != nil {
		return nil, fmt.Errorf("failed to delete orders of user %d: %w", userID, err)
	}

	if r.deletedRoute.Enabled() {
		for _, orderID := range deleted {
			event, err := domain.NewOrderDeletedOutboxEvent(orderID, r.deletedRoute)
			if err != nil {
				return nil, err
			}

			if err := SaveInTx(ctx, tx, event); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return deleted, nil
}
