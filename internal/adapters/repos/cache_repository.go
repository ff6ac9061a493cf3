package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/architeacher/svc-order-events/internal/config"
	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
)

const orderKeyPrefix = "order:"

// CacheRepository keeps orders in KeyDB. A nil client means the cache is
// unavailable: reads miss with ErrCacheUnavailable and writes are skipped.
type CacheRepository struct {
	client redis.Cmdable
	cfg    config.CacheConfig
	logger infrastructure.Logger
}

func NewCacheRepository(client *infrastructure.KeydbClient, cfg config.CacheConfig, logger infrastructure.Logger) *CacheRepository {
	repo := &CacheRepository{
		cfg:    cfg,
		logger: logger,
	}

	if client != nil {
		repo.client = client.Client
	}

	return repo
}

func (r *CacheRepository) Find(ctx context.Context, orderID int64) (*domain.Order, error) {
	if r.client == nil {
		return nil, domain.ErrCacheUnavailable
	}

	payload, err := r.client.Get(ctx, orderKey(orderID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCacheMiss
		}

		return nil, fmt.Errorf("%w: %w", domain.ErrCacheUnavailable, err)
	}

	var order domain.Order
	if err := json.Unmarshal(payload, &order); err != nil {
		r.logger.Warn().Err(err).Int64("order_id", orderID).Msg("dropping unreadable cache entry")

		if delErr := r.client.Del(ctx, orderKey(orderID)).Err(); delErr != nil {
			r.logger.Warn().Err(delErr).Int64("order_id", orderID).Msg("failed to drop cache entry")
		}

		return nil, domain.ErrCacheMiss
	}

	return &order, nil
}

func (r *CacheRepository) Set(ctx context.Context, order *domain.Order) error {
	if r.client == nil {
		return nil
	}

	payload, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order %d: %w", order.ID, err)
	}

	if err := r.client.Set(ctx, orderKey(order.ID), payload, r.cfg.DefaultExpiry).Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCacheUnavailable, err)
	}

	return nil
}

func (r *CacheRepository) Delete(ctx context.Context, orderID int64) error {
	if r.client == nil {
		return nil
	}

	if err := r.client.Del(ctx, orderKey(orderID)).Err(); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCacheUnavailable, err)
	}

	return nil
}

func orderKey(orderID int64) string {
	return orderKeyPrefix + strconv.FormatInt(orderID, 10)
}
