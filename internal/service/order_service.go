package service

import (
	"context"
	"fmt"

	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/ports"
)

type (
	OrderService interface {
		DeleteOrder(ctx context.Context, orderID int64) error
		DeleteUserOrders(ctx context.Context, userID int64) ([]int64, error)
		FetchOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	}

	orderService struct {
		orderRepo ports.OrderRepository
		cacheRepo ports.CacheRepository
		logger    infrastructure.Logger
	}
)

func NewOrderService(
	orderRepo ports.OrderRepository,
	cacheRepo ports.CacheRepository,
	logger infrastructure.Logger,
) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

func (s *orderService) DeleteOrder(ctx context.Context, orderID int64) error {
	if err := s.orderRepo.Delete(ctx, orderID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.invalidate(ctx, orderID)

	s.logger.Info().Int64("order_id", orderID).Msg("order deleted")

	return nil
}

func (s *orderService) DeleteUserOrders(ctx context.Context, userID int64) ([]int64, error) {
	deleted, err := s.orderRepo.DeleteByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user orders: %w", err)
	}

	for _, orderID := range deleted {
		s.invalidate(ctx, orderID)
	}

	s.logger.Info().
		Int64("user_id", userID).
		Int("deleted_orders", len(deleted)).
		Msg("user orders deleted")

	return deleted, nil
}

func (s *orderService) FetchOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	order, err := s.cacheRepo.Find(ctx, orderID)
	if err == nil {
		return order, nil
	}

	order, err = s.orderRepo.Find(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	if cacheErr := s.cacheRepo.Set(ctx, order); cacheErr != nil {
		s.logger.Error().Err(cacheErr).Msg("failed to save order to the cache")
	}

	return order, nil
}

func (s *orderService) invalidate(ctx context.Context, orderID int64) {
	if err := s.cacheRepo.Delete(ctx, orderID); err != nil {
		s.logger.Warn().Err(err).Int64("order_id", orderID).
			Msg("failed to invalidate cached order")
	}
}
