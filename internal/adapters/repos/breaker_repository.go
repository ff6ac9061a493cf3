package repos

import (
	"context"
	"errors"

	"github.com/sony/gobreaker"

	"github.com/architeacher/svc-order-events/internal/config"
	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/ports"
)

// BreakingOrderRepository guards an order repository with a circuit breaker.
// While the breaker is open calls fail fast with ErrCircuitBreakerOpen, and
// the consumer's retry handling takes over.
type BreakingOrderRepository struct {
	next           ports.OrderRepository
	circuitBreaker *gobreaker.CircuitBreaker
	logger         infrastructure.Logger
}

func NewBreakingOrderRepository(
	next ports.OrderRepository,
	cfg config.CircuitBreakerConfig,
	logger infrastructure.Logger,
) *BreakingOrderRepository {
	cbSettings := gobreaker.Settings{
		Name:        "order-storage",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

			return failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info().
				Str("name", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrOrderNotFound)
		},
	}

	return &BreakingOrderRepository{
		next:           next,
		circuitBreaker: gobreaker.NewCircuitBreaker(cbSettings),
		logger:         logger,
	}
}

func (r *BreakingOrderRepository) Find(ctx context.Context, orderID int64) (*domain.Order, error) {
	result, err := r.circuitBreaker.Execute(func() (any, error) {
		return r.next.Find(ctx, orderID)
	})
	if err != nil {
		return nil, r.mapError(err)
	}

	return result.(*domain.Order), nil
}

func (r *BreakingOrderRepository) Delete(ctx context.Context, orderID int64) error {
	_, err := r.circuitBreaker.Execute(func() (any, error) {
		return nil, r.next.Delete(ctx, orderID)
	})

	return r.mapError(err)
}

func (r *BreakingOrderRepository) DeleteByUser(ctx context.Context, userID int64) ([]int64, error) {
	result, err := r.circuitBreaker.Execute(func() (any, error) {
		return r.next.DeleteByUser(ctx, userID)
	})
	if err != nil {
		return nil, r.mapError(err)
	}

	return result.([]int64), nil
}

func (r *BreakingOrderRepository) State() gobreaker.State {
	return r.circuitBreaker.State()
}

func (r *BreakingOrderRepository) mapError(err error) error {
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		r.logger.Warn().Err(err).Msg("order storage circuit breaker rejected the call")

		return domain.NewCircuitBreakerOpenError("order-storage", err)
	}

	return err
}
