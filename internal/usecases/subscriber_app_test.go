package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/mocks"
	"github.com/architeacher/svc-order-events/internal/service"
	"github.com/architeacher/svc-order-events/internal/usecases"
	"github.com/architeacher/svc-order-events/internal/usecases/commands"
	"github.com/architeacher/svc-order-events/internal/usecases/queries"
)

type noopMetricsClient struct{}

func (noopMetricsClient) Inc(string, int) {}

func newTestApplication(orderRepo *mocks.FakeOrderRepository, cacheRepo *mocks.FakeCacheRepository) *usecases.SubscriberApplication {
	logger := infrastructure.NewTestLogger()

	return usecases.NewSubscriberApplication(
		service.NewOrderService(orderRepo, cacheRepo, logger),
		logger,
		noop.NewTracerProvider(),
		noopMetricsClient{},
	)
}

func TestSubscriberApplication_DeleteOrder(t *testing.T) {
	t.Parallel()

	orderRepo := &mocks.FakeOrderRepository{}
	cacheRepo := &mocks.FakeCacheRepository{}
	app := newTestApplication(orderRepo, cacheRepo)

	result, err := app.Commands.DeleteOrderHandler.Handle(context.Background(), commands.DeleteOrderCommand{OrderID: 42})
	require.NoError(t, err)

	assert.Equal(t, int64(42), result.OrderID)
	require.Equal(t, 1, orderRepo.DeleteCallCount())

	_, orderID := orderRepo.DeleteArgsForCall(0)
	assert.Equal(t, int64(42), orderID)
	assert.Equal(t, 1, cacheRepo.DeleteCallCount())
}

func TestSubscriberApplication_DeleteOrderFailure(t *testing.T) {
	t.Parallel()

	storageErr := errors.New("storage down")

	orderRepo := &mocks.FakeOrderRepository{}
	orderRepo.DeleteReturns(storageErr)
	cacheRepo := &mocks.FakeCacheRepository{}
	app := newTestApplication(orderRepo, cacheRepo)

	result, err := app.Commands.DeleteOrderHandler.Handle(context.Background(), commands.DeleteOrderCommand{OrderID: 42})

	require.ErrorIs(t, err, storageErr)
	assert.Nil(t, result)
	assert.Zero(t, cacheRepo.DeleteCallCount())
}

func TestSubscriberApplication_DeleteUserOrders(t *testing.T) {
	t.Parallel()

	orderRepo := &mocks.FakeOrderRepository{}
	orderRepo.DeleteByUserReturns([]int64{1, 2, 3}, nil)
	cacheRepo := &mocks.FakeCacheRepository{}
	app := newTestApplication(orderRepo, cacheRepo)

	result, err := app.Commands.DeleteUserOrdersHandler.Handle(
		context.Background(),
		commands.DeleteUserOrdersCommand{UserID: 9},
	)
	require.NoError(t, err)

	assert.Equal(t, int64(9), result.UserID)
	assert.Equal(t, []int64{1, 2, 3}, result.DeletedOrderIDs)
	assert.Equal(t, 3, cacheRepo.DeleteCallCount())
}

func TestSubscriberApplication_FetchOrder(t *testing.T) {
	t.Parallel()

	orderRepo := &mocks.FakeOrderRepository{}
	orderRepo.FindReturns(nil, domain.NewOrderNotFoundError(42))
	cacheRepo := &mocks.FakeCacheRepository{}
	cacheRepo.FindReturns(nil, domain.ErrCacheMiss)
	app := newTestApplication(orderRepo, cacheRepo)

	order, err := app.Queries.FetchOrderQueryHandler.Execute(context.Background(), queries.FetchOrderQuery{OrderID: 42})

	require.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.Nil(t, order)
	assert.Zero(t, cacheRepo.SetCallCount())
}
