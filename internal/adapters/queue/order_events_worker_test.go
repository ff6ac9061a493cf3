package queue_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	workers "github.com/architeacher/svc-order-events/internal/adapters/queue"
	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/mocks"
	"github.com/architeacher/svc-order-events/internal/service"
	"github.com/architeacher/svc-order-events/internal/usecases"
	"github.com/architeacher/svc-order-events/internal/usecases/queries"
	"github.com/architeacher/svc-order-events/pkg/queue"
)

const (
	orderEventsExchange = "order.events"
	userEventsExchange  = "user.events"
	orderDeletedKey     = "order.deleted"
	userDeletedKey      = "user.deleted"
)

var errStorageTimeout = errors.New("storage timeout")

type noopMetricsClient struct{}

func (noopMetricsClient) Inc(string, int) {}

// orderStore backs a FakeOrderRepository with a set of existing orders.
type orderStore struct {
	mu     sync.Mutex
	orders map[int64]*domain.Order
}

func newOrderStore(orders ...*domain.Order) *orderStore {
	store := &orderStore{orders: make(map[int64]*domain.Order)}
	for _, order := range orders {
		store.orders[order.ID] = order
	}

	return store
}

func (s *orderStore) repository() *mocks.FakeOrderRepository {
	repo := &mocks.FakeOrderRepository{}

	repo.FindCalls(func(_ context.Context, orderID int64) (*domain.Order, error) {
		s.mu.Lock()
		defer s.mu.Unlock()

		order, ok := s.orders[orderID]
		if !ok {
			return nil, domain.NewOrderNotFoundError(orderID)
		}

		return order, nil
	})

	repo.DeleteCalls(func(_ context.Context, orderID int64) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		delete(s.orders, orderID)

		return nil
	})

	return repo
}

type scenario struct {
	client    *queue.Client
	app       *usecases.SubscriberApplication
	orderRepo *mocks.FakeOrderRepository
	queueName string
}

func setupScenario(
	t *testing.T,
	exchange, routingKey string,
	orderRepo *mocks.FakeOrderRepository,
	newHandler func(*usecases.SubscriberApplication, infrastructure.Logger) queue.Handler,
	opts ...queue.ClientOption,
) (context.Context, *scenario) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	logger := infrastructure.NewTestLogger()

	cacheRepo := &mocks.FakeCacheRepository{}
	cacheRepo.FindReturns(nil, domain.ErrCacheMiss)

	app := usecases.NewSubscriberApplication(
		service.NewOrderService(orderRepo, cacheRepo, logger),
		logger,
		noop.NewTracerProvider(),
		noopMetricsClient{},
	)

	client := queue.NewClient(queue.NewMemoryProvider(), queue.Config{}, opts...)
	t.Cleanup(func() {
		_ = client.Close()
	})

	queueName := queue.UniqueName("orders")

	require.NoError(t, client.DeclareTopology(ctx, queue.Topology{
		Exchanges: []queue.ExchangeDeclaration{{Name: exchange, Kind: queue.ExchangeTopic}},
		Queues:    []queue.QueueDeclaration{{Name: queueName}},
		Bindings:  []queue.Binding{{Queue: queueName, Exchange: exchange, Pattern: routingKey}},
	}))

	require.NoError(t, client.Consume(ctx, queueName, newHandler(app, logger)))

	return ctx, &scenario{
		client:    client,
		app:       app,
		orderRepo: orderRepo,
		queueName: queueName,
	}
}

func orderDeletedHandler(app *usecases.SubscriberApplication, logger infrastructure.Logger) queue.Handler {
	return workers.NewOrderDeletedWorker(app, logger).ProcessMessage
}

func userDeletedHandler(app *usecases.SubscriberApplication, logger infrastructure.Logger) queue.Handler {
	return workers.NewUserDeletedWorker(app, logger).ProcessMessage
}

func TestOrderDeletedWorker_DeletesExistingOrder(t *testing.T) {
	t.Parallel()

	store := newOrderStore(&domain.Order{ID: 42, UserID: 7, Mode: domain.OrderModeApproved})
	ctx, s := setupScenario(t, orderEventsExchange, orderDeletedKey, store.repository(), orderDeletedHandler)

	require.NoError(t, s.client.Publish(ctx, orderEventsExchange, orderDeletedKey, map[string]int64{"id": 42}))

	_, err := s.client.Recorder().WaitFor(ctx, queue.EventAck, 1, queue.Filter{QueueName: s.queueName})
	require.NoError(t, err)

	order, err := s.app.Queries.FetchOrderQueryHandler.Execute(ctx, queries.FetchOrderQuery{OrderID: 42})

	require.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.Nil(t, order)
	assert.Zero(t, s.client.Recorder().Count(queue.QueueEvent(queue.EventNack, s.queueName)))
}

func TestOrderDeletedWorker_RejectsPoisonMessage(t *testing.T) {
	t.Parallel()

	orderRepo := &mocks.FakeOrderRepository{}
	ctx, s := setupScenario(t, orderEventsExchange, orderDeletedKey, orderRepo, orderDeletedHandler,
		queue.WithRequeueOnFailure(false),
	)

	require.NoError(t, s.client.Publish(ctx, orderEventsExchange, orderDeletedKey, map[string]bool{"nonExistentField": true}))

	result, err := s.client.Recorder().WaitFor(ctx, queue.EventNack, 1, queue.Filter{QueueName: s.queueName})
	require.NoError(t, err)

	assert.False(t, result.LastEvent.Payload.Requeue)
	require.ErrorIs(t, result.LastEvent.Payload.Err, domain.ErrInvalidMessage)
	assert.Zero(t, orderRepo.DeleteCallCount())
	assert.Zero(t, s.client.Recorder().Count(queue.QueueEvent(queue.EventAck, s.queueName)))
}

func TestOrderDeletedWorker_RetriesTransientFailures(t *testing.T) {
	t.Parallel()

	orderRepo := &mocks.FakeOrderRepository{}
	orderRepo.DeleteReturnsOnCall(0, errStorageTimeout)
	orderRepo.DeleteReturnsOnCall(1, errStorageTimeout)
	orderRepo.DeleteReturnsOnCall(2, nil)

	ctx, s := setupScenario(t, orderEventsExchange, orderDeletedKey, orderRepo, orderDeletedHandler)

	require.NoError(t, s.client.Publish(ctx, orderEventsExchange, orderDeletedKey, map[string]int64{"id": 42},
		queue.WithMaxRetries(2),
	))

	_, err := s.client.Recorder().WaitFor(ctx, queue.EventAck, 3, queue.Filter{QueueName: s.queueName})
	require.NoError(t, err)

	assert.Equal(t, 3, orderRepo.DeleteCallCount())
	assert.Zero(t, s.client.Recorder().Count(queue.QueueEvent(queue.EventNack, s.queueName)))
}

func TestUserDeletedWorker_DeletesUserOrders(t *testing.T) {
	t.Parallel()

	orderRepo := &mocks.FakeOrderRepository{}
	orderRepo.DeleteByUserReturns([]int64{10, 11}, nil)

	ctx, s := setupScenario(t, userEventsExchange, userDeletedKey, orderRepo, userDeletedHandler)

	require.NoError(t, s.client.Publish(ctx, userEventsExchange, userDeletedKey, map[string]int64{"id": 7}))

	_, err := s.client.Recorder().WaitFor(ctx, queue.EventAck, 1, queue.Filter{QueueName: s.queueName})
	require.NoError(t, err)

	require.Equal(t, 1, orderRepo.DeleteByUserCallCount())

	_, userID := orderRepo.DeleteByUserArgsForCall(0)
	assert.Equal(t, int64(7), userID)
}

func TestUserDeletedWorker_RejectsNonPositiveID(t *testing.T) {
	t.Parallel()

	orderRepo := &mocks.FakeOrderRepository{}
	ctx, s := setupScenario(t, userEventsExchange, userDeletedKey, orderRepo, userDeletedHandler,
		queue.WithRequeueOnFailure(false),
	)

	require.NoError(t, s.client.Publish(ctx, userEventsExchange, userDeletedKey, map[string]int64{"id": -1}))

	_, err := s.client.Recorder().WaitFor(ctx, queue.EventNack, 1, queue.Filter{QueueName: s.queueName})
	require.NoError(t, err)

	assert.Zero(t, orderRepo.DeleteByUserCallCount())
}
