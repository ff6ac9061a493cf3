package queue

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errHandlerFailed = errors.New("handler failed")

func failingHandler(_ context.Context, _ Message) error {
	return errHandlerFailed
}

func setupQueue(ctx context.Context, t *testing.T, client *Client, opts QueueOptions) string {
	t.Helper()

	name := UniqueName("orders")
	require.NoError(t, client.AssertQueue(ctx, name, opts))

	return name
}

func TestConsume_UnboundedFailureRequeues(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, provider := newTestClient(t)
	queueName := setupQueue(ctx, t, client, QueueOptions{})

	require.NoError(t, client.Consume(ctx, queueName, failingHandler))
	require.NoError(t, client.SendMessage(ctx, queueName, orderDeleted{ID: 1}))

	res, err := client.Recorder().WaitFor(ctx, EventNack, 1)
	require.NoError(t, err)

	assert.True(t, res.LastEvent.Payload.Requeue)
	assert.ErrorIs(t, res.LastEvent.Payload.Err, errHandlerFailed)
	assert.Equal(t, 1, client.Recorder().Count(EventNack))
	assert.Equal(t, 1, client.Recorder().Count(QueueEvent(EventNack, queueName)))
	assert.Zero(t, client.Recorder().Count(EventAck))
	assert.Equal(t, 1, provider.ReadyCount(queueName), "message stays on the queue")
	assert.Zero(t, provider.UnackedCount())
}

func TestConsume_UnboundedFailureWithoutRequeue(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, provider := newTestClient(t, WithRequeueOnFailure(false))
	queueName := setupQueue(ctx, t, client, QueueOptions{})

	require.NoError(t, client.Consume(ctx, queueName, failingHandler))
	require.NoError(t, client.SendMessage(ctx, queueName, orderDeleted{ID: 1}))

	res, err := client.Recorder().WaitFor(ctx, EventNack, 1)
	require.NoError(t, err)

	assert.False(t, res.LastEvent.Payload.Requeue)
	assert.Zero(t, provider.ReadyCount(queueName))
}

func TestConsume_RequeuedMessageIsRedelivered(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, provider := newTestClient(t)
	queueName := setupQueue(ctx, t, client, QueueOptions{})

	var attempts atomic.Int32

	redelivered := make(chan bool, 2)

	require.NoError(t, client.Consume(ctx, queueName, func(_ context.Context, msg Message) error {
		redelivered <- msg.Redelivered

		if attempts.Add(1) == 1 {
			return errHandlerFailed
		}

		return nil
	}))
	require.NoError(t, client.SendMessage(ctx, queueName, orderDeleted{ID: 1}))

	_, err := client.Recorder().WaitFor(ctx, EventNack, 1)
	require.NoError(t, err)

	provider.Redeliver(queueName)

	_, err = client.Recorder().WaitFor(ctx, EventAck, 1)
	require.NoError(t, err)

	assert.False(t, <-redelivered)
	assert.True(t, <-redelivered)
	assert.Zero(t, provider.ReadyCount(queueName))
}

func TestConsume_BoundedRetriesExhausted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		maxRetries int
	}{
		{name: "no retries", maxRetries: 0},
		{name: "one retry", maxRetries: 1},
		{name: "three retries", maxRetries: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := testContext(t)
			client, provider := newTestClient(t)
			queueName := setupQueue(ctx, t, client, QueueOptions{})

			var (
				mutex   sync.Mutex
				retries []int
				errs    []error
			)

			handler := func(_ context.Context, msg Message) error {
				mutex.Lock()
				retries = append(retries, msg.CurrentRetry())
				mutex.Unlock()

				return errHandlerFailed
			}

			errHandler := func(err error) {
				mutex.Lock()
				errs = append(errs, err)
				mutex.Unlock()
			}

			require.NoError(t, client.Consume(ctx, queueName, handler, WithErrorHandler(errHandler)))
			require.NoError(t, client.SendMessage(ctx, queueName, orderDeleted{ID: 1}, WithMaxRetries(tt.maxRetries)))

			res, err := client.Recorder().WaitFor(ctx, EventNack, 1)
			require.NoError(t, err)

			_, err = client.Recorder().WaitFor(ctx, EventAck, tt.maxRetries)
			require.NoError(t, err)

			recorder := client.Recorder()
			assert.Equal(t, tt.maxRetries, recorder.Count(EventAck))
			assert.Equal(t, 1, recorder.Count(EventNack))
			assert.Equal(t, tt.maxRetries+1, recorder.Count(EventPublish))
			assert.Equal(t, tt.maxRetries+1, recorder.Count(EventConsume))

			assert.False(t, res.LastEvent.Payload.Requeue)
			assert.ErrorIs(t, res.LastEvent.Payload.Err, ErrRetriesExhausted)
			assert.ErrorIs(t, res.LastEvent.Payload.Err, errHandlerFailed)
			assert.Equal(t, tt.maxRetries, res.LastEvent.Payload.CurrentRetry)

			assert.Zero(t, provider.ReadyCount(queueName))
			assert.Zero(t, provider.UnackedCount())

			require.Eventually(t, func() bool {
				mutex.Lock()
				defer mutex.Unlock()

				return len(errs) == tt.maxRetries+1
			}, time.Second, 5*time.Millisecond)

			mutex.Lock()
			defer mutex.Unlock()

			expected := make([]int, 0, tt.maxRetries+1)
			for i := 0; i <= tt.maxRetries; i++ {
				expected = append(expected, i)
			}

			assert.ElementsMatch(t, expected, retries)

			exhausted := 0
			for _, err := range errs {
				if errors.Is(err, ErrRetriesExhausted) {
					exhausted++
				}
			}

			assert.Equal(t, 1, exhausted)
		})
	}
}

func TestConsume_SucceedsWithinRetryBudget(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, _ := newTestClient(t)
	queueName := setupQueue(ctx, t, client, QueueOptions{})

	var attempts atomic.Int32

	require.NoError(t, client.Consume(ctx, queueName, func(_ context.Context, _ Message) error {
		if attempts.Add(1) <= 2 {
			return errHandlerFailed
		}

		return nil
	}))
	require.NoError(t, client.SendMessage(ctx, queueName, orderDeleted{ID: 1}, WithMaxRetries(2)))

	_, err := client.Recorder().WaitFor(ctx, EventAck, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, client.Recorder().Count(EventAck))
	assert.Zero(t, client.Recorder().Count(EventNack))
	assert.Equal(t, int32(3), attempts.Load())
}

func TestConsume_RetryKeepsMessageIdentity(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, _ := newTestClient(t)

	require.NoError(t, client.AssertExchange(ctx, "order.events", ExchangeTopic))
	queueName := setupQueue(ctx, t, client, QueueOptions{})
	require.NoError(t, client.BindQueue(ctx, queueName, "order.events", "order.*"))

	seen := make(chan Message, 2)

	require.NoError(t, client.Consume(ctx, queueName, func(_ context.Context, msg Message) error {
		seen <- msg

		if msg.CurrentRetry() == 0 {
			return errHandlerFailed
		}

		return nil
	}))
	require.NoError(t, client.Publish(ctx, "order.events", "order.deleted", orderDeleted{ID: 42},
		WithMessageID("order-42"),
		WithMaxRetries(5),
	))

	_, err := client.Recorder().WaitFor(ctx, EventAck, 2)
	require.NoError(t, err)

	first, second := <-seen, <-seen

	assert.Equal(t, "order-42", first.MessageID())
	assert.Equal(t, "order-42", second.MessageID())
	assert.Equal(t, 1, second.CurrentRetry())
	assert.Equal(t, "order.events", second.Exchange)
	assert.Equal(t, "order.deleted", second.RoutingKey)
	assert.JSONEq(t, string(first.Body), string(second.Body))

	maxRetries, bounded := second.MaxRetries()
	assert.True(t, bounded)
	assert.Equal(t, 5, maxRetries)
}

func TestConsume_ExhaustedMessageIsDeadLettered(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, provider := newTestClient(t)

	require.NoError(t, client.DeclareTopology(ctx, Topology{
		Exchanges: []ExchangeDeclaration{
			{Name: "order.events", Kind: ExchangeTopic},
			{Name: "order.events.dlx", Kind: ExchangeFanout},
		},
		Queues: []QueueDeclaration{
			{Name: "orders.delete", Options: QueueOptions{DeadLetterExchange: "order.events.dlx"}},
			{Name: "orders.dead-letter"},
		},
		Bindings: []Binding{
			{Queue: "orders.delete", Exchange: "order.events", Pattern: "order.deleted"},
			{Queue: "orders.dead-letter", Exchange: "order.events.dlx", Pattern: ""},
		},
	}))

	require.NoError(t, client.Consume(ctx, "orders.delete", failingHandler))
	require.NoError(t, client.Publish(ctx, "order.events", "order.deleted", orderDeleted{ID: 9}, WithMaxRetries(1)))

	_, err := client.Recorder().WaitFor(ctx, EventNack, 1, Filter{QueueName: "orders.delete"})
	require.NoError(t, err)

	assert.Equal(t, 1, provider.ReadyCount("orders.dead-letter"))
	assert.Zero(t, provider.ReadyCount("orders.delete"))
}

func TestConsume_RepublishFailureRequeues(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, provider := newTestClient(t)
	queueName := setupQueue(ctx, t, client, QueueOptions{})

	handler := func(_ context.Context, _ Message) error {
		provider.SetPublishError(errBrokerDown)

		return errHandlerFailed
	}

	require.NoError(t, client.Consume(ctx, queueName, handler))
	require.NoError(t, client.SendMessage(ctx, queueName, orderDeleted{ID: 1}, WithMaxRetries(3)))

	res, err := client.Recorder().WaitFor(ctx, EventNack, 1)
	require.NoError(t, err)

	assert.True(t, res.LastEvent.Payload.Requeue)
	assert.ErrorIs(t, res.LastEvent.Payload.Err, errBrokerDown)
	assert.ErrorIs(t, res.LastEvent.Payload.Err, errHandlerFailed)
	assert.Zero(t, client.Recorder().Count(EventAck))
	assert.Equal(t, 1, provider.ReadyCount(queueName))
}

func TestConsume_PanicIsTreatedAsFailure(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, _ := newTestClient(t)
	queueName := setupQueue(ctx, t, client, QueueOptions{})

	require.NoError(t, client.Consume(ctx, queueName, func(_ context.Context, _ Message) error {
		panic("boom")
	}))
	require.NoError(t, client.SendMessage(ctx, queueName, orderDeleted{ID: 1}))

	res, err := client.Recorder().WaitFor(ctx, EventNack, 1)
	require.NoError(t, err)

	require.Error(t, res.LastEvent.Payload.Err)
	assert.Contains(t, res.LastEvent.Payload.Err.Error(), "handler panic: boom")
}

func TestConsume_UnknownQueue(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, _ := newTestClient(t)

	err := client.Consume(ctx, "missing", failingHandler)

	assert.ErrorIs(t, err, ErrQueueNotFound)
}

func TestConsume_EventsCarryDeliveryDetails(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, _ := newTestClient(t)
	queueName := setupQueue(ctx, t, client, QueueOptions{})

	require.NoError(t, client.Consume(ctx, queueName, func(_ context.Context, _ Message) error {
		return nil
	}))
	require.NoError(t, client.SendMessage(ctx, queueName, orderDeleted{ID: 3}, WithMessageID("m-3")))

	res, err := client.Recorder().WaitFor(ctx, QueueEvent(EventAck, queueName), 1)
	require.NoError(t, err)

	payload := res.LastEvent.Payload
	assert.Equal(t, queueName, payload.QueueName)
	assert.Equal(t, "m-3", payload.MessageID)
	assert.JSONEq(t, `{"id":3}`, string(payload.Message.(json.RawMessage)))

	consumed := client.Recorder().History(EventConsume)
	require.Len(t, consumed, 1)
	assert.Less(t, consumed[0].Index, res.LastEvent.Index)
}

func TestConsume_NilErrorHandlerKeepsDefault(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, provider := newTestClient(t)
	queueName := setupQueue(ctx, t, client, QueueOptions{})

	require.NoError(t, client.Consume(ctx, queueName, failingHandler, WithErrorHandler(nil)))
	require.NoError(t, client.SendMessage(ctx, queueName, orderDeleted{ID: 1}))

	res, err := client.Recorder().WaitFor(ctx, EventNack, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, res.LastEvent.Payload.Err, errHandlerFailed)
	assert.Equal(t, 1, provider.ReadyCount(queueName))
}

func TestConsume_PanickingErrorHandlerStillSettles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       []PublisherOption
		settlement string
	}{
		{name: "unbounded failure is nacked", settlement: EventNack},
		{name: "retried message is acked", opts: []PublisherOption{WithMaxRetries(1)}, settlement: EventAck},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctx := testContext(t)
			client, _ := newTestClient(t)
			queueName := setupQueue(ctx, t, client, QueueOptions{})

			var settledBeforeNotify atomic.Bool

			errHandler := func(error) {
				settledBeforeNotify.Store(client.Recorder().Count(tc.settlement) > 0)

				panic("error handler exploded")
			}

			handler := func(_ context.Context, msg Message) error {
				if msg.CurrentRetry() > 0 {
					return nil
				}

				return errHandlerFailed
			}

			require.NoError(t, client.Consume(ctx, queueName, handler, WithErrorHandler(errHandler)))
			require.NoError(t, client.SendMessage(ctx, queueName, orderDeleted{ID: 1}, tc.opts...))

			_, err := client.Recorder().WaitFor(ctx, tc.settlement, 1, Filter{QueueName: queueName})
			require.NoError(t, err)

			assert.Eventually(t, settledBeforeNotify.Load, time.Second, 10*time.Millisecond)
		})
	}
}

func TestWithRetryPublishingTimeout(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t)
	assert.Equal(t, publishingTimeout, client.retryTimeout)

	client, _ = newTestClient(t, WithRetryPublishingTimeout(750*time.Millisecond))
	assert.Equal(t, 750*time.Millisecond, client.retryTimeout)

	client, _ = newTestClient(t, WithRetryPublishingTimeout(0))
	assert.Equal(t, publishingTimeout, client.retryTimeout)
}
