package queue

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderDeleted struct {
	ID int `json:"id"`
}

func TestClient_Publish(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, provider := newTestClient(t)

	require.NoError(t, client.AssertExchange(ctx, "order.events", ExchangeTopic))
	require.NoError(t, client.AssertQueue(ctx, "orders.delete", QueueOptions{}))
	require.NoError(t, client.BindQueue(ctx, "orders.delete", "order.events", "order.deleted"))

	err := client.Publish(ctx, "order.events", "order.deleted", orderDeleted{ID: 42},
		WithMessageID("msg-1"),
		WithMaxRetries(3),
	)
	require.NoError(t, err)

	assert.Equal(t, 1, provider.ReadyCount("orders.delete"))

	history := client.Recorder().History(EventPublish)
	require.Len(t, history, 1)

	payload := history[0].Payload
	assert.Equal(t, "order.events", payload.ExchangeName)
	assert.Equal(t, "order.deleted", payload.RoutingKey)
	assert.Equal(t, "msg-1", payload.MessageID)
	assert.Equal(t, orderDeleted{ID: 42}, payload.Message)
	assert.Zero(t, payload.CurrentRetry)
	assert.Empty(t, payload.QueueName)
}

func TestClient_PublishHeaders(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, _ := newTestClient(t)

	require.NoError(t, client.AssertQueue(ctx, "orders.delete", QueueOptions{}))

	var (
		mutex    sync.Mutex
		received []Message
	)

	require.NoError(t, client.Consume(ctx, "orders.delete", func(_ context.Context, msg Message) error {
		mutex.Lock()
		defer mutex.Unlock()

		received = append(received, msg)

		return nil
	}))

	require.NoError(t, client.SendMessage(ctx, "orders.delete", orderDeleted{ID: 7}, WithMaxRetries(2)))
	require.NoError(t, client.SendMessage(ctx, "orders.delete", orderDeleted{ID: 8}))

	_, err := client.Recorder().WaitFor(ctx, EventAck, 2)
	require.NoError(t, err)

	mutex.Lock()
	defer mutex.Unlock()

	require.Len(t, received, 2)

	for _, msg := range received {
		assert.NotEmpty(t, msg.MessageID(), "a message id is always assigned")
		assert.Zero(t, msg.CurrentRetry())
		assert.Equal(t, "orders.delete", msg.Queue)
		assert.Empty(t, msg.Exchange)

		var event orderDeleted
		require.NoError(t, msg.Unmarshal(&event))

		maxRetries, bounded := msg.MaxRetries()

		switch event.ID {
		case 7:
			assert.True(t, bounded)
			assert.Equal(t, 2, maxRetries)
		case 8:
			assert.False(t, bounded)
		default:
			t.Fatalf("unexpected message %d", event.ID)
		}
	}

	assert.NotEqual(t, received[0].MessageID(), received[1].MessageID())
}

func TestClient_SendMessageRecordsQueue(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, _ := newTestClient(t)

	require.NoError(t, client.AssertQueue(ctx, "orders.delete", QueueOptions{}))
	require.NoError(t, client.SendMessage(ctx, "orders.delete", orderDeleted{ID: 1}))

	res, err := client.Recorder().WaitFor(ctx, EventPublish, 1, Filter{QueueName: "orders.delete"})
	require.NoError(t, err)

	assert.Equal(t, "orders.delete", res.LastEvent.Payload.RoutingKey)
	assert.Empty(t, res.LastEvent.Payload.ExchangeName)
}

func TestClient_PublishFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(p *MemoryProvider)
		message  any
		exchange string
		wantErr  error
	}{
		{
			name:     "unknown exchange",
			setup:    func(_ *MemoryProvider) {},
			message:  orderDeleted{ID: 1},
			exchange: "missing",
			wantErr:  ErrExchangeNotFound,
		},
		{
			name:     "broker rejects publish",
			setup:    func(p *MemoryProvider) { p.SetPublishError(errBrokerDown) },
			message:  orderDeleted{ID: 1},
			exchange: "order.events",
			wantErr:  errBrokerDown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := testContext(t)
			client, provider := newTestClient(t)

			require.NoError(t, client.AssertExchange(ctx, "order.events", ExchangeTopic))
			tt.setup(provider)

			err := client.Publish(ctx, tt.exchange, "order.deleted", tt.message)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, client.Recorder().Count(EventPublish))
		})
	}
}

func TestClient_PublishUnmarshalableMessage(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, provider := newTestClient(t)

	err := client.Publish(ctx, "order.events", "order.deleted", make(chan int))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to marshal message")
	assert.Zero(t, provider.ConnectCount())
}

func TestClient_PublishUnroutable(t *testing.T) {
	t.Parallel()

	ctx := testContext(t)
	client, provider := newTestClient(t)

	require.NoError(t, client.AssertExchange(ctx, "order.events", ExchangeTopic))
	require.NoError(t, client.Publish(ctx, "order.events", "order.deleted", orderDeleted{ID: 1}))

	assert.Equal(t, 1, provider.Unroutable())
	assert.Equal(t, 1, client.Recorder().Count(EventPublish))
}
