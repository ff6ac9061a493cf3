package infrastructure_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-order-events/internal/config"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/mocks"
	"github.com/architeacher/svc-order-events/pkg/queue"
)

func TestQueueConnectionConfig(t *testing.T) {
	t.Parallel()

	cfg := infrastructure.QueueConnectionConfig(config.QueueConfig{
		Scheme:         "amqps",
		Host:           "rabbitmq",
		Port:           5671,
		Username:       "orders",
		Password:       "secret",
		VirtualHost:    "/orders",
		Heartbeat:      5 * time.Second,
		ConnectTimeout: 2 * time.Second,
	})

	assert.Equal(t, queue.Config{
		Scheme:            "amqps",
		Username:          "orders",
		Password:          "secret",
		Host:              "rabbitmq",
		Port:              5671,
		Vhost:             "/orders",
		Heartbeat:         5 * time.Second,
		ConnectionTimeout: 2 * time.Second,
	}, cfg)
}

func TestExportQueueEvents(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	fakeMetrics := &mocks.FakeMetrics{}
	provider := queue.NewMemoryProvider()
	client := infrastructure.NewQueueClient(config.QueueConfig{RequeueOnFailure: true}, provider, infrastructure.NewTestLogger())
	t.Cleanup(func() { _ = client.Close() })

	unsubscribe := infrastructure.ExportQueueEvents(client.Recorder(), fakeMetrics)

	queueName := queue.UniqueName("orders.delete")
	require.NoError(t, client.AssertQueue(ctx, queueName, queue.QueueOptions{}))
	require.NoError(t, client.Consume(ctx, queueName, func(context.Context, queue.Message) error {
		return nil
	}))
	require.NoError(t, client.SendMessage(ctx, queueName, map[string]int{"id": 42}))

	require.Eventually(t, func() bool {
		return fakeMetrics.RecordQueueEventCallCount() == 3
	}, 5*time.Second, 10*time.Millisecond)

	unsubscribe()

	events := make(map[string]int)

	for i := range fakeMetrics.RecordQueueEventCallCount() {
		_, event, name, requeue := fakeMetrics.RecordQueueEventArgsForCall(i)

		assert.Equal(t, queueName, name)
		assert.False(t, requeue)

		events[event]++
	}

	assert.Equal(t, map[string]int{
		queue.EventPublish: 1,
		queue.EventConsume: 1,
		queue.EventAck:     1,
	}, events)
}
