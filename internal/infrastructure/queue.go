package infrastructure

import (
	"context"
	"strings"

	"github.com/architeacher/svc-order-events/internal/config"
	"github.com/architeacher/svc-order-events/pkg/queue"
)

// NewQueueClient builds a queue client for cfg on top of provider. The
// provider decides the transport; the runtime passes an AMQPProvider.
func NewQueueClient(cfg config.QueueConfig, provider queue.Provider, logger Logger) *queue.Client {
	return queue.NewClient(
		provider,
		QueueConnectionConfig(cfg),
		queue.WithLogger(queue.NewLoggerAdapter(logger.With().Str("component", "queue").Logger())),
		queue.WithRequeueOnFailure(cfg.RequeueOnFailure),
		queue.WithRetryPublishingTimeout(cfg.PublishTimeout),
	)
}

// NewAMQPProvider returns the RabbitMQ provider configured from cfg.
func NewAMQPProvider(cfg config.QueueConfig, logger Logger) *queue.AMQPProvider {
	return queue.NewAMQPProvider(
		queue.WithPrefetch(cfg.PrefetchCount),
		queue.WithProviderLogger(queue.NewLoggerAdapter(logger.With().Str("component", "amqp").Logger())),
	)
}

func QueueConnectionConfig(cfg config.QueueConfig) queue.Config {
	return queue.Config{
		Scheme:            cfg.Scheme,
		Username:          cfg.Username,
		Password:          cfg.Password,
		Host:              cfg.Host,
		Port:              cfg.Port,
		Vhost:             cfg.VirtualHost,
		Heartbeat:         cfg.Heartbeat,
		ConnectionTimeout: cfg.ConnectTimeout,
	}
}

// ExportQueueEvents forwards the recorder's lifecycle events to metrics until
// the returned func is called. Queue-scoped duplicates such as "ack:orders"
// are skipped.
func ExportQueueEvents(recorder *queue.Recorder, metrics Metrics) func() {
	return recorder.SubscribeAll(func(event queue.Event) {
		if strings.Contains(event.Name, ":") {
			return
		}

		metrics.RecordQueueEvent(context.Background(), event.Name, event.Payload.QueueName, event.Payload.Requeue)
	})
}
