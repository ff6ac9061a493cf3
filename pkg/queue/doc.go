// Package queue provides a RabbitMQ client with bounded retries, dead-letter
// friendly failure handling, and an observable record of everything it does.
//
// # Overview
//
// A Client talks to a broker through a Provider. AMQPProvider dials a real
// broker with amqp091-go; MemoryProvider is an in-process broker with the same
// routing rules, used by tests. The connection and channel are opened lazily
// on first use and reused until Close.
//
// # Basic Usage
//
//	config := queue.Config{
//		Scheme:   "amqp",
//		Username: "guest",
//		Password: "guest",
//		Host:     "localhost",
//		Port:     5672,
//		Vhost:    "/",
//	}
//
//	client := queue.NewClient(queue.NewAMQPProvider(queue.WithPrefetch(10)), config)
//	if err := client.Connect(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
// Publishing messages:
//
//	err := client.Publish(ctx, "order.events", "order.deleted", map[string]any{"id": 42},
//		queue.WithMaxRetries(3),
//	)
//
// Consuming messages:
//
//	handler := func(ctx context.Context, msg queue.Message) error {
//		var event OrderDeleted
//		if err := msg.Unmarshal(&event); err != nil {
//			return err
//		}
//
//		return deleteOrder(ctx, event.ID)
//	}
//
//	err := client.Consume(ctx, "orders.delete", handler)
//
// # Retries
//
// A nil handler result acks the delivery. On error or panic:
//
//   - without a maxRetries header the delivery is nacked, requeued unless
//     WithRequeueOnFailure(false) was given
//   - with retries left, a copy carrying currentRetry+1 is published to the same
//     exchange and routing key and the original is acked
//   - once currentRetry would exceed maxRetries the delivery is nacked without
//     requeue, so a configured dead-letter exchange receives it
//
// Republishing trades ordering for availability: a retried message goes to the
// back of the queue.
//
// # Events
//
// Every client owns a Recorder (or shares one given with WithRecorder). It
// records publish, consume, ack and nack events, plus queue-scoped ack:<queue>
// and nack:<queue> variants. WaitFor blocks until a number of events has been
// seen, counting events recorded before the call:
//
//	res, err := client.Recorder().WaitFor(ctx, queue.EventAck, 1,
//		queue.Filter{QueueName: "orders.delete"},
//	)
//
// # Logging Integration
//
// The package defines a minimal logging interface. NewLoggerAdapter bridges a
// zerolog.Logger:
//
//	client := queue.NewClient(provider, config,
//		queue.WithLogger(queue.NewLoggerAdapter(logger)),
//	)
package queue
