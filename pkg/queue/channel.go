package queue

import (
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// amqpChannel is used mainly to be able to generate mocks for the AMQP behavior.
//
//nolint:interfacebloat // necessary for complete AMQP channel interface
type amqpChannel interface {
	io.Closer

	Cancel(consumer string, noWait bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	QueueDelete(name string, ifUnused, ifEmpty, noWait bool) (int, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Qos(prefetchCount, prefetchSize int, global bool) error
	Ack(tag uint64, multiple bool) error
	Nack(tag uint64, multiple, requeue bool) error
}

// ChannelWrapper adapts an amqp091-go channel to the Channel interface.
type ChannelWrapper struct {
	amqpChan amqpChannel

	logger Logger

	mutex  sync.Mutex
	closed atomic.Bool
}

func newChannelWrapper(ch amqpChannel, logger Logger) *ChannelWrapper {
	return &ChannelWrapper{
		amqpChan: ch,
		logger:   logger,
	}
}

// Close is a wrapper around amqp091-go.Channel.Close method, which closes a channel.
func (ch *ChannelWrapper) Close() error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	if ch.closed.Load() {
		return amqp.ErrClosed
	}

	ch.closed.Store(true)

	return ch.amqpChan.Close()
}

func (ch *ChannelWrapper) AssertQueue(name string, opts QueueOptions) error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	_, err := ch.amqpChan.QueueDeclare(name, opts.Durable, opts.AutoDelete, opts.Exclusive, false, amqp.Table(opts.arguments()))

	return err
}

func (ch *ChannelWrapper) AssertExchange(name string, kind ExchangeKind, opts ExchangeOptions) error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	return ch.amqpChan.ExchangeDeclare(name, string(kind), opts.Durable, opts.AutoDelete, false, false, nil)
}

func (ch *ChannelWrapper) BindQueue(queue, exchange, pattern string) error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	return ch.amqpChan.QueueBind(queue, pattern, exchange, false, nil)
}

func (ch *ChannelWrapper) DeleteQueue(name string) error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	_, err := ch.amqpChan.QueueDelete(name, false, false, false)

	return err
}

func (ch *ChannelWrapper) SendToQueue(ctx context.Context, queue string, body []byte, props Properties) error {
	return ch.Publish(ctx, "", queue, body, props)
}

func (ch *ChannelWrapper) Publish(ctx context.Context, exchange, routingKey string, body []byte, props Properties) error {
	publishing := amqp.Publishing{
		ContentType:  props.ContentType,
		DeliveryMode: amqp.Persistent,
		MessageId:    props.MessageID,
		Timestamp:    time.Now(),
		Headers:      toTable(props.Headers),
		Body:         body,
	}

	return ch.amqpChan.PublishWithContext(ctx, exchange, routingKey, false, false, publishing)
}

// Consume starts a goroutine forwarding deliveries to callback until the
// channel closes or ctx is cancelled, in which case the consumer is cancelled.
func (ch *ChannelWrapper) Consume(ctx context.Context, queue string, callback DeliveryCallback) error {
	consumerTag := "ctag-" + uuid.NewString()

	ch.mutex.Lock()
	deliveries, err := ch.amqpChan.Consume(queue, consumerTag, false, false, false, false, nil)
	ch.mutex.Unlock()

	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				if err := ch.amqpChan.Cancel(consumerTag, false); err != nil && !errors.Is(err, amqp.ErrClosed) {
					ch.logger.Error().Err(err).Str("queue", queue).Msg("failed to cancel consumer")
				}

				return
			case d, ok := <-deliveries:
				if !ok {
					ch.logger.Debug().Str("queue", queue).Msg("delivery channel closed")

					return
				}

				callback(fromAMQP(d))
			}
		}
	}()

	return nil
}

func (ch *ChannelWrapper) Ack(d *Delivery) error {
	return ch.amqpChan.Ack(d.Tag, false)
}

func (ch *ChannelWrapper) Nack(d *Delivery, multiple, requeue bool) error {
	return ch.amqpChan.Nack(d.Tag, multiple, requeue)
}

func (ch *ChannelWrapper) qos(prefetchCount int) error {
	ch.mutex.Lock()
	defer ch.mutex.Unlock()

	return ch.amqpChan.Qos(prefetchCount, 0, false)
}

func fromAMQP(d amqp.Delivery) *Delivery {
	headers := make(Headers, len(d.Headers))
	for k, v := range d.Headers {
		headers[k] = v
	}

	return &Delivery{
		Tag:  d.DeliveryTag,
		Body: d.Body,
		Properties: Properties{
			MessageID:   d.MessageId,
			ContentType: d.ContentType,
			Headers:     headers,
		},
		Exchange:    d.Exchange,
		RoutingKey:  d.RoutingKey,
		Redelivered: d.Redelivered,
	}
}

// toTable converts headers to an AMQP table, widening plain ints the table
// encoder does not accept.
func toTable(h Headers) amqp.Table {
	if len(h) == 0 {
		return nil
	}

	table := make(amqp.Table, len(h))
	for k, v := range h {
		if n, ok := v.(int); ok {
			table[k] = int64(n)

			continue
		}

		table[k] = v
	}

	return table
}
