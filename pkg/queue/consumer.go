package queue

import (
	"context"
	"encoding/json"
	"fmt"
)

// Consume registers handler for queue. Each delivery is handled in its own
// goroutine, so handlers for the same queue may run concurrently. Cancelling
// ctx stops the registration.
func (c *Client) Consume(ctx context.Context, queue string, handler Handler, opts ...ConsumerOption) error {
	options := defaultConsumerOptions()
	for _, opt := range opts {
		opt(&options)
	}

	ch, err := c.acquireChannel(ctx)
	if err != nil {
		return err
	}

	err = ch.Consume(ctx, queue, func(d *Delivery) {
		c.recorder.Emit(EventConsume, deliveryPayload(queue, d))

		go c.process(ctx, ch, queue, d, handler, options)
	})
	if err != nil {
		return fmt.Errorf("failed to consume from queue %q: %w", queue, err)
	}

	c.logger.Info().Str("queue", queue).Msg("consumer registered")

	return nil
}

func (c *Client) process(ctx context.Context, ch Channel, queue string, d *Delivery, handler Handler, options consumerOptions) {
	msg := newMessage(queue, d)

	if err := invoke(ctx, handler, msg); err != nil {
		c.logger.Error().
			Err(err).
			Str("queue", queue).
			Str("message_id", msg.MessageID()).
			Int("current_retry", msg.CurrentRetry()).
			Msg("message handler failed")

		c.handleFailure(ctx, ch, queue, d, msg, err, options)

		return
	}

	c.ack(ch, queue, d)
}

func invoke(ctx context.Context, handler Handler, msg Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	return handler(ctx, msg)
}

func (c *Client) ack(ch Channel, queue string, d *Delivery) {
	if err := ch.Ack(d); err != nil {
		c.logger.Error().Err(err).Str("queue", queue).Msg("failed to ack message")

		return
	}

	payload := deliveryPayload(queue, d)
	c.recorder.Emit(EventAck, payload)
	c.recorder.Emit(QueueEvent(EventAck, queue), payload)
}

func (c *Client) nack(ch Channel, queue string, d *Delivery, requeue bool, cause error) {
	if err := ch.Nack(d, false, requeue); err != nil {
		c.logger.Error().Err(err).Str("queue", queue).Msg("failed to nack message")

		return
	}

	payload := deliveryPayload(queue, d)
	payload.Requeue = requeue
	payload.Err = cause

	c.recorder.Emit(EventNack, payload)
	c.recorder.Emit(QueueEvent(EventNack, queue), payload)
}

func deliveryPayload(queue string, d *Delivery) EventPayload {
	messageID := d.Properties.Headers.MessageID()
	if messageID == "" {
		messageID = d.Properties.MessageID
	}

	return EventPayload{
		QueueName:    queue,
		ExchangeName: d.Exchange,
		RoutingKey:   d.RoutingKey,
		MessageID:    messageID,
		Message:      json.RawMessage(d.Body),
		CurrentRetry: d.Properties.Headers.CurrentRetry(),
	}
}
