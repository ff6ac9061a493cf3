package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// handleFailure settles a delivery whose handler failed. Exactly one of ack or
// nack is applied to d:
//
//   - no maxRetries header: nack, requeue per client configuration
//   - retries left: republish with currentRetry+1, then ack the original
//   - retries exhausted: nack without requeue, leaving it to the dead-letter exchange
//
// The consumer's error handler is told only after the disposition is applied.
func (c *Client) handleFailure(
	ctx context.Context,
	ch Channel,
	queue string,
	d *Delivery,
	msg Message,
	cause error,
	options consumerOptions,
) {
	maxRetries, bounded := msg.MaxRetries()
	if !bounded {
		c.nack(ch, queue, d, c.requeue, cause)
		c.notifyError(queue, options, cause)

		return
	}

	next := msg.CurrentRetry() + 1
	if next > maxRetries {
		exhausted := fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, next, cause)

		c.logger.Warn().
			Str("queue", queue).
			Str("message_id", msg.MessageID()).
			Int("max_retries", maxRetries).
			Msg("dropping message, retries exhausted")

		c.nack(ch, queue, d, false, exhausted)
		c.notifyError(queue, options, exhausted)

		return
	}

	if err := c.republish(ctx, queue, d, next); err != nil {
		c.logger.Error().
			Err(err).
			Str("queue", queue).
			Str("message_id", msg.MessageID()).
			Msg("failed to republish message for retry, returning it to the broker")

		c.nack(ch, queue, d, true, errors.Join(cause, err))
		c.notifyError(queue, options, cause)

		return
	}

	c.ack(ch, queue, d)
	c.notifyError(queue, options, cause)
}

// notifyError passes err to the consumer's error handler. A panicking handler
// is logged and otherwise ignored.
func (c *Client) notifyError(queue string, options consumerOptions, err error) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error().
				Str("queue", queue).
				Str("panic", fmt.Sprint(r)).
				Msg("consumer error handler panicked")
		}
	}()

	options.errHandler(err)
}

// republish sends a copy of d with currentRetry set to attempt, to the same
// exchange and routing key, or to the queue itself for direct sends.
func (c *Client) republish(ctx context.Context, queue string, d *Delivery, attempt int) error {
	headers := d.Properties.Headers.clone()
	headers[headerCurrentRetry] = attempt

	props := Properties{
		MessageID:   d.Properties.MessageID,
		ContentType: d.Properties.ContentType,
		Headers:     headers,
	}

	if props.ContentType == "" {
		props.ContentType = contentTypeJSON
	}

	direct := d.Exchange == ""

	routingKey := d.RoutingKey
	if direct && routingKey == "" {
		routingKey = queue
	}

	return c.send(ctx, d.Exchange, routingKey, direct, d.Body, props, json.RawMessage(d.Body), c.retryTimeout)
}
