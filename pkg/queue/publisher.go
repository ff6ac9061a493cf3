package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Publish serializes message to JSON and sends it to exchange with routingKey.
// Retries are republished through the same exchange, so on a fanout exchange
// every bound queue receives the retried copy.
func (c *Client) Publish(ctx context.Context, exchange, routingKey string, message any, opts ...PublisherOption) error {
	body, props, options, err := prepare(message, opts)
	if err != nil {
		return err
	}

	return c.send(ctx, exchange, routingKey, false, body, props, message, options.timeout)
}

// SendMessage sends message straight to queue through the default exchange.
func (c *Client) SendMessage(ctx context.Context, queue string, message any, opts ...PublisherOption) error {
	body, props, options, err := prepare(message, opts)
	if err != nil {
		return err
	}

	return c.send(ctx, "", queue, true, body, props, message, options.timeout)
}

func prepare(message any, opts []PublisherOption) ([]byte, Properties, publisherOptions, error) {
	options := defaultPublisherOptions()
	for _, opt := range opts {
		opt(&options)
	}

	body, err := json.Marshal(message)
	if err != nil {
		return nil, Properties{}, options, fmt.Errorf("failed to marshal message: %w", err)
	}

	messageID := options.messageID
	if messageID == "" {
		messageID = uuid.NewString()
	}

	headers := Headers{
		headerMessageID:    messageID,
		headerCurrentRetry: 0,
	}

	if options.maxRetries != nil {
		headers[headerMaxRetries] = *options.maxRetries
	}

	return body, Properties{
		MessageID:   messageID,
		ContentType: contentTypeJSON,
		Headers:     headers,
	}, options, nil
}

// send delivers an already serialized body. direct sends use routingKey as the
// queue name.
func (c *Client) send(
	ctx context.Context,
	exchange, routingKey string,
	direct bool,
	body []byte,
	props Properties,
	message any,
	timeout time.Duration,
) error {
	ch, err := c.acquireChannel(ctx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload := EventPayload{
		ExchangeName: exchange,
		RoutingKey:   routingKey,
		MessageID:    props.Headers.MessageID(),
		Message:      message,
		CurrentRetry: props.Headers.CurrentRetry(),
	}

	if direct {
		payload.QueueName = routingKey

		err = ch.SendToQueue(ctx, routingKey, body, props)
	} else {
		err = ch.Publish(ctx, exchange, routingKey, body, props)
	}

	if err != nil {
		return fmt.Errorf("failed to publish message to %q/%q: %w", exchange, routingKey, err)
	}

	c.recorder.Emit(EventPublish, payload)

	c.logger.Debug().
		Str("exchange", exchange).
		Str("routing_key", routingKey).
		Str("message_id", payload.MessageID).
		Int("current_retry", payload.CurrentRetry).
		Msg("message published")

	return nil
}
