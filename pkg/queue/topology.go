package queue

import (
	"context"
	"fmt"
)

type (
	ExchangeDeclaration struct {
		Name string
		Kind ExchangeKind
	}

	QueueDeclaration struct {
		Name    string
		Options QueueOptions
	}

	Binding struct {
		Queue    string
		Exchange string
		Pattern  string
	}

	// Topology groups the declarations a service needs before it consumes.
	Topology struct {
		Exchanges []ExchangeDeclaration
		Queues    []QueueDeclaration
		Bindings  []Binding
	}
)

// AssertQueue declares a queue. Repeating the call with the same options is safe.
func (c *Client) AssertQueue(ctx context.Context, name string, opts QueueOptions) error {
	ch, err := c.acquireChannel(ctx)
	if err != nil {
		return err
	}

	if err := ch.AssertQueue(name, opts); err != nil {
		return fmt.Errorf("failed to assert queue %q: %w", name, err)
	}

	return nil
}

// AssertExchange declares a durable exchange.
func (c *Client) AssertExchange(ctx context.Context, name string, kind ExchangeKind) error {
	if !kind.valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedExchangeKind, kind)
	}

	ch, err := c.acquireChannel(ctx)
	if err != nil {
		return err
	}

	if err := ch.AssertExchange(name, kind, ExchangeOptions{Durable: true}); err != nil {
		return fmt.Errorf("failed to assert exchange %q: %w", name, err)
	}

	return nil
}

func (c *Client) BindQueue(ctx context.Context, queue, exchange, pattern string) error {
	ch, err := c.acquireChannel(ctx)
	if err != nil {
		return err
	}

	if err := ch.BindQueue(queue, exchange, pattern); err != nil {
		return fmt.Errorf("failed to bind queue %q to %q with %q: %w", queue, exchange, pattern, err)
	}

	return nil
}

func (c *Client) DeleteQueue(ctx context.Context, name string) error {
	ch, err := c.acquireChannel(ctx)
	if err != nil {
		return err
	}

	if err := ch.DeleteQueue(name); err != nil {
		return fmt.Errorf("failed to delete queue %q: %w", name, err)
	}

	return nil
}

// DeclareTopology declares exchanges, then queues, then bindings.
func (c *Client) DeclareTopology(ctx context.Context, t Topology) error {
	for _, ex := range t.Exchanges {
		if err := c.AssertExchange(ctx, ex.Name, ex.Kind); err != nil {
			return err
		}
	}

	for _, q := range t.Queues {
		if err := c.AssertQueue(ctx, q.Name, q.Options); err != nil {
			return err
		}
	}

	for _, b := range t.Bindings {
		if err := c.BindQueue(ctx, b.Queue, b.Exchange, b.Pattern); err != nil {
			return err
		}
	}

	c.logger.Debug().
		Int("exchanges", len(t.Exchanges)).
		Int("queues", len(t.Queues)).
		Int("bindings", len(t.Bindings)).
		Msg("topology declared")

	return nil
}
