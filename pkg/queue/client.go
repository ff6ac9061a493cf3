package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Client publishes and consumes messages over a single connection and channel
// obtained lazily from its Provider.
type Client struct {
	provider Provider
	config   Config
	logger   Logger
	recorder *Recorder
	requeue  bool

	retryTimeout time.Duration

	mutex   sync.Mutex
	conn    Connection
	channel Channel
	closed  bool
}

// NewClient returns a client for provider. Nothing is dialed until the first
// call that needs the broker.
//
// The client's Recorder keeps every event, message bodies included, for the
// client's lifetime, so its memory grows with the traffic the client handles.
func NewClient(provider Provider, config Config, opts ...ClientOption) *Client {
	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if options.logger == nil {
		options.logger = nopLogger()
	}

	if options.recorder == nil {
		options.recorder = NewRecorder()
	}

	return &Client{
		provider: provider,
		config:   config,
		logger:   options.logger,
		recorder: options.recorder,
		requeue:  options.requeueOnFailure,

		retryTimeout: options.retryTimeout,
	}
}

// Recorder exposes the client's event ledger.
func (c *Client) Recorder() *Recorder {
	return c.recorder
}

// Connect opens the connection and channel. Calling it again while connected
// is a no-op.
func (c *Client) Connect(ctx context.Context) error {
	_, err := c.acquireChannel(ctx)

	return err
}

func (c *Client) acquireChannel(ctx context.Context) (Channel, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return nil, ErrClientClosed
	}

	if c.channel != nil {
		return c.channel, nil
	}

	conn, err := c.provider.Connect(ctx, c.config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.CreateChannel()
	if err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}

		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	c.conn = conn
	c.channel = ch

	c.logger.Info().
		Str("host", c.config.Host).
		Str("vhost", c.config.Vhost).
		Msg("connected to broker")

	return ch, nil
}

// Close tears the connection down without waiting for running handlers.
// A closed client cannot be reconnected.
func (c *Client) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.closed = true

	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	c.channel = nil

	if err != nil {
		return fmt.Errorf("failed to close broker connection: %w", err)
	}

	c.logger.Info().Msg("broker connection closed")

	return nil
}

func (c *Client) IsConnected() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.channel != nil
}
