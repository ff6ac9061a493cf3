package queue

import (
	"context"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

type (
	// AMQPProvider connects to a RabbitMQ broker with amqp091-go.
	AMQPProvider struct {
		dial     dialFunc
		prefetch int
		logger   Logger
	}

	dialFunc func(url string, cfg amqp.Config) (amqpConnector, error)

	// amqpConnector narrows *amqp.Connection for tests.
	amqpConnector interface {
		channel() (amqpChannel, error)
		Close() error
	}

	dialedConnection struct {
		conn *amqp.Connection
	}

	amqpConnection struct {
		connector amqpConnector
		prefetch  int
		logger    Logger

		mutex    sync.Mutex
		channels []*ChannelWrapper
	}

	providerOption func(*AMQPProvider)
)

// WithPrefetch returns a providerOption which limits unacknowledged deliveries per channel.
func WithPrefetch(count int) providerOption {
	return func(p *AMQPProvider) {
		p.prefetch = count
	}
}

// WithProviderLogger returns a providerOption which sets the logger used by channels.
func WithProviderLogger(l Logger) providerOption {
	return func(p *AMQPProvider) {
		p.logger = l
	}
}

func withDialer(dial dialFunc) providerOption {
	return func(p *AMQPProvider) {
		p.dial = dial
	}
}

func NewAMQPProvider(opts ...providerOption) *AMQPProvider {
	provider := &AMQPProvider{
		dial:   dialAMQP,
		logger: nopLogger(),
	}

	for _, opt := range opts {
		opt(provider)
	}

	return provider
}

func dialAMQP(url string, cfg amqp.Config) (amqpConnector, error) {
	conn, err := amqp.DialConfig(url, cfg)
	if err != nil {
		return nil, err
	}

	return &dialedConnection{conn: conn}, nil
}

func (p *AMQPProvider) Connect(ctx context.Context, cfg Config) (Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	connector, err := p.dial(getURL(cfg), amqp.Config{
		Heartbeat: cfg.heartbeat(),
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(cfg.connectionTimeout()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	return &amqpConnection{
		connector: connector,
		prefetch:  p.prefetch,
		logger:    p.logger,
	}, nil
}

func (c *dialedConnection) channel() (amqpChannel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}

	return ch, nil
}

func (c *dialedConnection) Close() error {
	return c.conn.Close()
}

func (c *amqpConnection) CreateChannel() (Channel, error) {
	raw, err := c.connector.channel()
	if err != nil {
		return nil, err
	}

	ch := newChannelWrapper(raw, c.logger)

	if c.prefetch > 0 {
		if err := ch.qos(c.prefetch); err != nil {
			_ = ch.Close()

			return nil, fmt.Errorf("failed to set prefetch: %w", err)
		}
	}

	c.mutex.Lock()
	c.channels = append(c.channels, ch)
	c.mutex.Unlock()

	return ch, nil
}

func (c *amqpConnection) Close() error {
	c.mutex.Lock()
	channels := c.channels
	c.channels = nil
	c.mutex.Unlock()

	var errs []error

	for _, ch := range channels {
		if err := ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, err)
		}
	}

	if err := c.connector.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
