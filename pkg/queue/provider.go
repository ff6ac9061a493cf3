package queue

import (
	"context"
	"time"
)

type (
	// Provider opens broker connections. AMQPProvider talks to RabbitMQ,
	// MemoryProvider keeps everything in process.
	Provider interface {
		Connect(ctx context.Context, cfg Config) (Connection, error)
	}

	Connection interface {
		CreateChannel() (Channel, error)
		Close() error
	}

	//nolint:interfacebloat // mirrors the broker channel surface used by the client
	Channel interface {
		AssertQueue(name string, opts QueueOptions) error
		AssertExchange(name string, kind ExchangeKind, opts ExchangeOptions) error
		BindQueue(queue, exchange, pattern string) error
		DeleteQueue(name string) error

		SendToQueue(ctx context.Context, queue string, body []byte, props Properties) error
		Publish(ctx context.Context, exchange, routingKey string, body []byte, props Properties) error

		Consume(ctx context.Context, queue string, callback DeliveryCallback) error
		Ack(d *Delivery) error
		Nack(d *Delivery, multiple, requeue bool) error
	}

	// DeliveryCallback must return quickly; the client hands the work to a goroutine.
	DeliveryCallback func(d *Delivery)

	ExchangeKind string

	ExchangeOptions struct {
		Durable    bool
		AutoDelete bool
	}

	QueueOptions struct {
		Durable    bool
		AutoDelete bool
		Exclusive  bool

		DeadLetterExchange   string
		DeadLetterRoutingKey string
		MessageTTL           time.Duration
		MaxLength            int
	}

	Properties struct {
		MessageID   string
		ContentType string
		Headers     Headers
	}

	Delivery struct {
		Tag         uint64
		Body        []byte
		Properties  Properties
		Exchange    string
		RoutingKey  string
		Redelivered bool
	}
)

const (
	ExchangeTopic  ExchangeKind = "topic"
	ExchangeFanout ExchangeKind = "fanout"
	ExchangeDirect ExchangeKind = "direct"
)

const (
	argDeadLetterExchange   = "x-dead-letter-exchange"
	argDeadLetterRoutingKey = "x-dead-letter-routing-key"
	argMessageTTL           = "x-message-ttl"
	argMaxLength            = "x-max-length"
)

func (k ExchangeKind) valid() bool {
	switch k {
	case ExchangeTopic, ExchangeFanout, ExchangeDirect:
		return true
	default:
		return false
	}
}

// arguments renders the broker declaration arguments, nil when there are none.
func (o QueueOptions) arguments() map[string]any {
	args := make(map[string]any)

	if o.DeadLetterExchange != "" {
		args[argDeadLetterExchange] = o.DeadLetterExchange
	}

	if o.DeadLetterRoutingKey != "" {
		args[argDeadLetterRoutingKey] = o.DeadLetterRoutingKey
	}

	if o.MessageTTL > 0 {
		args[argMessageTTL] = o.MessageTTL.Milliseconds()
	}

	if o.MaxLength > 0 {
		args[argMaxLength] = int64(o.MaxLength)
	}

	if len(args) == 0 {
		return nil
	}

	return args
}
