package queue

import "errors"

var (
	ErrClientClosed            = errors.New("queue client is closed")
	ErrChannelClosed           = errors.New("channel is closed")
	ErrExchangeNotFound        = errors.New("exchange not found")
	ErrQueueNotFound           = errors.New("queue not found")
	ErrUnknownDeliveryTag      = errors.New("unknown delivery tag")
	ErrUnsupportedExchangeKind = errors.New("unsupported exchange kind")
	ErrRetriesExhausted        = errors.New("message retries exhausted")
)
