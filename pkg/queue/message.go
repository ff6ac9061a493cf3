package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"strconv"
)

const (
	contentTypeJSON = "application/json"

	headerMessageID    = "messageId"
	headerMaxRetries   = "maxRetries"
	headerCurrentRetry = "currentRetry"
)

// Headers carries message metadata across the broker.
type Headers map[string]any

// Message is what a Handler receives for each delivery.
type Message struct {
	Body       []byte
	Headers    Headers
	Queue      string
	Exchange   string
	RoutingKey string

	Redelivered bool
}

// Handler processes one message. A returned error or a panic routes the
// message into the retry path.
type Handler func(ctx context.Context, msg Message) error

func newMessage(queue string, d *Delivery) Message {
	headers := d.Properties.Headers.clone()
	if d.Properties.MessageID != "" {
		if _, ok := headers[headerMessageID]; !ok {
			headers[headerMessageID] = d.Properties.MessageID
		}
	}

	return Message{
		Body:        d.Body,
		Headers:     headers,
		Queue:       queue,
		Exchange:    d.Exchange,
		RoutingKey:  d.RoutingKey,
		Redelivered: d.Redelivered,
	}
}

// Unmarshal decodes the JSON body into target.
func (m Message) Unmarshal(target any) error {
	if err := json.Unmarshal(m.Body, target); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	return nil
}

func (m Message) MessageID() string {
	return m.Headers.MessageID()
}

func (m Message) MaxRetries() (int, bool) {
	return m.Headers.MaxRetries()
}

func (m Message) CurrentRetry() int {
	return m.Headers.CurrentRetry()
}

func (h Headers) MessageID() string {
	v, ok := h[headerMessageID]
	if !ok {
		return ""
	}

	switch id := v.(type) {
	case string:
		return id
	case []byte:
		return string(id)
	default:
		return fmt.Sprint(id)
	}
}

func (h Headers) MaxRetries() (int, bool) {
	v, ok := h[headerMaxRetries]
	if !ok || v == nil {
		return 0, false
	}

	n, ok := headerInt(v)
	if !ok || n < 0 {
		return 0, false
	}

	return n, true
}

func (h Headers) CurrentRetry() int {
	n, ok := headerInt(h[headerCurrentRetry])
	if !ok || n < 0 {
		return 0
	}

	return n
}

func (h Headers) clone() Headers {
	out := make(Headers, len(h)+3)
	maps.Copy(out, h)

	return out
}

// headerInt normalizes the integer encodings brokers hand back for table values.
func headerInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return boundedInt(int64(n))
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		return boundedInt(n)
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		if n > math.MaxInt32 {
			return 0, false
		}

		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}

		return int(n), true
	case float32:
		return boundedFloat(float64(n))
	case float64:
		return boundedFloat(n)
	case string:
		i, err := strconv.ParseInt(n, 10, 32)

		return int(i), err == nil
	case []byte:
		i, err := strconv.ParseInt(string(n), 10, 32)

		return int(i), err == nil
	default:
		return 0, false
	}
}

// boundedInt accepts n when it fits the int32 range every header counter
// shares, whatever width the broker encoded it with.
func boundedInt(n int64) (int, bool) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}

	return int(n), true
}

func boundedFloat(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}
