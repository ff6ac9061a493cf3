package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeletedEvents_Validate(t *testing.T) {
	t.Parallel()

	positive := int64(42)
	zero := int64(0)
	negative := int64(-3)

	tests := []struct {
		name    string
		id      *int64
		wantErr bool
	}{
		{name: "positive id", id: &positive},
		{name: "missing id", id: nil, wantErr: true},
		{name: "zero id", id: &zero, wantErr: true},
		{name: "negative id", id: &negative, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			for _, err := range []error{
				OrderDeletedEvent{ID: tt.id}.Validate(),
				UserDeletedEvent{ID: tt.id}.Validate(),
			} {
				if !tt.wantErr {
					assert.NoError(t, err)

					continue
				}

				assert.ErrorIs(t, err, ErrInvalidMessage)

				var domainErr *DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, "INVALID_MESSAGE", domainErr.Code)
			}
		})
	}
}

func TestDeletedEvents_DecodeNullID(t *testing.T) {
	t.Parallel()

	var event UserDeletedEvent
	require.NoError(t, json.Unmarshal([]byte(`{"id":null}`), &event))

	assert.ErrorIs(t, event.Validate(), ErrInvalidMessage)
}

func TestNewOrderDeletedOutboxEvent(t *testing.T) {
	t.Parallel()

	route := OutboxRoute{Exchange: "order.events", EventType: "order.deleted", MaxRetries: 5}

	event, err := NewOrderDeletedOutboxEvent(42, route)
	require.NoError(t, err)

	assert.Equal(t, "42", event.AggregateID)
	assert.Equal(t, AggregateTypeOrder, event.AggregateType)
	assert.Equal(t, "order.events", event.Exchange)
	assert.Equal(t, "order.deleted", event.EventType)
	assert.Equal(t, OutboxEventStatusPending, event.Status)
	assert.Equal(t, 5, event.MaxRetries)
	assert.JSONEq(t, `{"id":42}`, string(event.Payload))

	other, err := NewOrderDeletedOutboxEvent(42, route)
	require.NoError(t, err)
	assert.NotEqual(t, event.ID, other.ID)
}

func TestOutboxEvent_CanRetry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		retryCount int
		maxRetries int
		expected   bool
	}{
		{retryCount: 0, maxRetries: 3, expected: true},
		{retryCount: 1, maxRetries: 3, expected: true},
		{retryCount: 2, maxRetries: 3, expected: false},
		{retryCount: 0, maxRetries: 1, expected: false},
		{retryCount: 0, maxRetries: 0, expected: false},
	}

	for _, tt := range tests {
		event := &OutboxEvent{RetryCount: tt.retryCount, MaxRetries: tt.maxRetries}

		assert.Equal(t, tt.expected, event.CanRetry(), "retry %d of %d", tt.retryCount, tt.maxRetries)
	}
}

func TestOutboxRoute_Enabled(t *testing.T) {
	t.Parallel()

	assert.True(t, OutboxRoute{Exchange: "order.events"}.Enabled())
	assert.False(t, OutboxRoute{EventType: "order.deleted"}.Enabled())
}
