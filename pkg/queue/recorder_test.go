package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Emit(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()

	first := recorder.Emit(EventPublish, EventPayload{ExchangeName: "order.events"})
	second := recorder.Emit(EventAck, EventPayload{QueueName: "orders.delete"})
	third := recorder.Emit(EventPublish, EventPayload{ExchangeName: "user.events"})

	assert.Equal(t, uint64(1), first.Index)
	assert.Equal(t, uint64(2), second.Index)
	assert.Equal(t, uint64(3), third.Index)

	assert.Equal(t, 2, recorder.Count(EventPublish))
	assert.Equal(t, 1, recorder.Count(EventAck))
	assert.Zero(t, recorder.Count(EventNack))

	history := recorder.History(EventPublish)
	require.Len(t, history, 2)
	assert.Equal(t, "order.events", history[0].Payload.ExchangeName)
	assert.Equal(t, "user.events", history[1].Payload.ExchangeName)

	ledger := recorder.Ledger()
	assert.Len(t, ledger, 2)
	assert.Equal(t, 2, ledger[EventPublish].Count)
}

func TestRecorder_LedgerIsACopy(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	recorder.Emit(EventAck, EventPayload{QueueName: "orders.delete"})

	ledger := recorder.Ledger()
	entry := ledger[EventAck]
	entry.History[0].Payload.QueueName = "changed"

	history := recorder.History(EventAck)
	history[0].Name = "changed"

	assert.Equal(t, "orders.delete", recorder.History(EventAck)[0].Payload.QueueName)
	assert.Equal(t, EventAck, recorder.History(EventAck)[0].Name)
}

func TestRecorder_WaitForResolvesFromHistory(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	for range 3 {
		recorder.Emit(EventAck, EventPayload{QueueName: "orders.delete"})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := recorder.WaitFor(ctx, EventAck, 3)

	require.NoError(t, err, "a satisfied wait never looks at the context")
	assert.Equal(t, EventAck, res.Name)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, uint64(3), res.LastEvent.Index)
}

func TestRecorder_WaitForBlocksUntilThreshold(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	ctx := testContext(t)

	done := make(chan WaitResult, 1)

	go func() {
		res, err := recorder.WaitFor(ctx, EventAck, 2)
		if err == nil {
			done <- res
		}
	}()

	recorder.Emit(EventAck, EventPayload{MessageID: "a"})

	select {
	case <-done:
		t.Fatal("wait resolved before the threshold")
	case <-time.After(20 * time.Millisecond):
	}

	recorder.Emit(EventNack, EventPayload{MessageID: "x"})
	recorder.Emit(EventAck, EventPayload{MessageID: "b"})

	select {
	case res := <-done:
		assert.Equal(t, 2, res.Count)
		assert.Equal(t, "b", res.LastEvent.Payload.MessageID)
	case <-ctx.Done():
		t.Fatal("wait never resolved")
	}
}

func TestRecorder_WaitForFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{name: "no filter", filter: Filter{}, want: 4},
		{name: "by queue", filter: Filter{QueueName: "orders.delete"}, want: 2},
		{name: "by exchange", filter: Filter{ExchangeName: "user.events"}, want: 1},
		{name: "by queue and exchange", filter: Filter{QueueName: "orders.delete", ExchangeName: "order.events"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			recorder := NewRecorder()
			recorder.Emit(EventNack, EventPayload{QueueName: "orders.delete", ExchangeName: "order.events"})
			recorder.Emit(EventNack, EventPayload{QueueName: "orders.delete"})
			recorder.Emit(EventNack, EventPayload{QueueName: "orders.user-deleted", ExchangeName: "user.events"})
			recorder.Emit(EventNack, EventPayload{QueueName: "orders.dead-letter"})

			res, err := recorder.WaitFor(testContext(t), EventNack, tt.want, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Count)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
			defer cancel()

			_, err = recorder.WaitFor(ctx, EventNack, tt.want+1, tt.filter)
			assert.ErrorIs(t, err, context.DeadlineExceeded)
		})
	}
}

func TestRecorder_WaitForCancelled(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()
	ctx, cancel := context.WithCancel(context.Background())

	errs := make(chan error, 1)

	go func() {
		_, err := recorder.WaitFor(ctx, EventAck, 1)
		errs <- err
	}()

	cancel()

	assert.ErrorIs(t, <-errs, context.Canceled)

	// A later event must not panic on the abandoned waiter.
	recorder.Emit(EventAck, EventPayload{})
	assert.Equal(t, 1, recorder.Count(EventAck))
}

func TestRecorder_ConcurrentWaitersResolveOnce(t *testing.T) {
	t.Parallel()

	const waiters = 20

	recorder := NewRecorder()
	ctx := testContext(t)

	var (
		wg       sync.WaitGroup
		resolved atomic.Int32
	)

	for range waiters {
		wg.Add(1)

		go func() {
			defer wg.Done()

			if _, err := recorder.WaitFor(ctx, EventAck, 5); err == nil {
				resolved.Add(1)
			}
		}()
	}

	var emitters sync.WaitGroup

	for range 10 {
		emitters.Add(1)

		go func() {
			defer emitters.Done()

			recorder.Emit(EventAck, EventPayload{})
		}()
	}

	emitters.Wait()
	wg.Wait()

	assert.Equal(t, int32(waiters), resolved.Load())
	assert.Equal(t, 10, recorder.Count(EventAck))
}

func TestRecorder_Subscribe(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()

	var (
		acks []Event
		all  []Event
	)

	unsubscribe := recorder.Subscribe(EventAck, func(e Event) {
		acks = append(acks, e)
	})
	unsubscribeAll := recorder.SubscribeAll(func(e Event) {
		all = append(all, e)
	})

	recorder.Emit(EventAck, EventPayload{MessageID: "1"})
	recorder.Emit(EventNack, EventPayload{MessageID: "2"})

	unsubscribe()
	unsubscribeAll()

	recorder.Emit(EventAck, EventPayload{MessageID: "3"})

	require.Len(t, acks, 1)
	assert.Equal(t, "1", acks[0].Payload.MessageID)
	require.Len(t, all, 2)
	assert.Equal(t, EventNack, all[1].Name)
}

func TestRecorder_SubscriberMayEmit(t *testing.T) {
	t.Parallel()

	recorder := NewRecorder()

	recorder.Subscribe(EventAck, func(e Event) {
		recorder.Emit(QueueEvent(EventAck, e.Payload.QueueName), e.Payload)
	})

	recorder.Emit(EventAck, EventPayload{QueueName: "orders.delete"})

	assert.Equal(t, 1, recorder.Count("ack:orders.delete"))
}

func TestQueueEvent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ack:orders.delete", QueueEvent(EventAck, "orders.delete"))
	assert.Equal(t, "nack:orders.user-deleted", QueueEvent(EventNack, "orders.user-deleted"))
}
