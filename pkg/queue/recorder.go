package queue

import (
	"context"
	"slices"
	"sync"
)

// Lifecycle events emitted by the client. Acks and nacks are also emitted
// under a queue-scoped name, see QueueEvent.
const (
	EventPublish = "publish"
	EventConsume = "consume"
	EventAck     = "ack"
	EventNack    = "nack"
)

type (
	EventPayload struct {
		QueueName    string
		ExchangeName string
		RoutingKey   string
		MessageID    string
		Message      any
		CurrentRetry int
		Requeue      bool
		Err          error
	}

	Event struct {
		Name    string
		Index   uint64
		Payload EventPayload
	}

	LedgerEntry struct {
		Count   int
		History []Event
	}

	// Filter narrows WaitFor to events of one queue and/or exchange.
	// Empty fields match anything.
	Filter struct {
		QueueName    string
		ExchangeName string
	}

	WaitResult struct {
		Name      string
		LastEvent Event
		Count     int
	}

	// Recorder keeps an append-only ledger of lifecycle events and lets callers
	// block until a number of them has been observed. Nothing is ever evicted,
	// payload bodies included.
	Recorder struct {
		mutex sync.Mutex

		ledger  map[string]*LedgerEntry
		index   uint64
		waiters map[*waiter]struct{}

		subscribers    map[string]map[uint64]func(Event)
		allSubscribers map[uint64]func(Event)
		nextID         uint64
	}

	waiter struct {
		name      string
		threshold int
		filter    Filter
		count     int
		last      Event
		done      chan WaitResult
	}
)

// QueueEvent returns the queue-scoped variant of an event name, e.g. "ack:orders".
func QueueEvent(name, queue string) string {
	return name + ":" + queue
}

func NewRecorder() *Recorder {
	return &Recorder{
		ledger:         make(map[string]*LedgerEntry),
		waiters:        make(map[*waiter]struct{}),
		subscribers:    make(map[string]map[uint64]func(Event)),
		allSubscribers: make(map[uint64]func(Event)),
	}
}

// Emit appends an event to the ledger, settles satisfied waiters and then
// calls subscribers outside the lock.
func (r *Recorder) Emit(name string, payload EventPayload) Event {
	r.mutex.Lock()

	r.index++
	event := Event{
		Name:    name,
		Index:   r.index,
		Payload: payload,
	}

	entry, ok := r.ledger[name]
	if !ok {
		entry = &LedgerEntry{}
		r.ledger[name] = entry
	}

	entry.Count++
	entry.History = append(entry.History, event)

	r.ledgerUpdated(event)

	callbacks := make([]func(Event), 0, len(r.subscribers[name])+len(r.allSubscribers))
	for _, fn := range r.subscribers[name] {
		callbacks = append(callbacks, fn)
	}

	for _, fn := range r.allSubscribers {
		callbacks = append(callbacks, fn)
	}

	r.mutex.Unlock()

	for _, fn := range callbacks {
		fn(event)
	}

	return event
}

// ledgerUpdated must be called with the mutex held.
func (r *Recorder) ledgerUpdated(event Event) {
	for w := range r.waiters {
		if w.name != event.Name || !w.filter.matches(event.Payload) {
			continue
		}

		w.count++
		w.last = event

		if w.count >= w.threshold {
			delete(r.waiters, w)
			w.done <- w.result()
		}
	}
}

// Subscribe registers fn for one event name. Callbacks may run concurrently.
func (r *Recorder) Subscribe(name string, fn func(Event)) (unsubscribe func()) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.nextID++
	id := r.nextID

	if r.subscribers[name] == nil {
		r.subscribers[name] = make(map[uint64]func(Event))
	}

	r.subscribers[name][id] = fn

	return func() {
		r.mutex.Lock()
		defer r.mutex.Unlock()

		delete(r.subscribers[name], id)
	}
}

// SubscribeAll registers fn for every event.
func (r *Recorder) SubscribeAll(fn func(Event)) (unsubscribe func()) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.nextID++
	id := r.nextID
	r.allSubscribers[id] = fn

	return func() {
		r.mutex.Lock()
		defer r.mutex.Unlock()

		delete(r.allSubscribers, id)
	}
}

// WaitFor blocks until at least threshold events named name, matching the
// optional filter, have been recorded. Events recorded before the call count.
// It never times out on its own; cancel ctx to give up.
func (r *Recorder) WaitFor(ctx context.Context, name string, threshold int, filter ...Filter) (WaitResult, error) {
	w := &waiter{
		name:      name,
		threshold: threshold,
		done:      make(chan WaitResult, 1),
	}

	if len(filter) > 0 {
		w.filter = filter[0]
	}

	r.mutex.Lock()

	if entry, ok := r.ledger[name]; ok {
		for _, event := range entry.History {
			if w.filter.matches(event.Payload) {
				w.count++
				w.last = event
			}
		}
	}

	if w.count >= threshold {
		r.mutex.Unlock()

		return w.result(), nil
	}

	r.waiters[w] = struct{}{}
	r.mutex.Unlock()

	select {
	case res := <-w.done:
		return res, nil
	case <-ctx.Done():
		r.mutex.Lock()
		delete(r.waiters, w)
		r.mutex.Unlock()

		// The condition may have been met while we were abandoning.
		select {
		case res := <-w.done:
			return res, nil
		default:
		}

		return WaitResult{}, ctx.Err()
	}
}

func (r *Recorder) Count(name string) int {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if entry, ok := r.ledger[name]; ok {
		return entry.Count
	}

	return 0
}

func (r *Recorder) History(name string) []Event {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if entry, ok := r.ledger[name]; ok {
		return slices.Clone(entry.History)
	}

	return nil
}

// Ledger returns a copy of the whole ledger.
func (r *Recorder) Ledger() map[string]LedgerEntry {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	out := make(map[string]LedgerEntry, len(r.ledger))
	for name, entry := range r.ledger {
		out[name] = LedgerEntry{
			Count:   entry.Count,
			History: slices.Clone(entry.History),
		}
	}

	return out
}

func (f Filter) matches(p EventPayload) bool {
	if f.QueueName != "" && f.QueueName != p.QueueName {
		return false
	}

	if f.ExchangeName != "" && f.ExchangeName != p.ExchangeName {
		return false
	}

	return true
}

func (w *waiter) result() WaitResult {
	return WaitResult{
		Name:      w.name,
		LastEvent: w.last,
		Count:     w.count,
	}
}
