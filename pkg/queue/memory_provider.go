package queue

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
)

const (
	headerDeathQueue  = "x-first-death-queue"
	headerDeathReason = "x-first-death-reason"
)

type (
	// MemoryProvider is an in-process broker with topic, fanout and direct
	// exchanges, per-queue consumers and explicit acknowledgements.
	//
	// A message nacked with requeue is parked on its queue until Redeliver is
	// called, so tests stay deterministic even when a handler always fails.
	MemoryProvider struct {
		mutex sync.Mutex

		exchanges map[string]memoryExchange
		queues    map[string]*memoryQueue
		unacked   map[uint64]*memoryDelivery
		nextTag   uint64

		connects   int
		channels   int
		unroutable int

		connectErr error
		channelErr error
		publishErr error
	}

	memoryExchange struct {
		kind ExchangeKind
		opts ExchangeOptions
	}

	memoryBinding struct {
		exchange string
		pattern  string
	}

	memoryQueue struct {
		name     string
		opts     QueueOptions
		bindings []memoryBinding
		ready    []memoryMessage
		parked   []memoryMessage
		consumer *memoryConsumer
	}

	memoryConsumer struct {
		channel  *memoryChannel
		callback DeliveryCallback
	}

	memoryMessage struct {
		body        []byte
		props       Properties
		exchange    string
		routingKey  string
		redelivered bool
	}

	memoryDelivery struct {
		queue   string
		message memoryMessage
		channel *memoryChannel
	}

	memoryConnection struct {
		provider *MemoryProvider

		mutex    sync.Mutex
		closed   bool
		channels []*memoryChannel
	}

	memoryChannel struct {
		provider *MemoryProvider
		closed   atomic.Bool
	}
)

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		exchanges: make(map[string]memoryExchange),
		queues:    make(map[string]*memoryQueue),
		unacked:   make(map[uint64]*memoryDelivery),
	}
}

func (p *MemoryProvider) Connect(ctx context.Context, _ Config) (Connection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.connects++

	if p.connectErr != nil {
		return nil, p.connectErr
	}

	return &memoryConnection{provider: p}, nil
}

// SetConnectError makes subsequent Connect calls fail with err until reset with nil.
func (p *MemoryProvider) SetConnectError(err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.connectErr = err
}

// SetChannelError makes subsequent CreateChannel calls fail with err.
func (p *MemoryProvider) SetChannelError(err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.channelErr = err
}

// SetPublishError makes subsequent publishes fail with err.
func (p *MemoryProvider) SetPublishError(err error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.publishErr = err
}

func (p *MemoryProvider) ConnectCount() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.connects
}

func (p *MemoryProvider) ChannelCount() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.channels
}

// ReadyCount returns the number of messages waiting on queue, parked ones included.
func (p *MemoryProvider) ReadyCount(queue string) int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	q, ok := p.queues[queue]
	if !ok {
		return 0
	}

	return len(q.ready) + len(q.parked)
}

func (p *MemoryProvider) UnackedCount() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return len(p.unacked)
}

// Unroutable returns how many published messages matched no queue.
func (p *MemoryProvider) Unroutable() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	return p.unroutable
}

func (p *MemoryProvider) HasQueue(name string) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	_, ok := p.queues[name]

	return ok
}

func (p *MemoryProvider) HasExchange(name string) bool {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	_, ok := p.exchanges[name]

	return ok
}

// Redeliver hands parked messages of queue back to its consumer.
func (p *MemoryProvider) Redeliver(queue string) {
	p.mutex.Lock()

	if q, ok := p.queues[queue]; ok {
		q.ready = append(q.ready, q.parked...)
		q.parked = nil
	}

	p.mutex.Unlock()

	p.dispatch(queue)
}

// dispatch hands every ready message of queue to its consumer, outside the lock.
func (p *MemoryProvider) dispatch(queue string) {
	p.mutex.Lock()

	q, ok := p.queues[queue]
	if !ok || q.consumer == nil || len(q.ready) == 0 {
		p.mutex.Unlock()

		return
	}

	consumer := q.consumer
	batch := q.ready
	q.ready = nil

	deliveries := make([]*Delivery, 0, len(batch))
	for _, m := range batch {
		p.nextTag++
		p.unacked[p.nextTag] = &memoryDelivery{
			queue:   queue,
			message: m,
			channel: consumer.channel,
		}

		deliveries = append(deliveries, m.delivery(p.nextTag))
	}

	p.mutex.Unlock()

	for _, d := range deliveries {
		consumer.callback(d)
	}
}

// route appends m to every queue bound to exchange for routingKey and returns
// their names. Must be called with the mutex held.
func (p *MemoryProvider) route(exchange, routingKey string, m memoryMessage) ([]string, error) {
	if exchange == "" {
		q, ok := p.queues[routingKey]
		if !ok {
			p.unroutable++

			return nil, nil
		}

		q.ready = append(q.ready, m)

		return []string{q.name}, nil
	}

	ex, ok := p.exchanges[exchange]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrExchangeNotFound, exchange)
	}

	var targets []string

	for _, q := range p.queues {
		for _, b := range q.bindings {
			if b.exchange == exchange && routes(ex.kind, b.pattern, routingKey) {
				q.ready = append(q.ready, m)
				targets = append(targets, q.name)

				break
			}
		}
	}

	if len(targets) == 0 {
		p.unroutable++
	}

	slices.Sort(targets)

	return targets, nil
}

// deadLetter routes a rejected message to the queue's dead-letter exchange,
// if any. Must be called with the mutex held.
func (p *MemoryProvider) deadLetter(q *memoryQueue, m memoryMessage) []string {
	dlx := q.opts.DeadLetterExchange
	if dlx == "" {
		return nil
	}

	routingKey := q.opts.DeadLetterRoutingKey
	if routingKey == "" {
		routingKey = m.routingKey
	}

	headers := m.props.Headers.clone()
	headers[headerDeathQueue] = q.name
	headers[headerDeathReason] = "rejected"

	dead := memoryMessage{
		body: m.body,
		props: Properties{
			MessageID:   m.props.MessageID,
			ContentType: m.props.ContentType,
			Headers:     headers,
		},
		exchange:   dlx,
		routingKey: routingKey,
	}

	targets, err := p.route(dlx, routingKey, dead)
	if err != nil {
		return nil
	}

	return targets
}

// detach drops the consumers of a closed channel and returns its unacked
// messages to their queues.
func (p *MemoryProvider) detach(ch *memoryChannel) []string {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	var targets []string

	for _, q := range p.queues {
		if q.consumer != nil && q.consumer.channel == ch {
			q.consumer = nil
		}
	}

	for tag, d := range p.unacked {
		if d.channel != ch {
			continue
		}

		delete(p.unacked, tag)

		if q, ok := p.queues[d.queue]; ok {
			d.message.redelivered = true
			q.ready = append(q.ready, d.message)
			targets = append(targets, q.name)
		}
	}

	return targets
}

func (m memoryMessage) delivery(tag uint64) *Delivery {
	return &Delivery{
		Tag:  tag,
		Body: slices.Clone(m.body),
		Properties: Properties{
			MessageID:   m.props.MessageID,
			ContentType: m.props.ContentType,
			Headers:     m.props.Headers.clone(),
		},
		Exchange:    m.exchange,
		RoutingKey:  m.routingKey,
		Redelivered: m.redelivered,
	}
}

func (c *memoryConnection) CreateChannel() (Channel, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return nil, ErrChannelClosed
	}

	p := c.provider

	p.mutex.Lock()
	p.channels++
	err := p.channelErr
	p.mutex.Unlock()

	if err != nil {
		return nil, err
	}

	ch := &memoryChannel{provider: p}
	c.channels = append(c.channels, ch)

	return ch, nil
}

func (c *memoryConnection) Close() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true

	var targets []string

	for _, ch := range c.channels {
		ch.closed.Store(true)
		targets = append(targets, c.provider.detach(ch)...)
	}

	// Messages that were in flight go to consumers on other connections.
	for _, target := range targets {
		c.provider.dispatch(target)
	}

	return nil
}

func (ch *memoryChannel) AssertQueue(name string, opts QueueOptions) error {
	if ch.closed.Load() {
		return ErrChannelClosed
	}

	if name == "" {
		return errors.New("queue name is required")
	}

	p := ch.provider

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if _, ok := p.queues[name]; !ok {
		p.queues[name] = &memoryQueue{name: name, opts: opts}
	}

	return nil
}

func (ch *memoryChannel) AssertExchange(name string, kind ExchangeKind, opts ExchangeOptions) error {
	if ch.closed.Load() {
		return ErrChannelClosed
	}

	if !kind.valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedExchangeKind, kind)
	}

	p := ch.provider

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if existing, ok := p.exchanges[name]; ok {
		if existing.kind != kind {
			return fmt.Errorf("exchange %q already declared as %s", name, existing.kind)
		}

		return nil
	}

	p.exchanges[name] = memoryExchange{kind: kind, opts: opts}

	return nil
}

func (ch *memoryChannel) BindQueue(queue, exchange, pattern string) error {
	if ch.closed.Load() {
		return ErrChannelClosed
	}

	p := ch.provider

	p.mutex.Lock()
	defer p.mutex.Unlock()

	q, ok := p.queues[queue]
	if !ok {
		return fmt.Errorf("%w: %q", ErrQueueNotFound, queue)
	}

	if _, ok := p.exchanges[exchange]; !ok {
		return fmt.Errorf("%w: %q", ErrExchangeNotFound, exchange)
	}

	binding := memoryBinding{exchange: exchange, pattern: pattern}
	if !slices.Contains(q.bindings, binding) {
		q.bindings = append(q.bindings, binding)
	}

	return nil
}

func (ch *memoryChannel) DeleteQueue(name string) error {
	if ch.closed.Load() {
		return ErrChannelClosed
	}

	p := ch.provider

	p.mutex.Lock()
	defer p.mutex.Unlock()

	delete(p.queues, name)

	for tag, d := range p.unacked {
		if d.queue == name {
			delete(p.unacked, tag)
		}
	}

	return nil
}

func (ch *memoryChannel) SendToQueue(ctx context.Context, queue string, body []byte, props Properties) error {
	return ch.Publish(ctx, "", queue, body, props)
}

func (ch *memoryChannel) Publish(ctx context.Context, exchange, routingKey string, body []byte, props Properties) error {
	if ch.closed.Load() {
		return ErrChannelClosed
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	p := ch.provider

	p.mutex.Lock()

	if p.publishErr != nil {
		err := p.publishErr
		p.mutex.Unlock()

		return err
	}

	targets, err := p.route(exchange, routingKey, memoryMessage{
		body: slices.Clone(body),
		props: Properties{
			MessageID:   props.MessageID,
			ContentType: props.ContentType,
			Headers:     props.Headers.clone(),
		},
		exchange:   exchange,
		routingKey: routingKey,
	})

	p.mutex.Unlock()

	if err != nil {
		return err
	}

	for _, target := range targets {
		p.dispatch(target)
	}

	return nil
}

func (ch *memoryChannel) Consume(ctx context.Context, queue string, callback DeliveryCallback) error {
	if ch.closed.Load() {
		return ErrChannelClosed
	}

	p := ch.provider

	p.mutex.Lock()

	q, ok := p.queues[queue]
	if !ok {
		p.mutex.Unlock()

		return fmt.Errorf("%w: %q", ErrQueueNotFound, queue)
	}

	if q.consumer != nil {
		p.mutex.Unlock()

		return fmt.Errorf("queue %q already has a consumer", queue)
	}

	consumer := &memoryConsumer{channel: ch, callback: callback}
	q.consumer = consumer

	p.mutex.Unlock()

	if done := ctx.Done(); done != nil {
		go func() {
			<-done

			p.mutex.Lock()
			defer p.mutex.Unlock()

			if q, ok := p.queues[queue]; ok && q.consumer == consumer {
				q.consumer = nil
			}
		}()
	}

	p.dispatch(queue)

	return nil
}

func (ch *memoryChannel) Ack(d *Delivery) error {
	if ch.closed.Load() {
		return ErrChannelClosed
	}

	p := ch.provider

	p.mutex.Lock()
	defer p.mutex.Unlock()

	if _, ok := p.unacked[d.Tag]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownDeliveryTag, d.Tag)
	}

	delete(p.unacked, d.Tag)

	return nil
}

func (ch *memoryChannel) Nack(d *Delivery, multiple, requeue bool) error {
	if ch.closed.Load() {
		return ErrChannelClosed
	}

	p := ch.provider

	p.mutex.Lock()

	if _, ok := p.unacked[d.Tag]; !ok {
		p.mutex.Unlock()

		return fmt.Errorf("%w: %d", ErrUnknownDeliveryTag, d.Tag)
	}

	tags := []uint64{d.Tag}
	if multiple {
		tags = tags[:0]

		for tag, pending := range p.unacked {
			if tag <= d.Tag && pending.channel == ch {
				tags = append(tags, tag)
			}
		}

		slices.Sort(tags)
	}

	var targets []string

	for _, tag := range tags {
		pending := p.unacked[tag]
		delete(p.unacked, tag)

		q, ok := p.queues[pending.queue]
		if !ok {
			continue
		}

		if requeue {
			pending.message.redelivered = true
			q.parked = append(q.parked, pending.message)

			continue
		}

		targets = append(targets, p.deadLetter(q, pending.message)...)
	}

	p.mutex.Unlock()

	for _, target := range targets {
		p.dispatch(target)
	}

	return nil
}
