package runtime

import (
	"github.com/architeacher/svc-order-events/internal/config"
	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/pkg/queue"
)

// subscriberTopology declares the event exchanges, the work queues consuming
// them and the dead-letter path rejected messages end up on.
func subscriberTopology(cfg config.QueueConfig) queue.Topology {
	workQueue := queue.QueueOptions{
		Durable:            cfg.Durable,
		DeadLetterExchange: cfg.DeadLetterExchange,
		MessageTTL:         cfg.MessageTTL,
	}

	return queue.Topology{
		Exchanges: []queue.ExchangeDeclaration{
			{Name: cfg.OrderExchange, Kind: queue.ExchangeTopic},
			{Name: cfg.UserExchange, Kind: queue.ExchangeTopic},
			{Name: cfg.DeadLetterExchange, Kind: queue.ExchangeFanout},
		},
		Queues: []queue.QueueDeclaration{
			{Name: cfg.OrderDeleteQueue, Options: workQueue},
			{Name: cfg.UserDeletedQueue, Options: workQueue},
			{Name: cfg.DeadLetterQueue, Options: queue.QueueOptions{Durable: cfg.Durable}},
		},
		Bindings: []queue.Binding{
			{Queue: cfg.OrderDeleteQueue, Exchange: cfg.OrderExchange, Pattern: cfg.OrderDeletedKey},
			{Queue: cfg.UserDeletedQueue, Exchange: cfg.UserExchange, Pattern: cfg.UserDeletedKey},
			{Queue: cfg.DeadLetterQueue, Exchange: cfg.DeadLetterExchange, Pattern: ""},
		},
	}
}

// publisherTopology declares the exchanges outbox events are relayed to.
func publisherTopology(cfg config.QueueConfig) queue.Topology {
	return queue.Topology{
		Exchanges: []queue.ExchangeDeclaration{
			{Name: cfg.OrderExchange, Kind: queue.ExchangeTopic},
		},
	}
}

// orderDeletedRoute is where order.deleted outbox events are published, or a
// disabled route when the outbox is off.
func orderDeletedRoute(cfg *config.ServiceConfig) domain.OutboxRoute {
	if !cfg.Outbox.Enabled {
		return domain.OutboxRoute{}
	}

	return domain.OutboxRoute{
		Exchange:   cfg.Queue.OrderExchange,
		EventType:  cfg.Queue.OrderDeletedKey,
		MaxRetries: cfg.Outbox.MaxRetries,
	}
}
