package outbox

import (
	"context"
	"sync"
	"time"

	"github.com/architeacher/svc-order-events/internal/config"
	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/ports"
	"github.com/architeacher/svc-order-events/internal/usecases"
	"github.com/architeacher/svc-order-events/internal/usecases/commands"
	"github.com/architeacher/svc-order-events/internal/usecases/queries"
)

const (
	defaultPollInterval = 5 * time.Second
	defaultBatchSize    = 10
)

var _ ports.BackgroundProcessor = (*Processor)(nil)

// Processor relays stored outbox events to the broker on every tick: pending
// events first seen and failed events whose retry time has come.
type Processor struct {
	app          *usecases.PublisherApplication
	logger       infrastructure.Logger
	pollInterval time.Duration
	batchSize    int
}

func NewProcessor(
	app *usecases.PublisherApplication,
	cfg config.OutboxConfig,
	logger infrastructure.Logger,
) *Processor {
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &Processor{
		app:          app,
		logger:       logger,
		pollInterval: pollInterval,
		batchSize:    batchSize,
	}
}

// Start blocks until ctx is cancelled and returns its error.
func (p *Processor) Start(ctx context.Context) error {
	p.logger.Info().
		Dur("poll_interval", p.pollInterval).
		Int("batch_size", p.batchSize).
		Msg("starting outbox processor")

	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("outbox processor shutting down")

			return ctx.Err()

		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Processor) tick(ctx context.Context) {
	var wg sync.WaitGroup

	wg.Go(func() {
		events, err := p.app.Queries.FetchPendingOutboxEventsQueryHandler.Execute(ctx, queries.FetchPendingOutboxEventsQuery{
			BatchSize: p.batchSize,
		})
		if err != nil {
			p.logger.Error().Err(err).Msg("failed to fetch pending outbox events")

			return
		}

		p.publish(ctx, "pending", events)
	})

	wg.Go(func() {
		events, err := p.app.Queries.FetchRetryableOutboxEventsQueryHandler.Execute(ctx, queries.FetchRetryableOutboxEventsQuery{
			BatchSize: p.batchSize,
		})
		if err != nil {
			p.logger.Error().Err(err).Msg("failed to fetch retryable outbox events")

			return
		}

		p.publish(ctx, "retryable", events)
	})

	wg.Wait()
}

func (p *Processor) publish(ctx context.Context, kind string, events []*domain.OutboxEvent) {
	if len(events) == 0 {
		return
	}

	p.logger.Debug().Int("count", len(events)).Str("kind", kind).Msg("processing outbox events")

	var wg sync.WaitGroup

	for _, event := range events {
		wg.Go(func() {
			if _, err := p.app.Commands.PublishOutboxEventHandler.Handle(ctx, commands.PublishOutboxEventCommand{
				Event: event,
			}); err != nil {
				p.logger.Error().
					Err(err).
					Str("event_id", event.ID.String()).
					Str("kind", kind).
					Msg("failed to process outbox event")
			}
		})
	}

	wg.Wait()
}
