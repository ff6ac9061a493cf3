package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/architeacher/svc-order-events/internal/ports"
	"github.com/architeacher/svc-order-events/pkg/queue"
)

// SubscriberCtx runs the consumers of order.deleted and user.deleted events.
type SubscriberCtx struct {
	deps *Dependencies

	shutdownChannel chan os.Signal

	backgroundActorCtx      context.Context
	backgroundActorStopFunc context.CancelFunc
}

func NewSubscriber(opt ...SubscriberOption) *SubscriberCtx {
	if len(opt) != 0 {
		sCtx := SubscriberCtx{}

		for i := range opt {
			opt[i](&sCtx)
		}

		return &sCtx
	}

	return &SubscriberCtx{
		shutdownChannel: make(chan os.Signal, 1),
	}
}

func (c *SubscriberCtx) Run() {
	c.build()
	c.start()
	c.deps.monitorConfigChanges(c.backgroundActorCtx)
	c.shutdownHook()
	c.shutdown()
}

func (c *SubscriberCtx) build() {
	c.backgroundActorCtx, c.backgroundActorStopFunc = context.WithCancel(context.Background())

	deps, err := initializeDependencies(c.backgroundActorCtx, WithSubscriber(c.backgroundActorCtx), WithOpsServer())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	c.deps = deps
}

func (c *SubscriberCtx) start() {
	c.deps.logger.Info().Msg("starting order events subscriber")

	consumers := []struct {
		queue   string
		handler ports.MessageHandler
	}{
		{queue: c.deps.cfg.Queue.OrderDeleteQueue, handler: c.deps.Workers.OrderDeletedWorker},
		{queue: c.deps.cfg.Queue.UserDeletedQueue, handler: c.deps.Workers.UserDeletedWorker},
	}

	for _, consumer := range consumers {
		err := c.deps.Infra.QueueClient.Consume(c.backgroundActorCtx, consumer.queue, consumer.handler.ProcessMessage,
			queue.WithErrorHandler(func(err error) {
				c.deps.logger.Error().Err(err).Str("queue", consumer.queue).Msg("consumer error")
			}),
		)
		if err != nil && !errors.Is(err, context.Canceled) {
			c.deps.logger.Fatal().Err(err).Str("queue", consumer.queue).Msg("unable to start consumer")
		}
	}

	c.deps.startOpsServer(c.backgroundActorStopFunc)
}

func (c *SubscriberCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

func (c *SubscriberCtx) shutdown() {
	// Waits for one of the following shutdown conditions to happen.
	select {
	case <-c.backgroundActorCtx.Done():
	case <-c.shutdownChannel:
		defer close(c.shutdownChannel)
	}

	c.deps.logger.Info().Msg("received shutdown signal")

	// Cancel context that underlying processes would start cleanup.
	c.backgroundActorStopFunc()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.deps.cfg.OpsServer.ShutdownTimeout)
	defer cancel()

	c.deps.cleanup(shutdownCtx)

	c.deps.logger.Info().Msg("order events subscriber stopped")
}
