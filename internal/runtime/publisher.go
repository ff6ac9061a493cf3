package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// PublisherCtx runs the outbox relay that publishes stored events.
type PublisherCtx struct {
	deps *Dependencies

	shutdownChannel chan os.Signal

	backgroundActorCtx      context.Context
	backgroundActorStopFunc context.CancelFunc
}

func NewPublisher(opt ...PublisherOption) *PublisherCtx {
	if len(opt) != 0 {
		pCtx := PublisherCtx{}

		for i := range opt {
			opt[i](&pCtx)
		}

		return &pCtx
	}

	return &PublisherCtx{
		shutdownChannel: make(chan os.Signal, 1),
	}
}

func (c *PublisherCtx) Run() {
	c.build()
	c.start()
	c.deps.monitorConfigChanges(c.backgroundActorCtx)
	c.shutdownHook()
	c.shutdown()
}

func (c *PublisherCtx) build() {
	c.backgroundActorCtx, c.backgroundActorStopFunc = context.WithCancel(context.Background())

	deps, err := initializeDependencies(c.backgroundActorCtx, WithPublisher(c.backgroundActorCtx), WithOpsServer())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	c.deps = deps
}

func (c *PublisherCtx) start() {
	go func() {
		c.deps.logger.Info().Msg("starting outbox publisher service")

		if err := c.deps.Workers.OutboxProcessor.Start(c.backgroundActorCtx); err != nil && !errors.Is(err, context.Canceled) {
			c.deps.logger.Error().Err(err).Msg("outbox processor failed")
			c.backgroundActorStopFunc()
		}
	}()

	c.deps.startOpsServer(c.backgroundActorStopFunc)
}

func (c *PublisherCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

func (c *PublisherCtx) shutdown() {
	// Waits for one of the following shutdown conditions to happen.
	select {
	case <-c.backgroundActorCtx.Done():
	case <-c.shutdownChannel:
		defer close(c.shutdownChannel)
	}

	c.deps.logger.Info().Msg("received shutdown signal")

	// Cancel context that underlying processes would start cleanup
	c.backgroundActorStopFunc()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.deps.cfg.OpsServer.ShutdownTimeout)
	defer cancel()

	c.deps.cleanup(shutdownCtx)

	c.deps.logger.Info().Msg("outbox publisher service stopped")
}
