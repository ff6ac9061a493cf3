package runtime

import (
	"context"
	"fmt"

	"github.com/hashicorp/vault/api"
	"go.opentelemetry.io/otel"

	"github.com/architeacher/svc-order-events/internal/adapters"
	"github.com/architeacher/svc-order-events/internal/adapters/outbox"
	workers "github.com/architeacher/svc-order-events/internal/adapters/queue"
	"github.com/architeacher/svc-order-events/internal/adapters/repos"
	"github.com/architeacher/svc-order-events/internal/config"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/service"
	"github.com/architeacher/svc-order-events/internal/shared/backoff"
	"github.com/architeacher/svc-order-events/internal/usecases"
)

type (
	DependencyOption func(*Dependencies) error
)

func defaultOptions(ctx context.Context) []DependencyOption {
	return []DependencyOption{
		WithSecretStorage(),
		WithSecretStorageRepo(),
		WithConfigLoader(ctx),
		WithStorage(ctx),
		WithCache(ctx),
		WithMetrics(ctx),
		WithTracing(ctx),
		WithDataRepos(),
	}
}

// WithSecretStorage initializes the Vault client using ENV config.
func WithSecretStorage() DependencyOption {
	return func(d *Dependencies) error {
		cfg := d.cfg.SecretStorage

		vaultConfig := api.DefaultConfig()
		vaultConfig.Address = cfg.Address
		vaultConfig.Timeout = cfg.Timeout

		if cfg.TLSSkipVerify {
			tlsConfig := &api.TLSConfig{
				Insecure: true,
			}
			if err := vaultConfig.ConfigureTLS(tlsConfig); err != nil {
				return fmt.Errorf("failed to configure TLS: %w", err)
			}
		}

		client, err := api.NewClient(vaultConfig)
		if err != nil {
			return fmt.Errorf("failed to create Vault client: %w", err)
		}

		// Skip namespace configuration for dev mode vault
		if cfg.Namespace != "" {
			client.SetNamespace(cfg.Namespace)
		}

		d.Infra.SecretStorageClient = client

		return nil
	}
}

func WithSecretStorageRepo() DependencyOption {
	return func(d *Dependencies) error {
		d.Repos.SecretStorageRepo = repos.NewVaultRepository(d.Infra.SecretStorageClient)

		return nil
	}
}

func WithConfigLoader(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		d.configLoader = config.NewLoader(d.cfg, d.Repos.SecretStorageRepo, d.secretVersion)

		if !d.cfg.SecretStorage.Enabled {
			d.logger.Info().Msg("secret storage is disabled, skipping vault configuration loading")

			return nil
		}

		version, err := d.configLoader.Load(ctx, d.Repos.SecretStorageRepo, d.cfg)
		if err != nil {
			return fmt.Errorf("unable to load service configuration: %w", err)
		}

		d.secretVersion = version

		return nil
	}
}

// WithStorage opens the Postgres pool and waits for the database to answer.
func WithStorage(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		storage, err := infrastructure.NewStorage(d.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}

		err = connectWithBackoff(ctx, "storage", storage.Ping,
			backoff.NewExponentialStrategy(d.cfg.Backoff), d.cfg.Backoff.MaxAttempts, d.logger)
		if err != nil {
			return err
		}

		d.Infra.StorageClient = storage

		return nil
	}
}

func WithCache(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		cacheClient := infrastructure.NewKeyDBClient(d.cfg.Cache, d.logger)

		cacheCtx, cancel := context.WithTimeout(ctx, d.cfg.Cache.DialTimeout)
		defer cancel()

		if err := cacheClient.Ping(cacheCtx); err != nil {
			d.logger.Error().Err(err).Msg("failed to connect to cache, continuing without cache")
			d.Infra.CacheClient = nil

			return nil
		}

		d.logger.Info().Msg("cache connection established")
		d.Infra.CacheClient = cacheClient

		return nil
	}
}

// WithDataRepos builds the repositories. Order storage calls go through a
// circuit breaker so a failing database trips fast and handlers fall back to
// message retries.
func WithDataRepos() DependencyOption {
	return func(d *Dependencies) error {
		db, err := d.Infra.StorageClient.GetDB()
		if err != nil {
			return fmt.Errorf("failed to get database connection: %w", err)
		}

		d.Repos.OrderRepo = repos.NewBreakingOrderRepository(
			repos.NewOrderRepository(db, orderDeletedRoute(d.cfg)),
			d.cfg.CircuitBreaker,
			d.logger,
		)
		d.Repos.OutboxRepo = repos.NewOutboxRepository(db)
		d.Repos.CacheRepo = repos.NewCacheRepository(
			d.Infra.CacheClient,
			d.cfg.Cache,
			d.logger,
		)

		return nil
	}
}

func WithMetrics(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		metrics, err := infrastructure.NewMetrics(ctx, *d.cfg, d.logger)
		if err != nil {
			return fmt.Errorf("failed to initialize metrics: %w", err)
		}

		d.Infra.Metrics = metrics

		return nil
	}
}

func WithTracing(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		if !d.cfg.Telemetry.Traces.Enabled {
			d.tracerShutdownFunc = func(_ context.Context) error {
				return nil
			}

			return nil
		}

		tracerShutdownFunc, err := infrastructure.InitGlobalTracer(ctx, d.cfg.Telemetry, d.cfg.AppConfig)
		if err != nil {
			d.logger.Error().Err(err).Msg("failed to initialize global tracer")

			return err
		}

		d.tracerShutdownFunc = tracerShutdownFunc

		return nil
	}
}

// WithQueue builds the RabbitMQ client, forwards its lifecycle events to
// metrics and connects with exponential backoff. The client does not
// reconnect afterwards.
func WithQueue(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		if d.Infra.QueueProvider == nil {
			d.Infra.QueueProvider = infrastructure.NewAMQPProvider(d.cfg.Queue, d.logger)
		}

		queueClient := infrastructure.NewQueueClient(d.cfg.Queue, d.Infra.QueueProvider, d.logger)
		d.stopQueueEvents = infrastructure.ExportQueueEvents(queueClient.Recorder(), d.Infra.Metrics)

		err := connectWithBackoff(ctx, "queue", queueClient.Connect,
			backoff.NewExponentialStrategy(d.cfg.Backoff), d.cfg.Backoff.MaxAttempts, d.logger)
		if err != nil {
			d.stopQueueEvents()

			return err
		}

		d.Infra.QueueClient = queueClient

		return nil
	}
}

// WithSubscriber declares the consumer topology and builds the order event
// workers.
func WithSubscriber(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		if err := WithQueue(ctx)(d); err != nil {
			return err
		}

		if err := d.Infra.QueueClient.DeclareTopology(ctx, subscriberTopology(d.cfg.Queue)); err != nil {
			return fmt.Errorf("failed to declare subscriber topology: %w", err)
		}

		orderService := service.NewOrderService(
			d.Repos.OrderRepo,
			d.Repos.CacheRepo,
			d.logger,
		)

		d.Apps.Subscriber = usecases.NewSubscriberApplication(
			orderService,
			d.logger,
			otel.GetTracerProvider(),
			adapters.NewMetricsAdapter(d.Infra.Metrics),
		)

		d.Workers.OrderDeletedWorker = workers.NewOrderDeletedWorker(d.Apps.Subscriber, d.logger)
		d.Workers.UserDeletedWorker = workers.NewUserDeletedWorker(d.Apps.Subscriber, d.logger)

		return nil
	}
}

// WithPublisher declares the relay's exchanges and builds the outbox
// processor.
func WithPublisher(ctx context.Context) DependencyOption {
	return func(d *Dependencies) error {
		if err := WithQueue(ctx)(d); err != nil {
			return err
		}

		if err := d.Infra.QueueClient.DeclareTopology(ctx, publisherTopology(d.cfg.Queue)); err != nil {
			return fmt.Errorf("failed to declare publisher topology: %w", err)
		}

		publisherService := service.NewPublisherService(
			d.Repos.OutboxRepo,
			workers.NewOutboxEventPublisher(d.Infra.QueueClient, d.cfg.Queue.MaxRetries, d.cfg.Queue.PublishTimeout),
			backoff.NewExponentialStrategy(d.cfg.Backoff),
			d.logger,
			d.Infra.Metrics,
		)

		d.Apps.Publisher = usecases.NewPublisherApplication(
			publisherService,
			d.logger,
			otel.GetTracerProvider(),
			adapters.NewMetricsAdapter(d.Infra.Metrics),
		)

		d.Workers.OutboxProcessor = outbox.NewProcessor(
			d.Apps.Publisher,
			d.cfg.Outbox,
			d.logger,
		)

		return nil
	}
}

// WithOpsServer builds the HTTP server for probes and metrics. It must come
// after the options that create the probed dependencies.
func WithOpsServer() DependencyOption {
	return func(d *Dependencies) error {
		if !d.cfg.OpsServer.Enabled {
			d.logger.Info().Msg("ops server is disabled")

			return nil
		}

		storagePinger, cachePinger, queuePinger := d.dependencyPingers()

		d.Apps.Ops = usecases.NewOpsApplication(
			service.NewHealthService(adapters.NewHealthChecker(storagePinger, cachePinger, queuePinger)),
			d.logger,
			otel.GetTracerProvider(),
			adapters.NewMetricsAdapter(d.Infra.Metrics),
		)

		opsHandler := adapters.NewOpsHandler(d.Apps.Ops, d.cfg.AppConfig.ServiceVersion, d.logger)

		d.Infra.OpsServer = initOpsServer(d.cfg, d.logger, d.Infra.Metrics, opsHandler)

		return nil
	}
}
