package runtime

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hashicorp/vault/api"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/architeacher/svc-order-events/internal/adapters"
	"github.com/architeacher/svc-order-events/internal/adapters/middleware"
	"github.com/architeacher/svc-order-events/internal/config"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/ports"
	"github.com/architeacher/svc-order-events/internal/usecases"
	"github.com/architeacher/svc-order-events/pkg/queue"
)

type (
	Applications struct {
		Subscriber *usecases.SubscriberApplication
		Publisher  *usecases.PublisherApplication
		Ops        *usecases.OpsApplication
	}

	ApplicationWorkers struct {
		OrderDeletedWorker ports.MessageHandler
		UserDeletedWorker  ports.MessageHandler
		OutboxProcessor    ports.BackgroundProcessor
	}

	TracerShutdownFunc func(ctx context.Context) error

	InfrastructureDeps struct {
		OpsServer           *http.Server
		SecretStorageClient *api.Client
		StorageClient       *infrastructure.Storage
		QueueProvider       queue.Provider
		QueueClient         *queue.Client
		CacheClient         *infrastructure.KeydbClient
		Metrics             infrastructure.Metrics
	}

	Repos struct {
		SecretStorageRepo ports.SecretsRepository
		OrderRepo         ports.OrderRepository
		OutboxRepo        ports.OutboxRepository
		CacheRepo         ports.CacheRepository
	}

	Dependencies struct {
		Apps    Applications
		Workers ApplicationWorkers

		cfg          *config.ServiceConfig
		configLoader *config.Loader

		logger infrastructure.Logger

		Infra InfrastructureDeps
		Repos Repos

		tracerShutdownFunc TracerShutdownFunc
		stopQueueEvents    func()
		secretVersion      uint
	}
)

func initializeDependencies(ctx context.Context, opts ...DependencyOption) (*Dependencies, error) {
	cfg, err := config.Init()
	if err != nil {
		return nil, fmt.Errorf("unable to load service configuration: %w", err)
	}

	appLogger := infrastructure.New(config.LoggingConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	appLogger.Info().Msg("initializing dependencies...")

	deps := &Dependencies{
		cfg:    cfg,
		logger: appLogger,
	}

	// Start with default options and append any additional options.
	options := append(defaultOptions(ctx), opts...)

	for _, opt := range options {
		if err := opt(deps); err != nil {
			return nil, fmt.Errorf("failed to apply dependency option: %w", err)
		}
	}

	deps.logger.Info().Msg("dependencies initialized successfully")

	return deps, nil
}

// dependencyPingers returns the probes of the health checker. A cache that
// could not be reached at startup is reported as missing.
func (d *Dependencies) dependencyPingers() (ports.Pinger, ports.Pinger, ports.Pinger) {
	var cachePinger, queuePinger ports.Pinger

	if d.Infra.CacheClient != nil {
		cachePinger = d.Infra.CacheClient
	}

	if d.Infra.QueueClient != nil {
		queuePinger = adapters.NewQueuePinger(d.Infra.QueueClient)
	}

	return d.Infra.StorageClient, cachePinger, queuePinger
}

func initOpsServer(
	cfg *config.ServiceConfig,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
	opsHandler *adapters.OpsHandler,
) *http.Server {
	logger.Info().Msg("creating ops server...")

	router := chi.NewRouter()

	router.Use(initMiddlewares(cfg, logger, metrics)...)

	router.Get("/healthz", opsHandler.LivenessCheck)
	router.Get("/readyz", opsHandler.ReadinessCheck)
	router.Method(http.MethodGet, "/metrics", metrics.Handler())

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.OpsServer.Host, strconv.Itoa(cfg.OpsServer.Port)),
		Handler:      router,
		ReadTimeout:  cfg.OpsServer.ReadTimeout,
		WriteTimeout: cfg.OpsServer.WriteTimeout,
		IdleTimeout:  cfg.OpsServer.IdleTimeout,
	}

	logger.Info().Str("addr", server.Addr).Msg("ops server created")

	return server
}

func initMiddlewares(
	cfg *config.ServiceConfig,
	logger infrastructure.Logger,
	metrics infrastructure.Metrics,
) []func(http.Handler) http.Handler {
	middlewares := []func(http.Handler) http.Handler{
		chimiddleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		otelhttp.NewMiddleware(cfg.AppConfig.ServiceName),
	}

	if cfg.Telemetry.Metrics.Enabled {
		metricsMiddleware := middleware.NewMetricsMiddleware(metrics)
		middlewares = append(middlewares, metricsMiddleware.Middleware)
		logger.Info().Msg("HTTP metrics collection enabled")
	}

	if cfg.Logging.AccessLog.Enabled {
		probeFilter := middleware.NewProbeFilter(cfg.Logging.AccessLog.LogHealthChecks)
		accessLogger := middleware.NewAccessLogger(logger.Logger)

		middlewares = append(middlewares, probeFilter.Middleware, accessLogger.Middleware)
		logger.Info().
			Bool("log_health_checks", cfg.Logging.AccessLog.LogHealthChecks).
			Msg("structured access logging enabled")
	}

	return middlewares
}
