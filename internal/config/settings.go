package config

import (
	"time"
)

// Compile time variables are set by -ldflags.
var (
	ServiceVersion string
	CommitSHA      string
)

type (
	ServiceConfig struct {
		AppConfig      AppConfig            `json:"app_config"`
		Logging        LoggingConfig        `json:"logging"`
		Telemetry      Telemetry            `json:"telemetry"`
		SecretStorage  SecretStorageConfig  `json:"secret_storage"`
		OpsServer      OpsServerConfig      `json:"ops_server"`
		Cache          CacheConfig          `json:"cache"`
		Storage        StorageConfig        `json:"storage"`
		Queue          QueueConfig          `json:"queue"`
		Outbox         OutboxConfig         `json:"outbox"`
		Backoff        BackoffConfig        `json:"backoff"`
		CircuitBreaker CircuitBreakerConfig `json:"circuit_breaker"`
	}

	AppConfig struct {
		ServiceName    string `envconfig:"APP_SERVICE_NAME" default:"svc-order-events" json:"service_name"`
		ServiceVersion string `envconfig:"APP_SERVICE_VERSION" default:"0.0.0" json:"service_version"`
		CommitSHA      string `envconfig:"APP_COMMIT_SHA" default:"unknown" json:"commit_sha"`
		Env            string `envconfig:"APP_ENVIRONMENT" default:"unknown" json:"env"`
	}

	LoggingConfig struct {
		Level     string          `envconfig:"LOGGING_LEVEL" default:"info" json:"level"`
		Format    string          `envconfig:"LOGGING_FORMAT" default:"json" json:"format"`
		AccessLog AccessLogConfig `json:"access_log"`
	}

	AccessLogConfig struct {
		Enabled         bool `envconfig:"ACCESS_LOG_ENABLED" default:"true" json:"enabled"`
		LogHealthChecks bool `envconfig:"ACCESS_LOG_HEALTH_CHECKS" default:"false" json:"log_health_checks"`
	}

	Telemetry struct {
		ExporterType string `envconfig:"OTEL_EXPORTER" default:"grpc" json:"exporter_type"`

		OtelGRPCHost       string `envconfig:"OTEL_HOST" json:"otel_grpc_host"`
		OtelGRPCPort       string `envconfig:"OTEL_PORT" default:"4317" json:"otel_grpc_port"`
		OtelProductCluster string `envconfig:"OTEL_PRODUCT_CLUSTER" json:"otel_product_cluster"`

		Metrics Metrics `json:"metrics"`
		Traces  Traces  `json:"traces"`
	}

	Metrics struct {
		Enabled bool `envconfig:"METRICS_ENABLED" default:"false" json:"enabled"`
	}

	Traces struct {
		Enabled      bool    `envconfig:"TRACES_ENABLED" default:"false" json:"enabled"`
		SamplerRatio float64 `envconfig:"TRACES_SAMPLER_RATIO" default:"1" json:"sampler_ratio"`
	}

	SecretStorageConfig struct {
		Enabled       bool          `envconfig:"VAULT_ENABLED" default:"false" json:"enabled"`
		Address       string        `envconfig:"VAULT_ADDRESS" default:"http://vault:8200" json:"address"`
		Token         string        `envconfig:"VAULT_TOKEN" default:"" json:"-"`
		RoleID        string        `envconfig:"VAULT_ROLE_ID" default:"" json:"-"`
		SecretID      string        `envconfig:"VAULT_SECRET_ID" default:"" json:"-"`
		AuthMethod    string        `envconfig:"VAULT_AUTH_METHOD" default:"token" json:"auth_method"`
		MountPath     string        `envconfig:"VAULT_MOUNT_PATH" default:"svc-order-events" json:"mount_path"`
		Namespace     string        `envconfig:"VAULT_NAMESPACE" default:"" json:"namespace,omitempty"`
		Timeout       time.Duration `envconfig:"VAULT_TIMEOUT" default:"30s" json:"timeout"`
		MaxRetries    int           `envconfig:"VAULT_MAX_RETRIES" default:"3" json:"max_retries"`
		TLSSkipVerify bool          `envconfig:"VAULT_TLS_SKIP_VERIFY" default:"false" json:"tls_skip_verify"`
		PollInterval  time.Duration `envconfig:"VAULT_POLL_INTERVAL" default:"24h" json:"poll_interval"`
	}

	// OpsServerConfig configures the HTTP listener serving health and metrics.
	OpsServerConfig struct {
		Enabled         bool          `envconfig:"OPS_SERVER_ENABLED" default:"true" json:"enabled"`
		Port            int           `envconfig:"OPS_SERVER_PORT" default:"8089" json:"port"`
		Host            string        `envconfig:"OPS_SERVER_HOST" default:"0.0.0.0" json:"host"`
		ReadTimeout     time.Duration `envconfig:"OPS_SERVER_READ_TIMEOUT" default:"5s" json:"read_timeout"`
		WriteTimeout    time.Duration `envconfig:"OPS_SERVER_WRITE_TIMEOUT" default:"10s" json:"write_timeout"`
		IdleTimeout     time.Duration `envconfig:"OPS_SERVER_IDLE_TIMEOUT" default:"60s" json:"idle_timeout"`
		ShutdownTimeout time.Duration `envconfig:"OPS_SERVER_SHUTDOWN_TIMEOUT" default:"15s" json:"shutdown_timeout"`
	}

	StorageConfig struct {
		Host            string        `envconfig:"POSTGRES_HOST" default:"postgres" json:"host"`
		Port            int           `envconfig:"POSTGRES_PORT" default:"5432" json:"port"`
		Database        string        `envconfig:"POSTGRES_DATABASE" default:"orders" json:"database"`
		Username        string        `envconfig:"POSTGRES_USERNAME" default:"postgres" json:"username"`
		Password        string        `envconfig:"POSTGRES_PASSWORD" default:"" json:"-"`
		SSLMode         string        `envconfig:"POSTGRES_SSL_MODE" default:"disable" json:"ssl_mode"`
		MaxOpenConns    int           `envconfig:"POSTGRES_MAX_OPEN_CONNS" default:"25" json:"max_open_conns"`
		MaxIdleConns    int           `envconfig:"POSTGRES_MAX_IDLE_CONNS" default:"5" json:"max_idle_conns"`
		ConnMaxLifetime time.Duration `envconfig:"POSTGRES_CONN_MAX_LIFETIME" default:"5m" json:"conn_max_lifetime"`
		ConnMaxIdleTime time.Duration `envconfig:"POSTGRES_CONN_MAX_IDLE_TIME" default:"5m" json:"conn_max_idle_time"`
		ConnectTimeout  time.Duration `envconfig:"POSTGRES_CONNECT_TIMEOUT" default:"10s" json:"connect_timeout"`
		QueryTimeout    time.Duration `envconfig:"POSTGRES_QUERY_TIMEOUT" default:"30s" json:"query_timeout"`
	}

	QueueConfig struct {
		Scheme         string        `envconfig:"RABBITMQ_SCHEME" default:"amqp" json:"scheme"`
		Host           string        `envconfig:"RABBITMQ_HOST" default:"rabbitmq" json:"host"`
		Port           int           `envconfig:"RABBITMQ_PORT" default:"5672" json:"port"`
		Username       string        `envconfig:"RABBITMQ_USERNAME" default:"guest" json:"username"`
		Password       string        `envconfig:"RABBITMQ_PASSWORD" default:"guest" json:"-"`
		VirtualHost    string        `envconfig:"RABBITMQ_VIRTUAL_HOST" default:"/" json:"virtual_host"`
		ConnectTimeout time.Duration `envconfig:"RABBITMQ_CONNECT_TIMEOUT" default:"10s" json:"connect_timeout"`
		Heartbeat      time.Duration `envconfig:"RABBITMQ_HEARTBEAT" default:"10s" json:"heartbeat"`
		PrefetchCount  int           `envconfig:"RABBITMQ_PREFETCH_COUNT" default:"10" json:"prefetch_count"`
		Durable        bool          `envconfig:"RABBITMQ_DURABLE" default:"true" json:"durable"`

		OrderExchange      string `envconfig:"RABBITMQ_ORDER_EXCHANGE" default:"order.events" json:"order_exchange"`
		OrderDeletedKey    string `envconfig:"RABBITMQ_ORDER_DELETED_KEY" default:"order.deleted" json:"order_deleted_key"`
		OrderDeleteQueue   string `envconfig:"RABBITMQ_ORDER_DELETE_QUEUE" default:"orders.delete" json:"order_delete_queue"`
		UserExchange       string `envconfig:"RABBITMQ_USER_EXCHANGE" default:"user.events" json:"user_exchange"`
		UserDeletedKey     string `envconfig:"RABBITMQ_USER_DELETED_KEY" default:"user.deleted" json:"user_deleted_key"`
		UserDeletedQueue   string `envconfig:"RABBITMQ_USER_DELETED_QUEUE" default:"orders.user-deleted" json:"user_deleted_queue"`
		DeadLetterExchange string `envconfig:"RABBITMQ_DEAD_LETTER_EXCHANGE" default:"order.events.dlx" json:"dead_letter_exchange"`
		DeadLetterQueue    string `envconfig:"RABBITMQ_DEAD_LETTER_QUEUE" default:"orders.dead-letter" json:"dead_letter_queue"`

		MessageTTL       time.Duration `envconfig:"RABBITMQ_MESSAGE_TTL" default:"0s" json:"message_ttl"`
		RequeueOnFailure bool          `envconfig:"RABBITMQ_REQUEUE_ON_FAILURE" default:"true" json:"requeue_on_failure"`
		MaxRetries       int           `envconfig:"RABBITMQ_MAX_RETRIES" default:"3" json:"max_retries"`
		PublishTimeout   time.Duration `envconfig:"RABBITMQ_PUBLISH_TIMEOUT" default:"3s" json:"publish_timeout"`
	}

	// OutboxConfig drives the relay that publishes stored outbox events.
	OutboxConfig struct {
		Enabled      bool          `envconfig:"OUTBOX_ENABLED" default:"true" json:"enabled"`
		PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"5s" json:"poll_interval"`
		BatchSize    int           `envconfig:"OUTBOX_BATCH_SIZE" default:"10" json:"batch_size"`
		MaxRetries   int           `envconfig:"OUTBOX_MAX_RETRIES" default:"5" json:"max_retries"`
	}

	CacheConfig struct {
		Addr          string        `envconfig:"KEYDB_ADDR" default:"keydb:6379" json:"addr"`
		Password      string        `envconfig:"KEYDB_PASSWORD" default:"" json:"-"`
		DB            int           `envconfig:"KEYDB_DB" default:"0" json:"db"`
		PoolSize      int           `envconfig:"KEYDB_POOL_SIZE" default:"10" json:"pool_size"`
		MinIdleConns  int           `envconfig:"KEYDB_MIN_IDLE_CONNS" default:"3" json:"min_idle_conns"`
		DialTimeout   time.Duration `envconfig:"KEYDB_DIAL_TIMEOUT" default:"5s" json:"dial_timeout"`
		ReadTimeout   time.Duration `envconfig:"KEYDB_READ_TIMEOUT" default:"3s" json:"read_timeout"`
		WriteTimeout  time.Duration `envconfig:"KEYDB_WRITE_TIMEOUT" default:"3s" json:"write_timeout"`
		PoolTimeout   time.Duration `envconfig:"KEYDB_POOL_TIMEOUT" default:"5s" json:"pool_timeout"`
		MaxRetries    int           `envconfig:"KEYDB_MAX_RETRIES" default:"3" json:"max_retries"`
		DefaultExpiry time.Duration `envconfig:"KEYDB_DEFAULT_EXPIRY" default:"1h" json:"default_expiry"`
	}

	BackoffConfig struct {
		// BaseDelay is the amount of time to backoff after the first failure.
		BaseDelay time.Duration `envconfig:"BACKOFF_BASE_DELAY" default:"1s" json:"base_delay"`
		// Multiplier is the factor with which to multiply backoffs after a
		// failed retry. Should ideally be greater than 1.
		Multiplier float64 `envconfig:"BACKOFF_MULTIPLIER" default:"1.6" json:"multiplier"`
		// Jitter is the factor with which backoffs are randomized.
		Jitter float64 `envconfig:"BACKOFF_JITTER" default:"0.2" json:"jitter"`
		// MaxDelay is the upper bound of backoff delay.
		MaxDelay time.Duration `envconfig:"BACKOFF_MAX_DELAY" default:"10s" json:"max_delay"`
		// MaxAttempts bounds the startup connection attempts.
		MaxAttempts int `envconfig:"BACKOFF_MAX_ATTEMPTS" default:"10" json:"max_attempts"`
	}

	CircuitBreakerConfig struct {
		MaxRequests  uint32        `envconfig:"CIRCUIT_BREAKER_MAX_REQUESTS" default:"3" json:"max_requests"`
		Interval     time.Duration `envconfig:"CIRCUIT_BREAKER_INTERVAL" default:"10s" json:"interval"`
		Timeout      time.Duration `envconfig:"CIRCUIT_BREAKER_TIMEOUT" default:"60s" json:"timeout"`
		FailureRatio float64       `envconfig:"CIRCUIT_BREAKER_FAILURE_RATIO" default:"0.6" json:"failure_ratio"`
		MinRequests  uint32        `envconfig:"CIRCUIT_BREAKER_MIN_REQUESTS" default:"5" json:"min_requests"`
	}
)
