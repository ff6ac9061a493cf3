package decorator

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/architeacher/svc-order-events/internal/infrastructure"
)

type (
	CommandHandler[C any, R any] interface {
		Handle(ctx context.Context, cmd C) (R, error)
	}

	QueryHandler[Q any, R any] interface {
		Execute(ctx context.Context, q Q) (R, error)
	}

	MetricsClient interface {
		Inc(key string, value int)
	}
)

// ApplyCommandDecorators wraps handler with tracing, logging and metrics, in
// that order from the outside in.
func ApplyCommandDecorators[C any, R any](
	handler CommandHandler[C, R],
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient MetricsClient,
) CommandHandler[C, R] {
	return commandTracingDecorator[C, R]{
		base: commandLoggingDecorator[C, R]{
			base: commandMetricsDecorator[C, R]{
				base:   handler,
				client: metricsClient,
			},
			logger: logger,
		},
		tracer: tracerProvider.Tracer(tracerName),
	}
}

func ApplyQueryDecorators[Q any, R any](
	handler QueryHandler[Q, R],
	logger infrastructure.Logger,
	tracerProvider trace.TracerProvider,
	metricsClient MetricsClient,
) QueryHandler[Q, R] {
	return queryTracingDecorator[Q, R]{
		base: queryLoggingDecorator[Q, R]{
			base: queryMetricsDecorator[Q, R]{
				base:   handler,
				client: metricsClient,
			},
			logger: logger,
		},
		tracer: tracerProvider.Tracer(tracerName),
	}
}

// generateActionName turns commands.DeleteOrderCommand into "DeleteOrderCommand".
func generateActionName(handler any) string {
	name := fmt.Sprintf("%T", handler)

	return name[strings.LastIndex(name, ".")+1:]
}
