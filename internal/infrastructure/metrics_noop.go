package infrastructure

import (
	"context"
	"net/http"
	"time"
)

type (
	NoOp struct{}

	NoOpMetrics struct{}
)

func (d NoOp) Inc(_ string, _ int) {
}

func (n *NoOpMetrics) RecordHTTPRequest(_ context.Context, _, _ string, _ int, _ time.Duration, _, _ int64) {
}

func (n *NoOpMetrics) RecordQueueEvent(_ context.Context, _, _ string, _ bool) {
}

func (n *NoOpMetrics) RecordOutboxEvent(_ context.Context, _ string, _ bool) {
}

func (n *NoOpMetrics) RecordCommand(_ context.Context, _ string, _ bool) {
}

func (n *NoOpMetrics) RecordCommandDuration(_ context.Context, _ string, _ time.Duration) {
}

func (n *NoOpMetrics) Handler() http.Handler {
	return http.NotFoundHandler()
}

func (n *NoOpMetrics) Shutdown(_ context.Context) error {
	return nil
}
