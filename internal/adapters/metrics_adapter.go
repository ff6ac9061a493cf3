package adapters

import (
	"context"
	"strings"
	"time"

	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/shared/decorator"
)

type MetricsAdapter struct {
	metrics infrastructure.Metrics
}

func NewMetricsAdapter(metrics infrastructure.Metrics) decorator.MetricsClient {
	return &MetricsAdapter{
		metrics: metrics,
	}
}

// Inc translates decorator keys of the form <kind>.<action>.<outcome>. A
// duration outcome carries milliseconds in value.
func (m *MetricsAdapter) Inc(key string, value int) {
	ctx := context.Background()

	idx := strings.LastIndex(key, ".")
	if idx < 0 {
		return
	}

	name, outcome := key[:idx], key[idx+1:]

	switch outcome {
	case "duration":
		m.metrics.RecordCommandDuration(ctx, name, time.Duration(value)*time.Millisecond)
	case "success":
		m.metrics.RecordCommand(ctx, name, true)
	case "failure":
		m.metrics.RecordCommand(ctx, name, false)
	}
}
