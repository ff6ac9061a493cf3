package adapters_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-order-events/internal/adapters"
	"github.com/architeacher/svc-order-events/internal/mocks"
)

func TestMetricsAdapter_Inc(t *testing.T) {
	t.Parallel()

	t.Run("duration key records command duration", func(t *testing.T) {
		t.Parallel()

		metrics := &mocks.FakeMetrics{}
		adapters.NewMetricsAdapter(metrics).Inc("commands.deleteordercommand.duration", 15)

		require.Equal(t, 1, metrics.RecordCommandDurationCallCount())

		_, name, duration := metrics.RecordCommandDurationArgsForCall(0)
		assert.Equal(t, "commands.deleteordercommand", name)
		assert.Equal(t, 15*time.Millisecond, duration)
	})

	t.Run("outcome keys record command results", func(t *testing.T) {
		t.Parallel()

		metrics := &mocks.FakeMetrics{}
		adapter := adapters.NewMetricsAdapter(metrics)

		adapter.Inc("commands.deleteordercommand.success", 1)
		adapter.Inc("queries.fetchorderquery.failure", 1)

		require.Equal(t, 2, metrics.RecordCommandCallCount())

		_, name, success := metrics.RecordCommandArgsForCall(0)
		assert.Equal(t, "commands.deleteordercommand", name)
		assert.True(t, success)

		_, name, success = metrics.RecordCommandArgsForCall(1)
		assert.Equal(t, "queries.fetchorderquery", name)
		assert.False(t, success)
	})

	t.Run("unknown keys are ignored", func(t *testing.T) {
		t.Parallel()

		metrics := &mocks.FakeMetrics{}
		adapter := adapters.NewMetricsAdapter(metrics)

		adapter.Inc("nodots", 1)
		adapter.Inc("commands.deleteordercommand.other", 1)

		assert.Zero(t, metrics.RecordCommandCallCount())
		assert.Zero(t, metrics.RecordCommandDurationCallCount())
	})
}
