package adapters_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-order-events/internal/adapters"
	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/mocks"
	"github.com/architeacher/svc-order-events/pkg/queue"
)

func healthyPinger() *mocks.FakePinger {
	return &mocks.FakePinger{}
}

func failingPinger(msg string) *mocks.FakePinger {
	pinger := &mocks.FakePinger{}
	pinger.PingReturns(errors.New(msg))

	return pinger
}

func TestHealthChecker_CheckReadiness(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		storage        *mocks.FakePinger
		cache          *mocks.FakePinger
		queue          *mocks.FakePinger
		expectedStatus domain.ReadinessResponseStatus
	}{
		{
			name:           "all dependencies healthy",
			storage:        healthyPinger(),
			cache:          healthyPinger(),
			queue:          healthyPinger(),
			expectedStatus: domain.ReadinessResponseStatusReady,
		},
		{
			name:           "cache down degrades the service",
			storage:        healthyPinger(),
			cache:          failingPinger("connection refused"),
			queue:          healthyPinger(),
			expectedStatus: domain.ReadinessResponseStatusDegraded,
		},
		{
			name:           "storage down is not ready",
			storage:        failingPinger("connection refused"),
			cache:          healthyPinger(),
			queue:          healthyPinger(),
			expectedStatus: domain.ReadinessResponseStatusNotReady,
		},
		{
			name:           "queue down is not ready",
			storage:        healthyPinger(),
			cache:          healthyPinger(),
			queue:          failingPinger("disconnected"),
			expectedStatus: domain.ReadinessResponseStatusNotReady,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			checker := adapters.NewHealthChecker(tc.storage, tc.cache, tc.queue)

			result := checker.CheckReadiness(context.Background())
			require.NotNil(t, result)

			assert.Equal(t, tc.expectedStatus, result.OverallStatus)
			assert.Equal(t, 1, tc.storage.PingCallCount())
			assert.Equal(t, 1, tc.cache.PingCallCount())
			assert.Equal(t, 1, tc.queue.PingCallCount())
		})
	}
}

func TestHealthChecker_MissingCache(t *testing.T) {
	t.Parallel()

	checker := adapters.NewHealthChecker(healthyPinger(), nil, healthyPinger())

	result := checker.CheckReadiness(context.Background())

	assert.Equal(t, domain.ReadinessResponseStatusDegraded, result.OverallStatus)
	assert.Equal(t, domain.DependencyCheckStatusUnhealthy, result.Cache.Status)
	assert.NotEmpty(t, result.Cache.Error)
}

func TestHealthChecker_CheckLiveness(t *testing.T) {
	t.Parallel()

	storage := failingPinger("connection refused")
	checker := adapters.NewHealthChecker(storage, nil, nil)

	result := checker.CheckLiveness(context.Background())

	assert.Equal(t, domain.LivenessResponseStatusAlive, result.OverallStatus)
	assert.GreaterOrEqual(t, result.Uptime, float32(0))
	assert.Zero(t, storage.PingCallCount())
}

func TestQueuePinger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := queue.NewClient(queue.NewMemoryProvider(), queue.Config{})
	pinger := adapters.NewQueuePinger(client)

	require.Error(t, pinger.Ping(ctx))

	require.NoError(t, client.Connect(ctx))
	require.NoError(t, pinger.Ping(ctx))

	require.NoError(t, client.Close())
	require.Error(t, pinger.Ping(ctx))
}
