package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/ports"
	"github.com/architeacher/svc-order-events/pkg/queue"
)

const dependencyCheckTimeout = 2 * time.Second

var (
	errDependencyNotConfigured = errors.New("dependency is not configured")
	errQueueDisconnected       = errors.New("queue client is not connected")
)

type (
	// HealthChecker probes the subscriber's dependencies. Storage and queue
	// are required for readiness; a missing cache only degrades the service.
	HealthChecker struct {
		startTime time.Time
		storage   ports.Pinger
		cache     ports.Pinger
		queue     ports.Pinger
	}

	// QueuePinger reports the connection state of a queue client.
	QueuePinger struct {
		client *queue.Client
	}
)

func NewHealthChecker(storage, cache, queue ports.Pinger) ports.HealthChecker {
	return &HealthChecker{
		startTime: time.Now(),
		storage:   storage,
		cache:     cache,
		queue:     queue,
	}
}

func NewQueuePinger(client *queue.Client) *QueuePinger {
	return &QueuePinger{client: client}
}

func (p *QueuePinger) Ping(_ context.Context) error {
	if p.client == nil || !p.client.IsConnected() {
		return errQueueDisconnected
	}

	return nil
}

func (h *HealthChecker) CheckReadiness(ctx context.Context) *domain.ReadinessResult {
	storageStatus := h.checkDependency(ctx, h.storage)
	cacheStatus := h.checkDependency(ctx, h.cache)
	queueStatus := h.checkDependency(ctx, h.queue)

	overallStatus := domain.ReadinessResponseStatusReady

	switch {
	case storageStatus.Status == domain.DependencyCheckStatusUnhealthy,
		queueStatus.Status == domain.DependencyCheckStatusUnhealthy:
		overallStatus = domain.ReadinessResponseStatusNotReady
	case cacheStatus.Status == domain.DependencyCheckStatusUnhealthy:
		overallStatus = domain.ReadinessResponseStatusDegraded
	}

	return &domain.ReadinessResult{
		OverallStatus: overallStatus,
		Storage:       storageStatus,
		Cache:         cacheStatus,
		Queue:         queueStatus,
	}
}

// CheckLiveness only reports that the process is serving; dependencies are
// covered by readiness.
func (h *HealthChecker) CheckLiveness(_ context.Context) *domain.LivenessResult {
	return &domain.LivenessResult{
		OverallStatus: domain.LivenessResponseStatusAlive,
		Uptime:        float32(time.Since(h.startTime).Seconds()),
	}
}

func (h *HealthChecker) checkDependency(ctx context.Context, pinger ports.Pinger) domain.DependencyStatus {
	start := time.Now()

	err := errDependencyNotConfigured

	if pinger != nil {
		checkCtx, cancel := context.WithTimeout(ctx, dependencyCheckTimeout)
		err = pinger.Ping(checkCtx)
		cancel()
	}

	status := domain.DependencyStatus{
		Status:       domain.DependencyCheckStatusHealthy,
		ResponseTime: float32(time.Since(start).Milliseconds()),
		LastChecked:  time.Now(),
	}

	if err != nil {
		status.Status = domain.DependencyCheckStatusUnhealthy
		status.Error = err.Error()
	}

	return status
}
