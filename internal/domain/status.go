package domain

type (
	DependencyCheckStatus string

	LivenessResponseStatus string

	ReadinessResponseStatus string
)

const (
	DependencyCheckStatusHealthy   DependencyCheckStatus = "healthy"
	DependencyCheckStatusUnhealthy DependencyCheckStatus = "unhealthy"
)

const (
	LivenessResponseStatusAlive LivenessResponseStatus = "alive"
	LivenessResponseStatusDead  LivenessResponseStatus = "dead"
)

const (
	ReadinessResponseStatusReady    ReadinessResponseStatus = "ready"
	ReadinessResponseStatusDegraded ReadinessResponseStatus = "degraded"
	ReadinessResponseStatusNotReady ReadinessResponseStatus = "not_ready"
)
