package adapters

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/architeacher/svc-order-events/internal/domain"
	"github.com/architeacher/svc-order-events/internal/infrastructure"
	"github.com/architeacher/svc-order-events/internal/usecases"
	"github.com/architeacher/svc-order-events/internal/usecases/queries"
)

type (
	// OpsHandler serves the liveness and readiness probes.
	OpsHandler struct {
		app     *usecases.OpsApplication
		version string
		logger  infrastructure.Logger
	}

	LivenessResponse struct {
		Status    domain.LivenessResponseStatus `json:"status"`
		Uptime    float32                       `json:"uptime_seconds"`
		Timestamp time.Time                     `json:"timestamp"`
		Version   string                        `json:"version"`
	}

	ReadinessResponse struct {
		Status    domain.ReadinessResponseStatus     `json:"status"`
		Timestamp time.Time                          `json:"timestamp"`
		Version   string                             `json:"version"`
		Checks    map[string]domain.DependencyStatus `json:"checks"`
	}

	ErrorResponse struct {
		Error      string    `json:"error"`
		Message    string    `json:"message"`
		Details    string    `json:"details,omitempty"`
		StatusCode int       `json:"status_code"`
		Timestamp  time.Time `json:"timestamp"`
	}
)

func NewOpsHandler(app *usecases.OpsApplication, version string, logger infrastructure.Logger) *OpsHandler {
	return &OpsHandler{
		app:     app,
		version: version,
		logger:  logger,
	}
}

func (h *OpsHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	livenessResult, err := h.app.Queries.FetchLivenessReportQueryHandler.Execute(
		r.Context(),
		queries.FetchLivenessReportQuery{},
	)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "internal_server_error", "Failed to check liveness", err.Error())

		return
	}

	statusCode := http.StatusOK
	if livenessResult.OverallStatus != domain.LivenessResponseStatusAlive {
		statusCode = http.StatusServiceUnavailable
	}

	h.writeJSON(w, statusCode, LivenessResponse{
		Status:    livenessResult.OverallStatus,
		Uptime:    livenessResult.Uptime,
		Timestamp: time.Now().UTC(),
		Version:   h.version,
	})
}

// ReadinessCheck answers 503 only when a required dependency is down; a
// degraded service keeps receiving traffic.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	readinessResult, err := h.app.Queries.FetchReadinessReportQueryHandler.Execute(
		r.Context(),
		queries.FetchReadinessReportQuery{},
	)
	if err != nil {
		h.writeErrorResponse(w, http.StatusInternalServerError, "internal_server_error", "Failed to check readiness", err.Error())

		return
	}

	statusCode := http.StatusOK
	if readinessResult.OverallStatus == domain.ReadinessResponseStatusNotReady {
		statusCode = http.StatusServiceUnavailable
	}

	h.writeJSON(w, statusCode, ReadinessResponse{
		Status:    readinessResult.OverallStatus,
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Checks: map[string]domain.DependencyStatus{
			"storage": readinessResult.Storage,
			"cache":   readinessResult.Cache,
			"queue":   readinessResult.Queue,
		},
	})
}

func (h *OpsHandler) writeErrorResponse(w http.ResponseWriter, statusCode int, errorType, message, details string) {
	h.writeJSON(w, statusCode, ErrorResponse{
		Error:      errorType,
		Message:    message,
		Details:    details,
		StatusCode: statusCode,
		Timestamp:  time.Now().UTC(),
	})
}

func (h *OpsHandler) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}
