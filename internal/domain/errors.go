package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidMessage     = errors.New("invalid message")
	ErrCircuitBreakerOpen = errors.New("circuit breaker open")
	ErrCacheUnavailable   = errors.New("cache service unavailable")
	ErrCacheMiss          = errors.New("cache miss")

	ErrOutboxEventNotClaimable = errors.New("outbox event not found or already claimed")
)

type DomainError struct {
	Code       string
	Message    string
	StatusCode int
	Cause      error
	Details    map[string]any
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Cause.Error())
	}

	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func NewDomainError(code, message string, statusCode int, cause error) *DomainError {
	return &DomainError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Cause:      cause,
		Details:    make(map[string]any),
	}
}

func (e *DomainError) WithDetails(key string, value any) *DomainError {
	e.Details[key] = value

	return e
}

func NewOrderNotFoundError(orderID int64) *DomainError {
	return NewDomainError(
		"ORDER_NOT_FOUND",
		fmt.Sprintf("Order %d not found", orderID),
		http.StatusNotFound,
		ErrOrderNotFound,
	).WithDetails("order_id", orderID)
}

func NewInvalidMessageError(event string, cause error) *DomainError {
	return NewDomainError(
		"INVALID_MESSAGE",
		fmt.Sprintf("Unknown message schema for %s", event),
		http.StatusBadRequest,
		cause,
	).WithDetails("event", event)
}

func NewInternalServerError(message string, cause error) *DomainError {
	return NewDomainError(
		"INTERNAL_SERVER_ERROR",
		message,
		http.StatusInternalServerError,
		cause,
	)
}

func NewCircuitBreakerOpenError(resource string, cause error) *DomainError {
	return NewDomainError(
		"CIRCUIT_BREAKER_OPEN",
		"service temporarily unavailable due to repeated failures",
		http.StatusServiceUnavailable,
		fmt.Errorf("%w: %w", ErrCircuitBreakerOpen, cause),
	).WithDetails("resource", resource)
}

func NewOutboxEventNotClaimableError(eventID string) *DomainError {
	return NewDomainError(
		"OUTBOX_EVENT_NOT_CLAIMABLE",
		fmt.Sprintf("Outbox event %s is not claimable", eventID),
		http.StatusConflict,
		ErrOutboxEventNotClaimable,
	).WithDetails("event_id", eventID)
}
