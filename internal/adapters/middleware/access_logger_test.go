package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

const testTraceID = "4bf92f3577b34da6a3ce929d0e0e4736"

func withSpanContext(t *testing.T, ctx context.Context) context.Context {
	t.Helper()

	traceID, err := trace.TraceIDFromHex(testTraceID)
	require.NoError(t, err)

	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	return trace.ContextWithSpanContext(ctx, trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))
}

func TestAccessLogger_Middleware(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		method        string
		path          string
		query         string
		statusCode    int
		expectedLevel string
		skipAccessLog bool
		requestID     string
		withTrace     bool
		shouldLog     bool
	}{
		{
			name:          "successful request logs info level",
			method:        http.MethodGet,
			path:          "/readyz",
			query:         "verbose=1",
			statusCode:    http.StatusOK,
			expectedLevel: "info",
			shouldLog:     true,
		},
		{
			name:          "client error logs warn level",
			method:        http.MethodPost,
			path:          "/healthz",
			statusCode:    http.StatusMethodNotAllowed,
			expectedLevel: "warn",
			shouldLog:     true,
		},
		{
			name:          "server error logs error level",
			method:        http.MethodGet,
			path:          "/readyz",
			statusCode:    http.StatusServiceUnavailable,
			expectedLevel: "error",
			shouldLog:     true,
		},
		{
			name:          "skipped access log does not log",
			method:        http.MethodGet,
			path:          "/healthz",
			statusCode:    http.StatusOK,
			skipAccessLog: true,
			shouldLog:     false,
		},
		{
			name:          "includes request_id when present",
			method:        http.MethodGet,
			path:          "/metrics",
			statusCode:    http.StatusOK,
			requestID:     "req_12345",
			expectedLevel: "info",
			shouldLog:     true,
		},
		{
			name:          "includes trace_id of the active span",
			method:        http.MethodGet,
			path:          "/metrics",
			statusCode:    http.StatusOK,
			withTrace:     true,
			expectedLevel: "info",
			shouldLog:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			accessLogger := NewAccessLogger(zerolog.New(&buf))

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.statusCode)
				_, _ = w.Write([]byte("test response"))
			})

			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.URL.RawQuery = tc.query

			ctx := req.Context()

			if tc.skipAccessLog {
				ctx = context.WithValue(ctx, skipAccessLogKey, true)
			}

			if tc.requestID != "" {
				ctx = context.WithValue(ctx, chimiddleware.RequestIDKey, tc.requestID)
			}

			if tc.withTrace {
				ctx = withSpanContext(t, ctx)
			}

			rec := httptest.NewRecorder()
			accessLogger.Middleware(handler).ServeHTTP(rec, req.WithContext(ctx))

			if !tc.shouldLog {
				assert.Empty(t, buf.String(), "expected no log output")

				return
			}

			var logEntry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry), "log output should be valid JSON: %s", buf.String())

			assert.Equal(t, tc.expectedLevel, logEntry["level"])
			assert.Equal(t, "http_access", logEntry["component"])
			assert.Equal(t, tc.method, logEntry["method"])
			assert.Equal(t, tc.path, logEntry["path"])
			assert.Equal(t, tc.query, logEntry["query"])
			assert.Equal(t, float64(tc.statusCode), logEntry["status_code"])
			assert.Equal(t, float64(len("test response")), logEntry["response_size_bytes"])
			assert.Contains(t, logEntry, "duration")

			if tc.requestID != "" {
				assert.Equal(t, tc.requestID, logEntry["request_id"])
			} else {
				assert.NotContains(t, logEntry, "request_id")
			}

			if tc.withTrace {
				assert.Equal(t, testTraceID, logEntry["trace_id"])
			} else {
				assert.NotContains(t, logEntry, "trace_id")
			}
		})
	}
}
