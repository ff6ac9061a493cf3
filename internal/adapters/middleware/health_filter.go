package middleware

import (
	"context"
	"net/http"
	"slices"
)

type contextKey string

const skipAccessLogKey contextKey = "skip_access_log"

// DefaultProbePaths are the endpoints polled by orchestrators and scrapers.
var DefaultProbePaths = []string{"/healthz", "/readyz", "/metrics"}

// ProbeFilter marks probe requests so the access logger leaves them out.
type ProbeFilter struct {
	paths     []string
	logProbes bool
}

func NewProbeFilter(logProbes bool, paths ...string) *ProbeFilter {
	if len(paths) == 0 {
		paths = DefaultProbePaths
	}

	return &ProbeFilter{
		paths:     paths,
		logProbes: logProbes,
	}
}

func (f *ProbeFilter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f.logProbes || !slices.Contains(f.paths, r.URL.Path) {
			next.ServeHTTP(w, r)

			return
		}

		ctx := context.WithValue(r.Context(), skipAccessLogKey, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func skipAccessLog(ctx context.Context) bool {
	skip, ok := ctx.Value(skipAccessLogKey).(bool)

	return ok && skip
}
