package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-cookbook/internal/identity"
	"github.com/goliatone/go-cookbook/internal/logging"
)

// RequestIDHeader carries the correlation id of a request.
const RequestIDHeader = "X-Request-ID"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// instrument tags the request with an id, logs its outcome and records
// request metrics under route.
func (api *SiteAPI) instrument(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done := api.metrics.TrackInFlight()
		defer done()

		requestID := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if requestID == "" {
			requestID = identity.RequestID()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := logging.ContextWithFields(r.Context(), map[string]any{"request_id": requestID})
		rec := &statusRecorder{ResponseWriter: w}
		started := time.Now()

		next.ServeHTTP(rec, r.WithContext(ctx))

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(started)
		api.metrics.ObserveRequest(route, r.Method, status, elapsed)
		api.logger.WithContext(ctx).Info("http.request.completed",
			"route", route,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
		)
	})
}
