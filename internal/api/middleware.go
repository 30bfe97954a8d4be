package api

import (
	"net/http"
	"time"

	"github.com/mpattadkal/baxi/logger"
)

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// TraceMiddleware adds a trace ID to the request context and logs the
// request lifecycle through the async pipeline. It should be applied
// early in the chain so every handler sees the trace ID.
func TraceMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := SetTraceID(r.Context())
			traceID := GetTraceID(ctx)

			reqLog := log.With(logger.String("trace_id", traceID))
			reqLog.Debug("request started",
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("remote_addr", r.RemoteAddr))

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(rec, r.WithContext(ctx))

			reqLog.Info("request completed",
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.Int("status", rec.status),
				logger.Duration("duration", time.Since(start)))
		})
	}
}
