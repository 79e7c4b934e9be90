package middleware

import (
	"net/http"
	"time"

	"github.com/evyataryagoni/cityweather/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// LoggingMiddleware logs HTTP requests with structured data
func LoggingMiddleware(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			// Request ID is set by chi's RequestID middleware
			reqLog := log.WithRequestID(middleware.GetReqID(r.Context()))

			reqLog.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("client_ip", ClientIP(r)).
				Str("user_agent", r.UserAgent()).
				Msg("Request started")

			next.ServeHTTP(ww, r)

			logEvent := reqLog.Info()
			if ww.Status() >= 500 {
				logEvent = reqLog.Error()
			} else if ww.Status() >= 400 {
				logEvent = reqLog.Warn()
			}

			// URL params are filled in once routing has run
			if deviceID := chi.URLParam(r, "deviceID"); deviceID != "" {
				logEvent = logEvent.Str("device_id", deviceID)
			}

			logEvent.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("duration_ms", time.Since(start)).
				Msg("Request completed")
		})
	}
}
