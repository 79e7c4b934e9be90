package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/evyataryagoni/cityweather/internal/limiter"
	"github.com/evyataryagoni/cityweather/internal/metrics"
)

// RateLimitMiddleware enforces rate limiting per client IP (returns 429 when exceeded)
// m may be nil
func RateLimitMiddleware(lim limiter.Limiter, m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !lim.Allow(r.Context(), ClientIP(r)) {
				if m != nil {
					m.HTTPRateLimited.Inc()
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{
					"error": "Rate limit exceeded. Please try again later.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
