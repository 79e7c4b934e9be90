package router

import (
	"net/http"

	_ "github.com/evyataryagoni/cityweather/docs" // Swagger docs
	"github.com/evyataryagoni/cityweather/internal/handler"
	"github.com/evyataryagoni/cityweather/internal/limiter"
	"github.com/evyataryagoni/cityweather/internal/logger"
	"github.com/evyataryagoni/cityweather/internal/metrics"
	custommiddleware "github.com/evyataryagoni/cityweather/internal/middleware"
	v1 "github.com/evyataryagoni/cityweather/internal/router/v1"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups the HTTP handlers mounted by SetupRouter
type Handlers struct {
	Cities  *handler.CityHandler
	Devices *handler.DeviceHandler
}

// SetupRouter creates the chi router with all middleware and routes
// gatherer serves /metrics; nil means the default Prometheus registry
func SetupRouter(h Handlers, rateLimiter limiter.Limiter, m *metrics.Metrics, gatherer prometheus.Gatherer, log *logger.Logger) chi.Router {
	r := chi.NewRouter()

	// Order matters: request ID first so every log line carries it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.LoggingMiddleware(log))
	r.Use(middleware.Recoverer)
	r.Use(custommiddleware.MetricsMiddleware(m))

	r.Get("/health", healthCheckHandler)

	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Swagger UI at /swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Rate limiting applies to the API only, not to health checks and scrapes
	r.With(custommiddleware.RateLimitMiddleware(rateLimiter, m)).
		Mount("/v1", v1.SetupRoutes(h.Cities, h.Devices))

	return r
}

// healthCheckHandler reports that the process is serving
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
