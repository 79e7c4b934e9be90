package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec
	HTTPRateLimited     prometheus.Counter

	// City lookups
	CityLookupsTotal      *prometheus.CounterVec // by field, result
	AddressNormalizeTotal *prometheus.CounterVec // by result

	// Upstream calls (geolocation, weather)
	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec

	// Device state store
	StoreOperationsTotal *prometheus.CounterVec
}

// New creates all metrics and registers them on the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the metrics on reg
// Tests use a fresh prometheus.NewRegistry() to avoid duplicate registration
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),

		HTTPResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(100, 10, 7),
			},
			[]string{"method", "route", "status"},
		),

		HTTPRateLimited: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "http_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),

		CityLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "city_lookups_total",
				Help: "Total number of city directory lookups",
			},
			[]string{"field", "result"},
		),

		AddressNormalizeTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "address_normalize_total",
				Help: "Total number of address normalizations, by whether the default key was used",
			},
			[]string{"result"},
		),

		UpstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Total number of calls to geolocation and weather providers",
			},
			[]string{"provider", "result"},
		),

		UpstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Upstream provider latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),

		StoreOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "state_store_operations_total",
				Help: "Total number of device state store operations",
			},
			[]string{"operation", "result"},
		),
	}
}
