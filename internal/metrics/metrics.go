package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for external calls.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	externalRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickercast_external_requests_total",
			Help: "Calls made to external services, by service and outcome",
		},
		[]string{"service", "outcome"},
	)

	externalLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tickercast_external_request_duration_seconds",
			Help:    "Latency of calls made to external services",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service"},
	)

	fitDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "tickercast_forecast_fit_duration_seconds",
			Help:    "Time spent fitting and predicting one forecast",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"route", "method", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"route", "method", "class"},
	)
)

// ObserveExternal records one call to an external service ("finnhub", "yahoo").
func ObserveExternal(service, outcome string, elapsed time.Duration) {
	externalRequests.WithLabelValues(service, outcome).Inc()
	externalLatency.WithLabelValues(service).Observe(elapsed.Seconds())
}

// ObserveFit records the duration of one forecast fit.
func ObserveFit(elapsed time.Duration) {
	fitDuration.Observe(elapsed.Seconds())
}

// ObserveHTTP records one served HTTP request. Route should be the templated
// path to keep label cardinality low.
func ObserveHTTP(route, method string, status int, elapsed time.Duration) {
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(route, method, StatusClass(status)).Observe(elapsed.Seconds())
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// StatusClass buckets an HTTP status into "2xx", "4xx", etc.
func StatusClass(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "1xx"
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
