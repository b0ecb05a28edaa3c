package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Custom histogram buckets optimized for API response times ranging from milliseconds to 30+ seconds
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// Backend Service Client Metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_client_operation_duration_seconds",
			Help:    "Backend service operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"service", "operation", "status"},
	)

	APIRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backend_client_operation_total",
			Help: "Total number of backend service operations",
		},
		[]string{"service", "operation", "status"},
	)

	// Session Metrics
	SessionEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "session_events_total",
			Help: "Total number of session lifecycle events",
		},
		[]string{"event"},
	)
)

// MeasureDuration returns the elapsed seconds since start.
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}

// RecordAPICall records duration and count for one backend operation.
func RecordAPICall(service, operation, status string, start time.Time) {
	duration := MeasureDuration(start)
	APIRequestDuration.WithLabelValues(service, operation, status).Observe(duration)
	APIRequestTotal.WithLabelValues(service, operation, status).Inc()
}

// Handler returns the prometheus scrape handler for the optional
// metrics listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
