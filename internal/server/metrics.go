package server

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics wraps the Prometheus collectors exported by the HTTP server.
// The collectors themselves are registered once against the global
// default registry (Prometheus collectors are process-wide singletons);
// NewMetrics can be called repeatedly and simply hands back a Metrics
// referencing the same shared collectors.
type Metrics struct {
	handler         http.Handler
	activeRequests  prometheus.Gauge
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

var (
	metricsOnce sync.Once

	sharedActiveRequests  prometheus.Gauge
	sharedRequestsTotal   *prometheus.CounterVec
	sharedRequestDuration *prometheus.HistogramVec
)

func registerSharedMetrics() {
	sharedActiveRequests = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "bigint",
		Name:      "active_requests",
		Help:      "Number of HTTP requests currently being served.",
	})
	sharedRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bigint",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests served, by path and status code.",
	}, []string{"path", "status"})
	sharedRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bigint",
		Name:      "request_duration_seconds",
		Help:      "Observed HTTP request duration, by path.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})
	prometheus.MustRegister(sharedActiveRequests, sharedRequestsTotal, sharedRequestDuration)
}

// NewMetrics returns a Metrics bound to the process-wide Prometheus
// collectors, registering them against the default registry on first
// use.
func NewMetrics() *Metrics {
	metricsOnce.Do(registerSharedMetrics)
	return &Metrics{
		handler:         promhttp.Handler(),
		activeRequests:  sharedActiveRequests,
		requestsTotal:   sharedRequestsTotal,
		requestDuration: sharedRequestDuration,
	}
}

// IncrementActiveRequests records the start of an in-flight request.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests records the completion of an in-flight request.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// WritePrometheus serves the aggregated metrics in the Prometheus text
// exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
