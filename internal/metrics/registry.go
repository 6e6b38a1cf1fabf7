package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds the Prometheus collectors exported over the metrics
// HTTP endpoint.
type Registry struct {
	registry *prometheus.Registry

	OperationsTotal  *prometheus.CounterVec
	OperationErrors  *prometheus.CounterVec
	OperationSeconds *prometheus.HistogramVec
	HeapAllocBytes   prometheus.Gauge
	HeapObjects      prometheus.Gauge
}

// NewRegistry builds a Registry with all collectors registered against
// a fresh prometheus.Registry (not the global default, so tests and
// multiple server instances don't collide).
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
		OperationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bigint",
			Name:      "operations_total",
			Help:      "Total number of arithmetic operations dispatched, by operator and strategy.",
		}, []string{"op", "strategy"}),
		OperationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bigint",
			Name:      "operation_errors_total",
			Help:      "Total number of arithmetic operations that failed, by operator and strategy.",
		}, []string{"op", "strategy"}),
		OperationSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bigint",
			Name:      "operation_duration_seconds",
			Help:      "Observed wall-clock duration of arithmetic operations, by operator and strategy.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 16),
		}, []string{"op", "strategy"}),
		HeapAllocBytes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bigint",
			Name:      "heap_alloc_bytes",
			Help:      "Bytes of heap memory currently allocated, sampled from runtime.MemStats.",
		}),
		HeapObjects: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "bigint",
			Name:      "heap_objects",
			Help:      "Number of allocated heap objects, sampled from runtime.MemStats.",
		}),
	}

	reg.MustRegister(r.OperationsTotal, r.OperationErrors, r.OperationSeconds, r.HeapAllocBytes, r.HeapObjects)
	return r
}

// Gatherer exposes the underlying prometheus.Gatherer for promhttp.Handler.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// ObserveOperation records one completed arithmetic operation.
func (r *Registry) ObserveOperation(op, strategy string, seconds float64, err error) {
	r.OperationsTotal.WithLabelValues(op, strategy).Inc()
	r.OperationSeconds.WithLabelValues(op, strategy).Observe(seconds)
	if err != nil {
		r.OperationErrors.WithLabelValues(op, strategy).Inc()
	}
}

// SampleMemory refreshes the heap gauges from a MemoryCollector snapshot.
func (r *Registry) SampleMemory(snap MemorySnapshot) {
	r.HeapAllocBytes.Set(float64(snap.HeapAlloc))
	r.HeapObjects.Set(float64(snap.HeapObjects))
}
