// Package metrics wires the kernel's prometheus collectors: one
// accept/reject counter pair and one validation-latency histogram per
// consensus engine, registered against a dedicated registry so the
// kernel never pollutes prometheus.DefaultRegisterer.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry owns the kernel's collectors and the HTTP handler that
// exposes them.
type Registry struct {
	reg *prometheus.Registry

	accepted *prometheus.CounterVec
	rejected *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New builds a Registry with every collector registered.
func New() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		reg: reg,
		accepted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obex",
			Name:      "objects_accepted_total",
			Help:      "Consensus objects accepted by engine.",
		}, []string{"engine"}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obex",
			Name:      "objects_rejected_total",
			Help:      "Consensus objects rejected by engine and failure kind.",
		}, []string{"engine", "kind"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "obex",
			Name:      "validate_duration_seconds",
			Help:      "Validation latency by engine.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"engine"}),
	}

	reg.MustRegister(r.accepted, r.rejected, r.latency)
	return r
}

// Handler returns the HTTP handler that exposes the registry for
// scraping, wrapped so in-flight scrapes are themselves observed.
func (r *Registry) Handler() http.Handler {
	return promhttp.InstrumentMetricHandler(r.reg, promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}))
}

// Accept records a successful validation for engine.
func (r *Registry) Accept(engine string) {
	r.accepted.WithLabelValues(engine).Inc()
}

// Reject records a failed validation for engine, labeled with the
// failure kind so operators can see which invariant is tripping.
func (r *Registry) Reject(engine, kind string) {
	r.rejected.WithLabelValues(engine, kind).Inc()
}

// ObserveLatency records how long a validation took for engine.
func (r *Registry) ObserveLatency(engine string, d time.Duration) {
	r.latency.WithLabelValues(engine).Observe(d.Seconds())
}

// Timer returns a function that, when called, records the elapsed
// time since Timer was called as engine's latency observation.
func (r *Registry) Timer(engine string) func() {
	start := time.Now()
	return func() { r.ObserveLatency(engine, time.Since(start)) }
}
