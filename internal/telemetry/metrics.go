// Package telemetry exposes prometheus collectors for the service.
package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the service's prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal     *prometheus.CounterVec
	CompletionSeconds *prometheus.HistogramVec
}

// NewMetrics creates the collectors on a fresh registry so tests can hold
// independent instances.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "prompt_system_requests_total",
			Help: "HTTP requests handled, by method and path pattern.",
		}, []string{"method", "path"}),
		CompletionSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prompt_system_completion_seconds",
			Help:    "Latency of completion provider calls.",
			Buckets: prometheus.DefBuckets,
		}, []string{"model", "outcome"}),
	}
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
