// Package observability holds the Prometheus instrumentation for the API.
// Metrics live on a private registry exposed through Handler so tests can
// construct independent Metrics values without collisions.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// prediction API.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec   // labels: method, endpoint, status
	RequestDuration *prometheus.HistogramVec // labels: method, endpoint, status

	PredictionsTotal  *prometheus.CounterVec   // labels: model, outcome={success,error}
	InferenceDuration *prometheus.HistogramVec // labels: model
	ModelLoaded       *prometheus.GaugeVec     // labels: model
}

// NewMetrics creates and registers all API metrics on a fresh registry under
// the given namespace.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests served.",
		}, []string{"method", "endpoint", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}, []string{"method", "endpoint", "status"}),
		PredictionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Total model inference calls by outcome.",
		}, []string{"model", "outcome"}),
		InferenceDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inference_duration_seconds",
			Help:      "Duration of a single model inference call.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"model"}),
		ModelLoaded: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_loaded",
			Help:      "1 when the artifact loaded at startup, 0 otherwise.",
		}, []string{"model"}),
	}

	m.registry.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.PredictionsTotal,
		m.InferenceDuration,
		m.ModelLoaded,
	)
	return m
}

// Handler returns the HTTP handler serving the exposition format for this
// registry. Mounted at GET /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordRequest records latency and count for a completed HTTP request.
// Implements the core.MetricsCollector contract.
func (m *Metrics) RecordRequest(method, endpoint, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	m.RequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordPrediction records one model inference call and its duration.
func (m *Metrics) RecordPrediction(model, outcome string, duration time.Duration) {
	m.PredictionsTotal.WithLabelValues(model, outcome).Inc()
	m.InferenceDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// SetModelLoaded records the startup load state of one artifact.
func (m *Metrics) SetModelLoaded(model string, loaded bool) {
	v := 0.0
	if loaded {
		v = 1.0
	}
	m.ModelLoaded.WithLabelValues(model).Set(v)
}
