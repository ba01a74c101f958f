package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/partviz/internal/metrics"
)

// Metrics tracks the HTTP traffic of the server and serves the run metrics
// of a collector.
type Metrics struct {
	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
	handler        http.Handler
}

// NewMetrics registers the request metrics with the collector's registry.
// A nil collector gets a fresh one.
func NewMetrics(collector *metrics.Collector) *Metrics {
	if collector == nil {
		collector = metrics.NewCollector()
	}
	m := &Metrics{
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metrics.Namespace,
			Name:      "active_requests",
			Help:      "Number of HTTP requests being served.",
		}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Name:      "requests_total",
			Help:      "Number of HTTP requests by path.",
		}, []string{"path"}),
	}
	reg := collector.Registry()
	reg.MustRegister(m.activeRequests, m.requestsTotal)
	m.handler = promhttp.InstrumentMetricHandler(reg, collector.Handler())
	return m
}

// IncrementActiveRequests marks the start of a request.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests marks the end of a request.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// CountRequest increments the request counter of path.
func (m *Metrics) CountRequest(path string) { m.requestsTotal.WithLabelValues(path).Inc() }

// WritePrometheus writes every registered metric in the exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
