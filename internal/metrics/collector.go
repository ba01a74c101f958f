// Package metrics exports the counters of finished sort runs as Prometheus
// metrics.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/partviz/internal/quicksort"
)

// Namespace prefixes every exported metric.
const Namespace = "partviz"

// Run status label values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

// Collector records per-scheme run statistics. Each Collector owns its own
// registry, so several collectors can coexist in one process (tests).
type Collector struct {
	registry *prometheus.Registry

	runs        *prometheus.CounterVec
	swaps       *prometheus.CounterVec
	comparisons *prometheus.CounterVec
	partitions  *prometheus.CounterVec
	maxDepth    *prometheus.GaugeVec
	duration    *prometheus.HistogramVec
}

// NewCollector creates a Collector registered with a fresh registry that
// also exposes the Go runtime and process collectors.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Number of finished sort runs by scheme and status.",
		}, []string{"scheme", "status"}),
		swaps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "swaps_total",
			Help:      "Effective swaps performed by the partition scheme.",
		}, []string{"scheme"}),
		comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "comparisons_total",
			Help:      "Key-versus-pivot comparisons performed by the partition scheme.",
		}, []string{"scheme"}),
		partitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "partitions_total",
			Help:      "Partition calls made by the quicksort driver.",
		}, []string{"scheme"}),
		maxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "recursion_depth_max",
			Help:      "Deepest recursion level reached by the last run of the scheme.",
		}, []string{"scheme"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of a sort run.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{"scheme"}),
	}
	c.registry.MustRegister(
		c.runs, c.swaps, c.comparisons, c.partitions, c.maxDepth, c.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// ObserveRun records a finished run.
func (c *Collector) ObserveRun(scheme string, stats quicksort.Stats, duration time.Duration, err error) {
	status := StatusSuccess
	if err != nil {
		status = StatusFailure
	}
	c.runs.WithLabelValues(scheme, status).Inc()
	c.swaps.WithLabelValues(scheme).Add(float64(stats.Swaps))
	c.comparisons.WithLabelValues(scheme).Add(float64(stats.Comparisons))
	c.partitions.WithLabelValues(scheme).Add(float64(stats.Partitions))
	c.maxDepth.WithLabelValues(scheme).Set(float64(stats.MaxDepth))
	c.duration.WithLabelValues(scheme).Observe(duration.Seconds())
}

// Registry returns the registry backing the collector.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler returns the HTTP handler serving the collector's metrics in the
// Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
