// Package metrics records exhibit's Prometheus metrics on a private registry
// and flushes them to a node-exporter textfile on exit.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultNamespace = "exhibit"

// Collector implements the generation and export recorders.
type Collector struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	generations        *prometheus.CounterVec
	generationDuration prometheus.Histogram
	exports            *prometheus.CounterVec
	exportDuration     prometheus.Histogram
	views              *prometheus.CounterVec
}

// Option configures a Collector.
type Option func(*Collector)

// WithNamespace sets the metric namespace.
func WithNamespace(namespace string) Option {
	return func(c *Collector) {
		if namespace != "" {
			c.namespace = namespace
		}
	}
}

// WithHistogramBuckets sets the latency buckets, in seconds.
func WithHistogramBuckets(buckets []float64) Option {
	return func(c *Collector) {
		if len(buckets) > 0 {
			c.buckets = buckets
		}
	}
}

// WithRegistry registers metrics on registry instead of a fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *Collector) {
		if registry != nil {
			c.registry = registry
		}
	}
}

// New builds a Collector.
func New(opts ...Option) *Collector {
	c := &Collector{
		namespace: defaultNamespace,
		buckets:   []float64{0.5, 1, 2, 4, 8, 15, 30, 60},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = prometheus.NewRegistry()
	}

	factory := promauto.With(c.registry)
	c.generations = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "generations_total",
		Help:      "Placard generation requests by outcome.",
	}, []string{"outcome"})
	c.generationDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      "generation_duration_seconds",
		Help:      "Time spent waiting on the generation API.",
		Buckets:   c.buckets,
	})
	c.exports = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "exports_total",
		Help:      "PNG exports by outcome.",
	}, []string{"outcome"})
	c.exportDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: c.namespace,
		Name:      "export_duration_seconds",
		Help:      "Time spent rasterising and writing a placard.",
		Buckets:   prometheus.DefBuckets,
	})
	c.views = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: c.namespace,
		Name:      "view_transitions_total",
		Help:      "View state transitions by destination view.",
	}, []string{"view"})
	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveGeneration records one generation attempt.
func (c *Collector) ObserveGeneration(outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.generations.WithLabelValues(outcome).Inc()
	c.generationDuration.Observe(elapsed.Seconds())
}

// ObserveExport records one export attempt.
func (c *Collector) ObserveExport(outcome string, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.exports.WithLabelValues(outcome).Inc()
	c.exportDuration.Observe(elapsed.Seconds())
}

// ObserveView counts a transition into view.
func (c *Collector) ObserveView(view string) {
	if c == nil {
		return
	}
	c.views.WithLabelValues(view).Inc()
}

// WriteTextfile writes every metric to path in the text exposition format.
// An empty path is a no-op.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil || strings.TrimSpace(path) == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
