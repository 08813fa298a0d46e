// Package promcollector exports graphgeo operation metrics to Prometheus.
package promcollector

import (
	"strconv"
	"time"

	"github.com/hupe1980/graphgeo"
	"github.com/hupe1980/graphgeo/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Options configures the exported metric names.
type Options struct {
	Namespace string
	Subsystem string

	// LatencyBuckets are the histogram buckets in seconds.
	LatencyBuckets []float64
}

// DefaultOptions contains the default configuration.
var DefaultOptions = Options{
	Namespace:      "graphgeo",
	Subsystem:      "layout",
	LatencyBuckets: []float64{1e-6, 5e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 1e-2, 5e-2, 0.1, 0.5, 1},
}

// Collector implements graphgeo.MetricsCollector with Prometheus metrics.
type Collector struct {
	inserts       *prometheus.CounterVec
	removes       *prometheus.CounterVec
	mutationTime  *prometheus.HistogramVec
	queries       prometheus.Counter
	queryResults  prometheus.Histogram
	queryTime     prometheus.Histogram
	intersections *prometheus.GaugeVec
	countTime     *prometheus.HistogramVec
}

var _ graphgeo.MetricsCollector = (*Collector)(nil)

// New registers the metrics with reg and returns the collector.
// It panics if a metric with the same name is already registered, like
// promauto does.
func New(reg prometheus.Registerer, optFns ...func(o *Options)) *Collector {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	f := promauto.With(reg)

	return &Collector{
		inserts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "inserts_total",
			Help:      "Elements (re)inserted into the geometry index.",
		}, []string{"kind"}),
		removes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "removes_total",
			Help:      "Eviction attempts on the geometry index.",
		}, []string{"kind", "found"}),
		mutationTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "mutation_duration_seconds",
			Help:      "Time spent in single index mutations.",
			Buckets:   opts.LatencyBuckets,
		}, []string{"op"}),
		queries: f.NewCounter(prometheus.CounterOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "region_queries_total",
			Help:      "Region queries served.",
		}),
		queryResults: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "region_query_results",
			Help:      "Elements returned per region query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		queryTime: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "region_query_duration_seconds",
			Help:      "Region query latency.",
			Buckets:   opts.LatencyBuckets,
		}),
		intersections: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "intersections",
			Help:      "Result of the most recent intersection count.",
		}, []string{"method"}),
		countTime: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: opts.Namespace,
			Subsystem: opts.Subsystem,
			Name:      "intersection_duration_seconds",
			Help:      "Time spent counting intersections.",
			Buckets:   opts.LatencyBuckets,
		}, []string{"method"}),
	}
}

// RecordInsert implements graphgeo.MetricsCollector.
func (c *Collector) RecordInsert(kind model.Kind, duration time.Duration) {
	c.inserts.WithLabelValues(kind.String()).Inc()
	c.mutationTime.WithLabelValues("insert").Observe(duration.Seconds())
}

// RecordRemove implements graphgeo.MetricsCollector.
func (c *Collector) RecordRemove(kind model.Kind, found bool, duration time.Duration) {
	c.removes.WithLabelValues(kind.String(), strconv.FormatBool(found)).Inc()
	c.mutationTime.WithLabelValues("remove").Observe(duration.Seconds())
}

// RecordQuery implements graphgeo.MetricsCollector.
func (c *Collector) RecordQuery(results int, duration time.Duration) {
	c.queries.Inc()
	c.queryResults.Observe(float64(results))
	c.queryTime.Observe(duration.Seconds())
}

// RecordIntersections implements graphgeo.MetricsCollector.
func (c *Collector) RecordIntersections(method string, count int, duration time.Duration) {
	c.intersections.WithLabelValues(method).Set(float64(count))
	c.countTime.WithLabelValues(method).Observe(duration.Seconds())
}
