package graphgeo

import (
	"log/slog"

	"github.com/hupe1980/graphgeo/internal/rtree"
)

type options struct {
	gridPower        int
	minChildren      int
	maxChildren      int
	workers          int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Layout.
type Option func(*options)

// WithGridPower sets the quantization grid used when deciding whether two
// edges are the same physical segment. Coordinates are rounded to multiples
// of 2^-gridPower, so 0 rounds to integers and 4 to sixteenths.
//
// Negative values are treated as 0.
func WithGridPower(gridPower int) Option {
	return func(o *options) {
		if gridPower < 0 {
			gridPower = 0
		}
		o.gridPower = gridPower
	}
}

// WithNodeCapacity sets the minimum and maximum fan-out of the R-tree nodes.
//
// Larger nodes make the tree shallower at the cost of more comparisons per
// level. Invalid combinations are clamped by the tree.
func WithNodeCapacity(minChildren, maxChildren int) Option {
	return func(o *options) {
		o.minChildren = minChildren
		o.maxChildren = maxChildren
	}
}

// WithWorkers sets how many goroutines TotalIntersectingEdges may use.
// Values below 2 count sequentially.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &graphgeo.BasicMetricsCollector{}
//	l, _ := graphgeo.New(g, graphgeo.WithMetricsCollector(metrics))
//	// ... use l ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, Avg latency: %dns\n", stats.InsertCount, stats.InsertAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := graphgeo.NewJSONLogger(slog.LevelInfo)
//	l, _ := graphgeo.New(g, graphgeo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		gridPower:        0,
		minChildren:      rtree.DefaultMinChildren,
		maxChildren:      rtree.DefaultMaxChildren,
		workers:          1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
