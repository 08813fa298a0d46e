package graphgeo

import (
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/model"
)

// Logger wraps slog.Logger with graphgeo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithNode adds a node field to the logger.
func (l *Logger) WithNode(id model.NodeID) *Logger {
	return &Logger{
		Logger: l.Logger.With("node", id),
	}
}

// WithEdge adds an edge field to the logger.
func (l *Logger) WithEdge(id model.EdgeID) *Logger {
	return &Logger{
		Logger: l.Logger.With("edge", id),
	}
}

// LogMove logs a node position update and the incident edge refresh it caused.
func (l *Logger) LogMove(id model.NodeID, p geom.Point, refreshed, evicted int) {
	l.Debug("node moved",
		"node", id,
		"x", p.X,
		"y", p.Y,
		"edges_refreshed", refreshed,
		"edges_evicted", evicted,
	)
}

// LogUnpositioned logs a node losing its position.
func (l *Logger) LogUnpositioned(id model.NodeID, evicted int) {
	l.Debug("node position cleared",
		"node", id,
		"edges_evicted", evicted,
	)
}

// LogEdgeAdded logs an edge addition. indexed is false when an endpoint has
// no position yet.
func (l *Logger) LogEdgeAdded(id model.EdgeID, indexed bool, err error) {
	if err != nil {
		l.Warn("edge add failed",
			"edge", id,
			"error", err,
		)
		return
	}
	l.Debug("edge added",
		"edge", id,
		"indexed", indexed,
	)
}

// LogEdgeRemoved logs an edge removal.
func (l *Logger) LogEdgeRemoved(id model.EdgeID, found bool) {
	l.Debug("edge removed",
		"edge", id,
		"found", found,
	)
}

// LogNodeRemoved logs a node removal and the number of incident edges it took along.
func (l *Logger) LogNodeRemoved(id model.NodeID, edges int, found bool) {
	l.Debug("node removed",
		"node", id,
		"edges", edges,
		"found", found,
	)
}

// LogRebuild logs a full re-index from the host graph.
func (l *Logger) LogRebuild(nodes, edges, unindexedEdges int) {
	l.Info("geometry index rebuilt",
		"nodes", nodes,
		"edges", edges,
		"unindexed_edges", unindexedEdges,
	)
}

// LogIntersections logs the result of an intersection count.
func (l *Logger) LogIntersections(method string, count int) {
	l.Info("intersections counted",
		"method", method,
		"count", count,
	)
}

// LogRegion logs a region query.
func (l *Logger) LogRegion(env geom.Envelope, nodes, edges int) {
	l.Debug("region queried",
		"envelope", env.String(),
		"nodes", nodes,
		"edges", edges,
	)
}
