package graphgeo

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/graphgeo/model"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus; package promcollector ships one.
type MetricsCollector interface {
	// RecordInsert is called after an element of the given kind was
	// (re)inserted into the geometry index.
	RecordInsert(kind model.Kind, duration time.Duration)

	// RecordRemove is called after an eviction attempt. found is false when
	// nothing was indexed under the id.
	RecordRemove(kind model.Kind, found bool, duration time.Duration)

	// RecordQuery is called after each region query with the number of
	// elements returned.
	RecordQuery(results int, duration time.Duration)

	// RecordIntersections is called after each intersection count.
	// method is "indexed", "all_pairs" or "edge".
	RecordIntersections(method string, count int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(model.Kind, time.Duration)         {}
func (NoopMetricsCollector) RecordRemove(model.Kind, bool, time.Duration)   {}
func (NoopMetricsCollector) RecordQuery(int, time.Duration)                 {}
func (NoopMetricsCollector) RecordIntersections(string, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	NodeInserts        atomic.Int64
	EdgeInserts        atomic.Int64
	InsertTotalNanos   atomic.Int64
	NodeRemoves        atomic.Int64
	EdgeRemoves        atomic.Int64
	RemoveMisses       atomic.Int64
	QueryCount         atomic.Int64
	QueryResults       atomic.Int64
	QueryTotalNanos    atomic.Int64
	IntersectionCounts atomic.Int64
	LastIntersections  atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(kind model.Kind, duration time.Duration) {
	switch kind {
	case model.KindNode:
		b.NodeInserts.Add(1)
	case model.KindEdge:
		b.EdgeInserts.Add(1)
	}
	b.InsertTotalNanos.Add(duration.Nanoseconds())
}

// RecordRemove implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRemove(kind model.Kind, found bool, _ time.Duration) {
	if !found {
		b.RemoveMisses.Add(1)
		return
	}
	switch kind {
	case model.KindNode:
		b.NodeRemoves.Add(1)
	case model.KindEdge:
		b.EdgeRemoves.Add(1)
	}
}

// RecordQuery implements MetricsCollector.
func (b *BasicMetricsCollector) RecordQuery(results int, duration time.Duration) {
	b.QueryCount.Add(1)
	b.QueryResults.Add(int64(results))
	b.QueryTotalNanos.Add(duration.Nanoseconds())
}

// RecordIntersections implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIntersections(_ string, count int, _ time.Duration) {
	b.IntersectionCounts.Add(1)
	b.LastIntersections.Store(int64(count))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		NodeInserts:        b.NodeInserts.Load(),
		EdgeInserts:        b.EdgeInserts.Load(),
		InsertAvgNanos:     b.getAvgInsertNanos(),
		NodeRemoves:        b.NodeRemoves.Load(),
		EdgeRemoves:        b.EdgeRemoves.Load(),
		RemoveMisses:       b.RemoveMisses.Load(),
		QueryCount:         b.QueryCount.Load(),
		QueryResults:       b.QueryResults.Load(),
		QueryAvgNanos:      b.getAvgQueryNanos(),
		IntersectionCounts: b.IntersectionCounts.Load(),
		LastIntersections:  b.LastIntersections.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgInsertNanos() int64 {
	count := b.NodeInserts.Load() + b.EdgeInserts.Load()
	if count == 0 {
		return 0
	}
	return b.InsertTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgQueryNanos() int64 {
	count := b.QueryCount.Load()
	if count == 0 {
		return 0
	}
	return b.QueryTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	NodeInserts        int64
	EdgeInserts        int64
	InsertAvgNanos     int64
	NodeRemoves        int64
	EdgeRemoves        int64
	RemoveMisses       int64
	QueryCount         int64
	QueryResults       int64
	QueryAvgNanos      int64
	IntersectionCounts int64
	LastIntersections  int64
}
