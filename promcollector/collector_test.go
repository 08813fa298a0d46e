package promcollector

import (
	"strings"
	"testing"

	"github.com/hupe1980/graphgeo"
	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/graph"
	"github.com/hupe1980/graphgeo/model"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	l := graphgeo.New(graph.NewMemory(), graphgeo.WithMetricsCollector(c))
	for id, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(10, 0)} {
		require.NoError(t, l.AddNode(model.NodeID(id)))
		require.NoError(t, l.SetNodePosition(model.NodeID(id), p))
	}
	require.NoError(t, l.AddEdge(0, 0, 1))
	require.NoError(t, l.AddEdge(1, 2, 3))
	l.RemoveEdge(5)
	l.QueryRegion(geom.Everything())
	l.TotalIntersectingEdges()
	l.TotalPairwiseIntersections()

	assert.InDelta(t, 4, promtest.ToFloat64(c.inserts.WithLabelValues("node")), 0)
	assert.InDelta(t, 2, promtest.ToFloat64(c.inserts.WithLabelValues("edge")), 0)
	assert.InDelta(t, 1, promtest.ToFloat64(c.removes.WithLabelValues("edge", "false")), 0)
	assert.InDelta(t, 1, promtest.ToFloat64(c.queries), 0)
	assert.InDelta(t, 2, promtest.ToFloat64(c.intersections.WithLabelValues("indexed")), 0)
	assert.InDelta(t, 1, promtest.ToFloat64(c.intersections.WithLabelValues("all_pairs")), 0)

	err := promtest.GatherAndCompare(reg, strings.NewReader(`
# HELP graphgeo_layout_region_queries_total Region queries served.
# TYPE graphgeo_layout_region_queries_total counter
graphgeo_layout_region_queries_total 1
`), "graphgeo_layout_region_queries_total")
	require.NoError(t, err)
}

func TestCollectorOptions(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg, func(o *Options) {
		o.Namespace = "test"
		o.Subsystem = "geo"
	})
	c.RecordQuery(3, 0)

	n, err := promtest.GatherAndCount(reg, "test_geo_region_queries_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Panics(t, func() { New(reg, func(o *Options) { o.Namespace = "test"; o.Subsystem = "geo" }) })
}
