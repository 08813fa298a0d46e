package graphgeo_test

import (
	"fmt"

	"github.com/hupe1980/graphgeo"
	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/graph"
	"github.com/hupe1980/graphgeo/model"
)

// Example_crossings builds two crossing edges and then moves a node so that
// they no longer cross.
func Example_crossings() {
	l := graphgeo.New(graph.NewMemory())

	for id, p := range []geom.Point{geom.Pt(0, 0), geom.Pt(10, 10), geom.Pt(0, 10), geom.Pt(10, 0)} {
		_ = l.AddNode(model.NodeID(id))
		_ = l.SetNodePosition(model.NodeID(id), p)
	}
	_ = l.AddEdge(0, 0, 1)
	_ = l.AddEdge(1, 2, 3)

	fmt.Println(l.IntersectionsForEdge(0), l.TotalIntersectingEdges(), l.TotalPairwiseIntersections())

	_ = l.SetNodePosition(3, geom.Pt(10, 20))
	fmt.Println(l.IntersectionsForEdge(0), l.TotalIntersectingEdges(), l.TotalPairwiseIntersections())
	// Output:
	// 1 2 1
	// 0 0 0
}

// Example_queryRegion queries a small box around the origin.
func Example_queryRegion() {
	g := graph.NewMemory()
	for id := range model.NodeID(3) {
		_ = g.AddNode(id)
	}
	g.SetPosition(0, geom.Pt(0, 0))
	g.SetPosition(1, geom.Pt(10, 10))
	g.SetPosition(2, geom.Pt(20, 10))
	_ = g.AddEdge(0, 1, 2)

	l := graphgeo.New(g)
	r := l.QueryRegion(geom.NewEnvelope(-1, -1, 1, 1))

	fmt.Println(len(r.Nodes), len(r.Edges))
	// Output: 1 0
}

// Example_metrics collects basic operation metrics.
func Example_metrics() {
	metrics := &graphgeo.BasicMetricsCollector{}
	l := graphgeo.New(graph.NewMemory(), graphgeo.WithMetricsCollector(metrics))

	_ = l.AddNode(0)
	_ = l.SetNodePosition(0, geom.Pt(1, 1))
	_ = l.SetNodePosition(0, geom.Pt(2, 2))

	stats := metrics.GetStats()
	fmt.Println("node inserts:", stats.NodeInserts)
	// Output: node inserts: 2
}
