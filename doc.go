// Package graphgeo keeps a live geometric index over a mutable graph.
//
// Nodes carry optional 2D positions and edges connect two nodes. A Layout
// mirrors every positioned node as a point and every edge with two
// positioned endpoints as a segment in an R-tree, so that region queries
// and edge crossing counts stay correct while nodes move and the topology
// changes.
//
// # Quick Start
//
//	g := graph.NewMemory()
//	l := graphgeo.New(g)
//
//	_ = l.AddNode(0)
//	_ = l.AddNode(1)
//	_ = l.SetNodePosition(0, geom.Pt(0, 0))
//	_ = l.SetNodePosition(1, geom.Pt(10, 10))
//	_ = l.AddEdge(0, 0, 1)
//
//	r := l.QueryRegion(geom.NewEnvelope(-1, -1, 1, 1))
//	fmt.Println(len(r.Nodes), len(r.Edges)) // 1 1
//
// # Synchronization
//
// All changes go through the Layout. Moving a node re-indexes the node and
// refreshes the segment of every incident edge inside one critical section.
// Removing a node evicts its incident edges first. A node without a
// position is never indexed and neither is any edge touching it; no
// placeholder coordinate is ever invented.
//
// # Intersections
//
// TotalIntersectingEdges asks the R-tree for candidates whose bounding box
// overlaps each edge and runs an exact segment test on them.
// TotalPairwiseIntersections compares every pair of edges and serves as a
// reference. Segments that touch, including at a shared endpoint, intersect.
// Two edges whose endpoints coincide on the quantization grid (in either
// order) are the same physical segment and never count as crossing.
//
// # Observability
//
// Logging and metrics are injected with WithLogger and WithMetricsCollector.
// Both default to no-ops. Package promcollector exports the metrics to
// Prometheus.
package graphgeo
