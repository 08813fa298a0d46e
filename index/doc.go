// Package index provides the geometry index: an R-tree of node and edge
// elements plus the identifier maps that keep it free of stale entries.
//
// # Invariants
//
//   - Every identifier present in the node or edge map has exactly one entry
//     in the tree, with the same key and the same geometry, and every tree
//     entry is reachable from one of the maps.
//   - At most one entry exists per NodeID and per EdgeID. Inserting under an
//     identifier that is already present evicts the stale entry first.
//
// Every exported method runs under a single mutex, so the two nested
// structures are never observed in a torn state.
//
// # Example Usage
//
//	idx := index.New()
//	idx.InsertNode(1, geom.Pt(0, 0))
//	idx.InsertNode(1, geom.Pt(5, 5)) // replaces, never appends
//	idx.InsertEdge(1, geom.Seg(geom.Pt(0, 0), geom.Pt(10, 10)))
//
//	for _, n := range idx.NodesInEnvelope(geom.NewEnvelope(4, 4, 6, 6)) {
//	    fmt.Println(n.ID, n.Point)
//	}
package index
