// Package testutil provides testing utilities for graphgeo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic, thread-safe RNG and builders for random
// planar graphs.
//
// # Random Graphs
//
//	rng := testutil.NewRNG(seed)
//	g := rng.Graph(100, 150, 1000) // 100 nodes, 150 edges, coordinates in [0, 1000)
package testutil
