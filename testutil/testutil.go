package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/graph"
	"github.com/hupe1980/graphgeo/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Point returns a point with both coordinates in [0, span).
func (r *RNG) Point(span float64) geom.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return geom.Pt(r.rand.Float64()*span, r.rand.Float64()*span)
}

// Graph builds a positioned graph with the given number of nodes and edges.
// Edges connect distinct random nodes; parallel edges may occur.
func (r *RNG) Graph(nodes, edges int, span float64) *graph.Memory {
	g := graph.NewMemory()

	for i := range nodes {
		id := model.NodeID(i)
		_ = g.AddNode(id)
		g.SetPosition(id, r.Point(span))
	}

	if nodes < 2 {
		return g
	}

	for i := range edges {
		a := r.Intn(nodes)
		b := r.Intn(nodes - 1)
		if b >= a {
			b++
		}
		_ = g.AddEdge(model.EdgeID(i), model.NodeID(a), model.NodeID(b))
	}

	return g
}
