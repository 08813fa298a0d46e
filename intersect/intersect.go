// Package intersect counts edge crossings over a geometry index.
//
// The indexed strategy asks the spatial index only for edges whose bounding
// box overlaps the query edge's bounding box and runs the exact segment test
// on those, so the cost per edge follows local density instead of the total
// edge count. AllPairs is the quadratic reference used to cross-check it.
//
// An edge never counts as crossing itself. Self-exclusion compares quantized
// geometry, not identifiers, so two distinct edges occupying the same
// endpoints (in either direction) do not count as crossing each other either.
// Both strategies apply the same rule and must agree.
package intersect

import (
	"iter"
	"slices"

	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/idset"
	"github.com/hupe1980/graphgeo/model"
	"golang.org/x/sync/errgroup"
)

// Source is the read view of the geometry index used by the engine.
// *index.Index satisfies it.
type Source interface {
	Edge(id model.EdgeID) (geom.Segment, bool)
	EdgesInEnvelope(env geom.Envelope) []model.EdgeEntry
	Edges() []model.EdgeEntry
}

// Options configures the engine.
type Options struct {
	// GridPower is the quantization grid used for self-exclusion.
	GridPower int

	// Workers bounds the goroutines used by IntersectingEdges.
	// Values below 2 run sequentially.
	Workers int
}

// DefaultOptions contains the default configuration.
var DefaultOptions = Options{
	GridPower: 0,
	Workers:   1,
}

func applyOptions(optFns []func(*Options)) Options {
	o := DefaultOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

// Crosses reports whether a and b intersect and are not the same physical
// segment at gridPower.
func Crosses(a, b geom.Segment, gridPower int) bool {
	return !a.EqualAt(b, gridPower) && a.Intersects(b)
}

// Filter yields the candidates that cross query.
func Filter(query geom.Segment, candidates iter.Seq[model.EdgeEntry], gridPower int) iter.Seq[model.EdgeEntry] {
	return func(yield func(model.EdgeEntry) bool) {
		for c := range candidates {
			if !Crosses(query, c.Segment, gridPower) {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Crossing returns the indexed edges crossing edge id, looked up through
// the spatial index. It returns nil for edges that are not indexed.
func Crossing(src Source, id model.EdgeID, optFns ...func(*Options)) []model.EdgeEntry {
	o := applyOptions(optFns)

	s, ok := src.Edge(id)
	if !ok {
		return nil
	}

	return slices.Collect(Filter(s, slices.Values(src.EdgesInEnvelope(s.Envelope())), o.GridPower))
}

// CountForEdge returns how many indexed edges cross edge id.
func CountForEdge(src Source, id model.EdgeID, optFns ...func(*Options)) int {
	return len(Crossing(src, id, optFns...))
}

// IntersectingEdges returns the set of indexed edges that cross at least one
// other edge, using the indexed strategy per edge.
func IntersectingEdges(src Source, optFns ...func(*Options)) *idset.Set[model.EdgeID] {
	o := applyOptions(optFns)
	edges := src.Edges()

	hasCrossing := func(e model.EdgeEntry) bool {
		for range Filter(e.Segment, slices.Values(src.EdgesInEnvelope(e.Segment.Envelope())), o.GridPower) {
			return true
		}
		return false
	}

	if o.Workers < 2 || len(edges) < 2*o.Workers {
		out := idset.New[model.EdgeID]()
		for _, e := range edges {
			if hasCrossing(e) {
				out.Add(e.ID)
			}
		}
		return out
	}

	chunkSize := (len(edges) + o.Workers - 1) / o.Workers
	chunks := slices.Collect(slices.Chunk(edges, chunkSize))
	found := make([][]model.EdgeID, len(chunks))

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i, chunk := range chunks {
		g.Go(func() error {
			for _, e := range chunk {
				if hasCrossing(e) {
					found[i] = append(found[i], e.ID)
				}
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	out := idset.New[model.EdgeID]()
	for _, ids := range found {
		for _, id := range ids {
			out.Add(id)
		}
	}
	return out
}

// CountIntersectingEdges returns the number of edges having at least one crossing.
func CountIntersectingEdges(src Source, optFns ...func(*Options)) int {
	return IntersectingEdges(src, optFns...).Len()
}

// Pair is an unordered pair of crossing edges. A precedes B in the input order.
type Pair struct {
	A, B model.EdgeID
}

// AllPairs compares every unordered pair of edges directly. It is O(E²) and
// meant for cross-checking and small graphs.
func AllPairs(edges []model.EdgeEntry, gridPower int) []Pair {
	var out []Pair
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			if Crosses(edges[i].Segment, edges[j].Segment, gridPower) {
				out = append(out, Pair{A: edges[i].ID, B: edges[j].ID})
			}
		}
	}
	return out
}

// CountAllPairs returns the number of crossing pairs found by AllPairs.
func CountAllPairs(edges []model.EdgeEntry, gridPower int) int {
	return len(AllPairs(edges, gridPower))
}

// Members returns every edge that appears in at least one pair.
func Members(pairs []Pair) *idset.Set[model.EdgeID] {
	out := idset.New[model.EdgeID]()
	for _, p := range pairs {
		out.Add(p.A)
		out.Add(p.B)
	}
	return out
}
