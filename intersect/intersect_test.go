package intersect

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/index"
	"github.com/hupe1980/graphgeo/model"
	"github.com/hupe1980/graphgeo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func seg(x0, y0, x1, y1 float64) geom.Segment {
	return geom.Seg(geom.Pt(x0, y0), geom.Pt(x1, y1))
}

func newIndex(edges map[model.EdgeID]geom.Segment) *index.Index {
	idx := index.New()
	for id, s := range edges {
		idx.InsertEdge(id, s)
	}
	return idx
}

func TestCountForEdge(t *testing.T) {
	idx := newIndex(map[model.EdgeID]geom.Segment{
		1: seg(0, 0, 10, 10), // plus, first arm
		2: seg(0, 10, 10, 0), // plus, second arm
		3: seg(20, 0, 30, 0), // parallel pair
		4: seg(20, 1, 30, 1),
	})

	assert.Equal(t, 1, CountForEdge(idx, 1))
	assert.Equal(t, 1, CountForEdge(idx, 2))
	assert.Equal(t, 0, CountForEdge(idx, 3))
	assert.Equal(t, 0, CountForEdge(idx, 4))
	assert.Equal(t, 0, CountForEdge(idx, 99))

	crossing := Crossing(idx, 1)
	require.Len(t, crossing, 1)
	assert.Equal(t, model.EdgeID(2), crossing[0].ID)

	assert.Equal(t, []model.EdgeID{1, 2}, IntersectingEdges(idx).ToSlice())
	assert.Equal(t, 2, CountIntersectingEdges(idx))
	assert.Equal(t, 1, CountAllPairs(idx.Edges(), 0))
	assert.Equal(t, []Pair{{A: 1, B: 2}}, AllPairs(idx.Edges(), 0))
}

func TestSelfExclusion(t *testing.T) {
	t.Run("Itself", func(t *testing.T) {
		idx := newIndex(map[model.EdgeID]geom.Segment{1: seg(0, 0, 5, 5)})
		assert.Equal(t, 0, CountForEdge(idx, 1))
		assert.Equal(t, 0, CountIntersectingEdges(idx))
	})

	t.Run("SameEndpointsEitherDirection", func(t *testing.T) {
		idx := newIndex(map[model.EdgeID]geom.Segment{
			1: seg(0, 0, 5, 5),
			2: seg(5, 5, 0, 0),
			3: seg(0.2, 0.1, 5.1, 4.9),
		})
		assert.Equal(t, 0, CountForEdge(idx, 1))
		assert.Equal(t, 0, CountAllPairs(idx.Edges(), 0))
	})

	t.Run("FinerGridSeparatesNearDuplicates", func(t *testing.T) {
		idx := newIndex(map[model.EdgeID]geom.Segment{
			1: seg(0, 0, 5, 5),
			2: seg(0, 0.25, 5, 5),
		})
		assert.Equal(t, 0, CountForEdge(idx, 1))
		assert.Equal(t, 1, CountForEdge(idx, 1, func(o *Options) { o.GridPower = 4 }))
	})
}

func TestFilter(t *testing.T) {
	query := seg(0, 0, 10, 10)
	candidates := []model.EdgeEntry{
		{ID: 1, Segment: query},
		{ID: 2, Segment: seg(0, 10, 10, 0)},
		{ID: 3, Segment: seg(0, 1, 9, 10)},
		{ID: 4, Segment: seg(10, 10, 20, 0)},
	}

	got := slices.Collect(Filter(query, slices.Values(candidates), 0))
	require.Len(t, got, 2)
	assert.Equal(t, model.EdgeID(2), got[0].ID)
	assert.Equal(t, model.EdgeID(4), got[1].ID)

	n := 0
	for range Filter(query, slices.Values(candidates), 0) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

// TestIndexedMatchesAllPairs cross-checks both strategies on random graphs.
func TestIndexedMatchesAllPairs(t *testing.T) {
	for _, seed := range []int64{1, 2, 3, 4711} {
		rng := testutil.NewRNG(seed)
		idx := index.New()

		for i := range 150 {
			a := rng.Point(1000)
			d := rng.Point(120)
			idx.InsertEdge(model.EdgeID(i), geom.Seg(a, geom.Pt(a.X+d.X-60, a.Y+d.Y-60)))
		}

		edges := idx.Edges()
		pairs := AllPairs(edges, 0)
		fromPairs := Members(pairs).ToSlice()
		indexed := IntersectingEdges(idx).ToSlice()

		if diff := cmp.Diff(fromPairs, indexed, cmpopts.EquateEmpty()); diff != "" {
			t.Fatalf("seed %d: intersecting edges differ (-all pairs +indexed):\n%s", seed, diff)
		}

		perEdge := 0
		for _, e := range edges {
			perEdge += CountForEdge(idx, e.ID)
		}
		assert.Equal(t, 2*len(pairs), perEdge, "seed %d", seed)
	}
}

func TestIntersectingEdgesParallel(t *testing.T) {
	defer goleak.VerifyNone(t)

	rng := testutil.NewRNG(99)
	idx := index.New()
	for i := range 400 {
		idx.InsertEdge(model.EdgeID(i), geom.Seg(rng.Point(500), rng.Point(500)))
	}

	sequential := IntersectingEdges(idx)
	parallel := IntersectingEdges(idx, func(o *Options) { o.Workers = 4 })

	got := parallel.ToSlice()
	want := sequential.ToSlice()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("parallel result differs (-sequential +parallel):\n%s", diff)
	}
	assert.False(t, sequential.IsEmpty())
}

func BenchmarkCounting(b *testing.B) {
	rng := testutil.NewRNG(4711)
	idx := index.New()
	for i := range 2000 {
		a := rng.Point(10000)
		d := rng.Point(200)
		idx.InsertEdge(model.EdgeID(i), geom.Seg(a, geom.Pt(a.X+d.X, a.Y+d.Y)))
	}
	edges := idx.Edges()

	b.Run("Indexed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = CountIntersectingEdges(idx)
		}
	})

	b.Run("AllPairs", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = CountAllPairs(edges, 0)
		}
	})
}
