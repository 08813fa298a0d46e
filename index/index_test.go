package index

import (
	"testing"

	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/model"
	"github.com/hupe1980/graphgeo/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	t.Run("InsertAndQuery", func(t *testing.T) {
		idx := New()

		_, replaced := idx.InsertNode(1, geom.Pt(0, 0))
		assert.False(t, replaced)
		idx.InsertNode(2, geom.Pt(10, 10))
		idx.InsertEdge(1, geom.Seg(geom.Pt(0, 0), geom.Pt(10, 10)))

		nodes := idx.NodesInEnvelope(geom.NewEnvelope(-1, -1, 1, 1))
		assert.Equal(t, []model.NodeEntry{{ID: 1, Point: geom.Pt(0, 0)}}, nodes)

		edges := idx.EdgesInEnvelope(geom.NewEnvelope(4, 4, 6, 6))
		require.Len(t, edges, 1)
		assert.Equal(t, model.EdgeID(1), edges[0].ID)

		assert.Len(t, idx.Search(geom.Everything()), 3)
		require.NoError(t, idx.Validate())
	})

	t.Run("ReplaceNotAppend", func(t *testing.T) {
		idx := New()

		idx.InsertNode(1, geom.Pt(0, 0))
		stale, replaced := idx.InsertNode(1, geom.Pt(50, 50))
		require.True(t, replaced)
		n, _ := stale.Node()
		assert.Equal(t, geom.Pt(0, 0), n.Point)

		assert.Empty(t, idx.NodesInEnvelope(geom.NewEnvelope(-1, -1, 1, 1)))
		assert.Len(t, idx.NodesInEnvelope(geom.NewEnvelope(49, 49, 51, 51)), 1)
		assert.Equal(t, Stats{Nodes: 1, Edges: 0, TreeSize: 1}, idx.Stats())

		p, ok := idx.Node(1)
		require.True(t, ok)
		assert.Equal(t, geom.Pt(50, 50), p)
		require.NoError(t, idx.Validate())
	})

	t.Run("RemoveLeavesEdges", func(t *testing.T) {
		idx := New()

		idx.InsertNode(1, geom.Pt(0, 0))
		idx.InsertEdge(7, geom.Seg(geom.Pt(0, 0), geom.Pt(1, 1)))

		removed, ok := idx.RemoveNode(1)
		require.True(t, ok)
		assert.Equal(t, model.NodeKey(1), removed.Key())

		_, ok = idx.RemoveNode(1)
		assert.False(t, ok)

		s, ok := idx.Edge(7)
		require.True(t, ok)
		assert.Equal(t, geom.Pt(1, 1), s.End)

		_, ok = idx.RemoveEdge(7)
		assert.True(t, ok)
		_, ok = idx.Edge(7)
		assert.False(t, ok)

		assert.Equal(t, Stats{}, idx.Stats())
		require.NoError(t, idx.Validate())
	})

	t.Run("UnknownIDs", func(t *testing.T) {
		idx := New()

		_, ok := idx.RemoveEdge(42)
		assert.False(t, ok)
		_, ok = idx.Node(42)
		assert.False(t, ok)
		_, ok = idx.NearestNode(geom.Pt(0, 0))
		assert.False(t, ok)
	})

	t.Run("NodeAndEdgeShareNumber", func(t *testing.T) {
		idx := New()

		idx.InsertNode(1, geom.Pt(0, 0))
		idx.InsertEdge(1, geom.Seg(geom.Pt(0, 0), geom.Pt(3, 3)))
		idx.InsertNode(1, geom.Pt(2, 2))

		assert.Equal(t, Stats{Nodes: 1, Edges: 1, TreeSize: 2}, idx.Stats())
		require.NoError(t, idx.Validate())
	})
}

func TestIndexLoad(t *testing.T) {
	idx := New(func(o *Options) {
		o.MinChildren = 2
		o.MaxChildren = 4
	})
	idx.InsertNode(100, geom.Pt(1, 1))

	var nodes []model.NodeEntry
	var edges []model.EdgeEntry
	for i := range 50 {
		p := geom.Pt(float64(i), float64(i%7))
		nodes = append(nodes, model.NodeEntry{ID: model.NodeID(i), Point: p})
		if i > 0 {
			edges = append(edges, model.EdgeEntry{
				ID:      model.EdgeID(i),
				Segment: geom.Seg(nodes[i-1].Point, p),
			})
		}
	}

	idx.Load(nodes, edges)

	assert.Equal(t, Stats{Nodes: 50, Edges: 49, TreeSize: 99}, idx.Stats())
	assert.False(t, idx.NodeIDs().Contains(100))
	assert.Equal(t, nodes, idx.Nodes())
	assert.Equal(t, edges, idx.Edges())

	near, ok := idx.NearestNode(geom.Pt(10.2, 3.1))
	require.True(t, ok)
	assert.Equal(t, model.NodeID(10), near.ID)

	require.NoError(t, idx.Validate())
}

// TestIndexRandomOperations applies a long random sequence of inserts,
// replacements and removals and checks after every step that the maps and
// the tree agree.
func TestIndexRandomOperations(t *testing.T) {
	rng := testutil.NewRNG(4711)
	idx := New(func(o *Options) {
		o.MinChildren = 2
		o.MaxChildren = 6
	})

	const ids = 40
	liveNodes := map[model.NodeID]geom.Point{}
	liveEdges := map[model.EdgeID]geom.Segment{}

	for step := range 2000 {
		switch rng.Intn(4) {
		case 0:
			id := model.NodeID(rng.Intn(ids))
			p := rng.Point(100)
			idx.InsertNode(id, p)
			liveNodes[id] = p
		case 1:
			id := model.EdgeID(rng.Intn(ids))
			s := geom.Seg(rng.Point(100), rng.Point(100))
			idx.InsertEdge(id, s)
			liveEdges[id] = s
		case 2:
			id := model.NodeID(rng.Intn(ids))
			_, ok := idx.RemoveNode(id)
			_, want := liveNodes[id]
			require.Equal(t, want, ok, "step %d", step)
			delete(liveNodes, id)
		case 3:
			id := model.EdgeID(rng.Intn(ids))
			_, ok := idx.RemoveEdge(id)
			_, want := liveEdges[id]
			require.Equal(t, want, ok, "step %d", step)
			delete(liveEdges, id)
		}

		require.NoError(t, idx.Validate(), "step %d", step)

		stats := idx.Stats()
		require.Equal(t, len(liveNodes), stats.Nodes, "step %d", step)
		require.Equal(t, len(liveEdges), stats.Edges, "step %d", step)
		require.Equal(t, stats.Nodes+stats.Edges, stats.TreeSize, "step %d", step)
	}

	for id, p := range liveNodes {
		got, ok := idx.Node(id)
		require.True(t, ok)
		assert.Equal(t, p, got)
	}
	for id, s := range liveEdges {
		got, ok := idx.Edge(id)
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
}

func TestInvariantViolationError(t *testing.T) {
	err := &InvariantViolationError{Key: model.NodeKey(3), Reason: "found 2 tree entries"}
	assert.ErrorIs(t, err, ErrInvariantViolation)
	assert.Contains(t, err.Error(), "node(3)")
}
