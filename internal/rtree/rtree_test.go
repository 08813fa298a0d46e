package rtree

import (
	"slices"
	"testing"

	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(seq func(func(model.Element) bool)) []model.Key {
	var out []model.Key
	for e := range seq {
		out = append(out, e.Key())
	}
	slices.SortFunc(out, func(a, b model.Key) int {
		if a.Kind != b.Kind {
			return int(a.Kind) - int(b.Kind)
		}
		return int(a.ID) - int(b.ID)
	})
	return out
}

func TestTree(t *testing.T) {
	tree := New(0, 0)

	tree.Insert(model.NewNode(1, geom.Pt(0, 0)))
	tree.Insert(model.NewNode(2, geom.Pt(10, 10)))
	tree.Insert(model.NewEdge(1, geom.Pt(0, 0), geom.Pt(10, 10)))
	require.Equal(t, 3, tree.Len())

	t.Run("Search", func(t *testing.T) {
		got := keys(tree.Search(geom.NewEnvelope(-1, -1, 1, 1)))
		assert.Equal(t, []model.Key{model.NodeKey(1), model.EdgeKey(1)}, got)

		got = keys(tree.Search(geom.NewEnvelope(20, 20, 30, 30)))
		assert.Empty(t, got)
	})

	t.Run("SearchStopsEarly", func(t *testing.T) {
		n := 0
		for range tree.Search(geom.Everything()) {
			n++
			break
		}
		assert.Equal(t, 1, n)
	})

	t.Run("RemoveByKey", func(t *testing.T) {
		assert.False(t, tree.Remove(model.NewNode(3, geom.Pt(0, 0))))
		assert.True(t, tree.Remove(model.NewNode(1, geom.Pt(0, 0))))
		assert.False(t, tree.Remove(model.NewNode(1, geom.Pt(0, 0))))
		assert.Equal(t, 2, tree.Len())

		got := keys(tree.Search(geom.NewEnvelope(-1, -1, 1, 1)))
		assert.Equal(t, []model.Key{model.EdgeKey(1)}, got)
	})
}

func TestTreeSameEnvelopeDifferentKeys(t *testing.T) {
	tree := New(2, 4)

	for i := range 20 {
		tree.Insert(model.NewNode(model.NodeID(i), geom.Pt(1, 1)))
	}
	require.True(t, tree.Remove(model.NewNode(7, geom.Pt(1, 1))))

	got := keys(tree.Search(geom.PointEnvelope(geom.Pt(1, 1))))
	assert.Len(t, got, 19)
	assert.NotContains(t, got, model.NodeKey(7))
}

func TestTreeLoadAndNearest(t *testing.T) {
	tree := New(0, 0)
	tree.Insert(model.NewNode(99, geom.Pt(100, 100)))

	tree.Load([]model.Element{
		model.NewNode(1, geom.Pt(0.1, 0)),
		model.NewNode(2, geom.Pt(0.2, 0.1)),
		model.NewNode(3, geom.Pt(0.3, 0)),
		model.NewEdge(1, geom.Pt(0.4, -0.1), geom.Pt(0.5, -0.1)),
	})
	require.Equal(t, 4, tree.Len())

	elem, ok := tree.Nearest(geom.Pt(0.4, -0.1), model.KindNode)
	require.True(t, ok)
	assert.Equal(t, model.NodeKey(3), elem.Key())

	require.True(t, tree.Remove(model.NewNode(3, geom.Pt(0.3, 0))))
	elem, ok = tree.Nearest(geom.Pt(0.4, 0.3), model.KindNode)
	require.True(t, ok)
	assert.Equal(t, model.NodeKey(2), elem.Key())

	_, ok = New(0, 0).Nearest(geom.Pt(0, 0), model.KindNode)
	assert.False(t, ok)
}

func TestTreeTouchingEnvelopes(t *testing.T) {
	tree := New(0, 0)
	tree.Insert(model.NewEdge(1, geom.Pt(0, 0), geom.Pt(10, 10)))
	tree.Insert(model.NewEdge(2, geom.Pt(0, 0), geom.Pt(5, -3)))
	tree.Insert(model.NewEdge(3, geom.Pt(0, 5), geom.Pt(-5, 5)))
	tree.Insert(model.NewNode(1, geom.Pt(1, 1)))

	t.Run("SharedCorner", func(t *testing.T) {
		got := keys(tree.Search(geom.NewEnvelope(0, -3, 5, 0)))
		assert.Equal(t, []model.Key{model.EdgeKey(1), model.EdgeKey(2)}, got)
	})

	t.Run("HorizontalQueryOnBorder", func(t *testing.T) {
		got := keys(tree.Search(geom.NewEnvelope(0, 5, 10, 5)))
		assert.Equal(t, []model.Key{model.EdgeKey(1), model.EdgeKey(3)}, got)
	})

	t.Run("PointOnPoint", func(t *testing.T) {
		got := keys(tree.Search(geom.PointEnvelope(geom.Pt(1, 1))))
		assert.Equal(t, []model.Key{model.NodeKey(1), model.EdgeKey(1)}, got)
	})

	t.Run("JustOutside", func(t *testing.T) {
		got := keys(tree.Search(geom.NewEnvelope(-5, 5.5, -1, 6)))
		assert.Empty(t, got)
	})
}
