// Package rtree adapts github.com/dhconnelly/rtreego to model.Element.
//
// The tree performs no duplicate detection. Callers that want one entry per
// identifier must remove the previous element before inserting a new one.
package rtree

import (
	"iter"
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/model"
)

// Default node fan-out.
const (
	DefaultMinChildren = 25
	DefaultMaxChildren = 50
)

type item struct {
	elem   model.Element
	bounds rtreego.Rect
}

func newItem(elem model.Element) *item {
	return &item{elem: elem, bounds: Rect(elem.Envelope())}
}

// Bounds implements rtreego.Spatial.
func (it *item) Bounds() rtreego.Rect {
	return it.bounds
}

// Rect converts an envelope to an rtreego rectangle widened by one ulp on
// every side.
//
// rtreego only reports rectangles whose interiors overlap, so closed
// envelopes that merely touch, and degenerate envelopes such as points, would
// otherwise never match. Widening turns every closed contact into a strict
// overlap. Search re-checks hits against the exact envelope.
func Rect(env geom.Envelope) rtreego.Rect {
	down := func(f float64) float64 { return math.Nextafter(f, math.Inf(-1)) }
	up := func(f float64) float64 { return math.Nextafter(f, math.Inf(1)) }

	r, err := rtreego.NewRectFromPoints(
		rtreego.Point{down(env.Min.X), down(env.Min.Y)},
		rtreego.Point{up(env.Max.X), up(env.Max.Y)},
	)
	if err != nil {
		// Only returned for mismatched dimensions.
		panic(err)
	}
	return r
}

func sameKey(a, b rtreego.Spatial) bool {
	return a.(*item).elem.Key() == b.(*item).elem.Key()
}

// Tree is an R-tree of elements. It is not safe for concurrent mutation.
type Tree struct {
	rt          *rtreego.Rtree
	minChildren int
	maxChildren int
}

// New creates an empty tree with the given node fan-out. Non-positive
// values select the defaults.
func New(minChildren, maxChildren int) *Tree {
	if minChildren <= 0 {
		minChildren = DefaultMinChildren
	}
	if maxChildren <= 0 {
		maxChildren = DefaultMaxChildren
	}
	if minChildren > maxChildren/2 {
		minChildren = maxChildren / 2
	}
	if minChildren < 1 {
		minChildren = 1
	}

	return &Tree{
		rt:          rtreego.NewTree(2, minChildren, maxChildren),
		minChildren: minChildren,
		maxChildren: maxChildren,
	}
}

// Insert adds elem.
func (t *Tree) Insert(elem model.Element) {
	t.rt.Insert(newItem(elem))
}

// Remove deletes the entry with the same key as elem. The entry is located
// through elem's envelope, so elem must carry the geometry it was inserted
// with. It returns false if no such entry exists.
func (t *Tree) Remove(elem model.Element) bool {
	return t.rt.DeleteWithComparator(newItem(elem), sameKey)
}

// Load replaces the whole content of the tree by bulk loading elems.
func (t *Tree) Load(elems []model.Element) {
	objs := make([]rtreego.Spatial, len(elems))
	for i, elem := range elems {
		objs[i] = newItem(elem)
	}
	t.rt = rtreego.NewTree(2, t.minChildren, t.maxChildren, objs...)
}

// Search yields every element whose envelope intersects env. Order is
// unspecified. Stopping the iteration stops the tree traversal.
func (t *Tree) Search(env geom.Envelope) iter.Seq[model.Element] {
	return func(yield func(model.Element) bool) {
		done := false
		t.rt.SearchIntersect(Rect(env), func(_ []rtreego.Spatial, obj rtreego.Spatial) (bool, bool) {
			if done {
				return true, true
			}
			elem := obj.(*item).elem
			if !elem.Envelope().Intersects(env) {
				return true, false
			}
			if !yield(elem) {
				done = true
				return true, true
			}
			// Results are streamed, never collected.
			return true, false
		})
	}
}

// Nearest returns the element of the given kind closest to p.
func (t *Tree) Nearest(p geom.Point, kind model.Kind) (model.Element, bool) {
	onlyKind := func(_ []rtreego.Spatial, obj rtreego.Spatial) (bool, bool) {
		return obj.(*item).elem.Kind() != kind, false
	}

	for _, obj := range t.rt.NearestNeighbors(1, rtreego.Point{p.X, p.Y}, onlyKind) {
		if it, ok := obj.(*item); ok && it != nil {
			return it.elem, true
		}
	}
	return model.Element{}, false
}

// Len returns the number of entries.
func (t *Tree) Len() int {
	return t.rt.Size()
}
