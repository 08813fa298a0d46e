package model

import (
	"fmt"

	"github.com/hupe1980/graphgeo/geom"
)

// Element is the geometry of one node or one edge.
//
// The zero Element has no kind and is never stored in an index.
type Element struct {
	kind    Kind
	id      uint32
	point   geom.Point
	segment geom.Segment
}

// NewNode returns the element for node id at p.
func NewNode(id NodeID, p geom.Point) Element {
	return Element{kind: KindNode, id: uint32(id), point: p}
}

// NewEdge returns the element for edge id from start to end.
func NewEdge(id EdgeID, start, end geom.Point) Element {
	return NewEdgeSegment(id, geom.Seg(start, end))
}

// NewEdgeSegment returns the element for edge id with segment s.
func NewEdgeSegment(id EdgeID, s geom.Segment) Element {
	return Element{kind: KindEdge, id: uint32(id), segment: s}
}

// Kind returns the variant tag.
func (e Element) Kind() Kind { return e.kind }

// Key returns the identity of e.
func (e Element) Key() Key { return Key{Kind: e.kind, ID: e.id} }

// IsZero reports whether e is the zero Element.
func (e Element) IsZero() bool { return e.kind == 0 }

// Node returns the node variant. ok is false for edges.
func (e Element) Node() (NodeEntry, bool) {
	if e.kind != KindNode {
		return NodeEntry{}, false
	}
	return NodeEntry{ID: NodeID(e.id), Point: e.point}, true
}

// Edge returns the edge variant. ok is false for nodes.
func (e Element) Edge() (EdgeEntry, bool) {
	if e.kind != KindEdge {
		return EdgeEntry{}, false
	}
	return EdgeEntry{ID: EdgeID(e.id), Segment: e.segment}, true
}

// Envelope returns the bounding rectangle of e: a point rectangle for nodes
// and the segment's bounding box for edges.
func (e Element) Envelope() geom.Envelope {
	switch e.kind {
	case KindNode:
		return geom.PointEnvelope(e.point)
	case KindEdge:
		return e.segment.Envelope()
	default:
		return geom.Envelope{}
	}
}

// SameGeometry reports whether e and o have the same key and bit-identical
// geometry.
func (e Element) SameGeometry(o Element) bool {
	if e.Key() != o.Key() {
		return false
	}
	switch e.kind {
	case KindNode:
		return e.point == o.point
	case KindEdge:
		return e.segment == o.segment
	default:
		return true
	}
}

// String implements fmt.Stringer.
func (e Element) String() string {
	switch e.kind {
	case KindNode:
		return fmt.Sprintf("node(%d)@(%g,%g)", e.id, e.point.X, e.point.Y)
	case KindEdge:
		return fmt.Sprintf("edge(%d)@%s", e.id, e.segment)
	default:
		return "element(zero)"
	}
}
