package model

import (
	"fmt"

	"github.com/hupe1980/graphgeo/geom"
)

// NodeID identifies a node of the host graph.
type NodeID uint32

// EdgeID identifies an edge of the host graph.
type EdgeID uint32

// Kind is the variant tag of an Element.
type Kind uint8

const (
	// KindNode tags a node geometry.
	KindNode Kind = iota + 1
	// KindEdge tags an edge geometry.
	KindEdge
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	default:
		return "unknown"
	}
}

// Key identifies an element independent of its geometry.
type Key struct {
	Kind Kind
	ID   uint32
}

// NodeKey returns the key of node id.
func NodeKey(id NodeID) Key { return Key{Kind: KindNode, ID: uint32(id)} }

// EdgeKey returns the key of edge id.
func EdgeKey(id EdgeID) Key { return Key{Kind: KindEdge, ID: uint32(id)} }

// String returns a string representation of the Key.
func (k Key) String() string {
	return fmt.Sprintf("%s(%d)", k.Kind, k.ID)
}

// NodeEntry is an indexed node together with its position.
type NodeEntry struct {
	ID    NodeID
	Point geom.Point
}

// EdgeEntry is an indexed edge together with its segment.
type EdgeEntry struct {
	ID      EdgeID
	Segment geom.Segment
}
