// Package graph defines the host graph the geometry index is synchronized
// with, and provides Memory, an in-memory implementation.
//
// The geometry index never reads topology itself. Only the synchronization
// layer in package graphgeo talks to a Graph.
package graph

import (
	"errors"

	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/model"
)

var (
	// ErrUnknownNode is returned when an operation references a node that does not exist.
	ErrUnknownNode = errors.New("unknown node")

	// ErrDuplicateNode is returned when a node id is already in use.
	ErrDuplicateNode = errors.New("duplicate node")

	// ErrDuplicateEdge is returned when an edge id is already in use.
	ErrDuplicateEdge = errors.New("duplicate edge")
)

// Graph is the read side of the host graph.
type Graph interface {
	// NodeIDs returns all node ids.
	NodeIDs() []model.NodeID

	// EdgeIDs returns all edge ids.
	EdgeIDs() []model.EdgeID

	// Endpoints returns the two endpoints of an edge.
	Endpoints(id model.EdgeID) (model.NodeID, model.NodeID, bool)

	// IncidentEdges returns every edge having the node as an endpoint.
	IncidentEdges(id model.NodeID) []model.EdgeID

	// Position returns the node's position. ok is false for unknown nodes
	// and for nodes that were never positioned.
	Position(id model.NodeID) (geom.Point, bool)
}

// Mutable is a Graph whose topology and positions can be changed.
type Mutable interface {
	Graph

	// AddNode adds an unpositioned node.
	AddNode(id model.NodeID) error

	// RemoveNode removes a node together with its incident edges.
	RemoveNode(id model.NodeID) bool

	// AddEdge connects a and b.
	AddEdge(id model.EdgeID, a, b model.NodeID) error

	// RemoveEdge removes an edge.
	RemoveEdge(id model.EdgeID) bool

	// SetPosition sets the position of an existing node.
	SetPosition(id model.NodeID, p geom.Point) bool

	// ClearPosition forgets the position of an existing node.
	ClearPosition(id model.NodeID) bool
}
