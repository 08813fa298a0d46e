package graph

import (
	"fmt"
	"maps"
	"slices"

	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/model"
)

type nodeRecord struct {
	pos      geom.Point
	hasPos   bool
	incident map[model.EdgeID]struct{}
}

type edgeRecord struct {
	a, b model.NodeID
}

// Memory is an in-memory Mutable graph. Ids are never reused by NextNodeID
// and NextEdgeID, even after removals.
//
// Memory is not safe for concurrent use.
type Memory struct {
	nodes    map[model.NodeID]*nodeRecord
	edges    map[model.EdgeID]edgeRecord
	nextNode model.NodeID
	nextEdge model.EdgeID
}

var _ Mutable = (*Memory)(nil)

// NewMemory creates an empty graph.
func NewMemory() *Memory {
	return &Memory{
		nodes: make(map[model.NodeID]*nodeRecord),
		edges: make(map[model.EdgeID]edgeRecord),
	}
}

// NextNodeID returns an id that has never been used for a node.
func (g *Memory) NextNodeID() model.NodeID { return g.nextNode }

// NextEdgeID returns an id that has never been used for an edge.
func (g *Memory) NextEdgeID() model.EdgeID { return g.nextEdge }

// NodeIDs implements Graph. Ids are returned in ascending order.
func (g *Memory) NodeIDs() []model.NodeID {
	return slices.Sorted(maps.Keys(g.nodes))
}

// EdgeIDs implements Graph. Ids are returned in ascending order.
func (g *Memory) EdgeIDs() []model.EdgeID {
	return slices.Sorted(maps.Keys(g.edges))
}

// Endpoints implements Graph.
func (g *Memory) Endpoints(id model.EdgeID) (model.NodeID, model.NodeID, bool) {
	e, ok := g.edges[id]
	return e.a, e.b, ok
}

// IncidentEdges implements Graph. Ids are returned in ascending order.
func (g *Memory) IncidentEdges(id model.NodeID) []model.EdgeID {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(n.incident))
}

// Position implements Graph.
func (g *Memory) Position(id model.NodeID) (geom.Point, bool) {
	n, ok := g.nodes[id]
	if !ok || !n.hasPos {
		return geom.Point{}, false
	}
	return n.pos, true
}

// AddNode implements Mutable.
func (g *Memory) AddNode(id model.NodeID) error {
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, id)
	}
	g.nodes[id] = &nodeRecord{incident: make(map[model.EdgeID]struct{})}
	if id >= g.nextNode {
		g.nextNode = id + 1
	}
	return nil
}

// RemoveNode implements Mutable.
func (g *Memory) RemoveNode(id model.NodeID) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	for eid := range n.incident {
		g.RemoveEdge(eid)
	}
	delete(g.nodes, id)
	return true
}

// AddEdge implements Mutable. Self-loops are allowed.
func (g *Memory) AddEdge(id model.EdgeID, a, b model.NodeID) error {
	if _, ok := g.edges[id]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateEdge, id)
	}
	na, ok := g.nodes[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, a)
	}
	nb, ok := g.nodes[b]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownNode, b)
	}

	g.edges[id] = edgeRecord{a: a, b: b}
	na.incident[id] = struct{}{}
	nb.incident[id] = struct{}{}
	if id >= g.nextEdge {
		g.nextEdge = id + 1
	}
	return nil
}

// RemoveEdge implements Mutable.
func (g *Memory) RemoveEdge(id model.EdgeID) bool {
	e, ok := g.edges[id]
	if !ok {
		return false
	}
	delete(g.nodes[e.a].incident, id)
	delete(g.nodes[e.b].incident, id)
	delete(g.edges, id)
	return true
}

// SetPosition implements Mutable.
func (g *Memory) SetPosition(id model.NodeID, p geom.Point) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	n.pos = p
	n.hasPos = true
	return true
}

// ClearPosition implements Mutable.
func (g *Memory) ClearPosition(id model.NodeID) bool {
	n, ok := g.nodes[id]
	if !ok {
		return false
	}
	n.pos = geom.Point{}
	n.hasPos = false
	return true
}
