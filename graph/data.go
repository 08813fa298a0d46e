package graph

import (
	"fmt"

	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/model"
)

// NodeData describes one node of a node/edge list. X and Y are optional;
// a node is positioned only when both are present.
type NodeData struct {
	ID string   `json:"id" yaml:"id"`
	X  *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y  *float64 `json:"y,omitempty" yaml:"y,omitempty"`
}

// Position returns the node's position if both coordinates are set.
func (n NodeData) Position() (geom.Point, bool) {
	if n.X == nil || n.Y == nil {
		return geom.Point{}, false
	}
	return geom.Pt(*n.X, *n.Y), true
}

// EdgeData describes one edge by the names of its endpoints.
type EdgeData struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Data is a node/edge list as read from a fixture file.
type Data struct {
	Nodes []NodeData `json:"nodes" yaml:"nodes"`
	Edges []EdgeData `json:"edges" yaml:"edges"`
}

// Names maps external node names to node ids and back.
type Names struct {
	byName map[string]model.NodeID
	byID   map[model.NodeID]string
}

// NewNames creates an empty name table.
func NewNames() *Names {
	return &Names{
		byName: make(map[string]model.NodeID),
		byID:   make(map[model.NodeID]string),
	}
}

// Bind associates name with id. It fails if either side is already bound.
func (n *Names) Bind(name string, id model.NodeID) error {
	if _, ok := n.byName[name]; ok {
		return fmt.Errorf("%w: name %q", ErrDuplicateNode, name)
	}
	if _, ok := n.byID[id]; ok {
		return fmt.Errorf("%w: id %d", ErrDuplicateNode, id)
	}
	n.byName[name] = id
	n.byID[id] = name
	return nil
}

// ID returns the id bound to name.
func (n *Names) ID(name string) (model.NodeID, bool) {
	id, ok := n.byName[name]
	return id, ok
}

// Name returns the name bound to id.
func (n *Names) Name(id model.NodeID) (string, bool) {
	name, ok := n.byID[id]
	return name, ok
}

// Len returns the number of bindings.
func (n *Names) Len() int { return len(n.byName) }

// FromData builds a Memory graph from a node/edge list. Nodes get ids in
// list order starting at zero, edges likewise.
func FromData(d Data) (*Memory, *Names, error) {
	g := NewMemory()
	names := NewNames()

	for _, nd := range d.Nodes {
		id := g.NextNodeID()
		if err := names.Bind(nd.ID, id); err != nil {
			return nil, nil, err
		}
		if err := g.AddNode(id); err != nil {
			return nil, nil, err
		}
		if p, ok := nd.Position(); ok {
			g.SetPosition(id, p)
		}
	}

	for i, ed := range d.Edges {
		a, ok := names.ID(ed.From)
		if !ok {
			return nil, nil, fmt.Errorf("edge %d: %w %q", i, ErrUnknownNode, ed.From)
		}
		b, ok := names.ID(ed.To)
		if !ok {
			return nil, nil, fmt.Errorf("edge %d: %w %q", i, ErrUnknownNode, ed.To)
		}
		if err := g.AddEdge(g.NextEdgeID(), a, b); err != nil {
			return nil, nil, err
		}
	}

	return g, names, nil
}

// ToData converts g back into a node/edge list, naming nodes through names.
// Nodes without a binding are named by their numeric id.
func ToData(g Graph, names *Names) Data {
	name := func(id model.NodeID) string {
		if names != nil {
			if s, ok := names.Name(id); ok {
				return s
			}
		}
		return fmt.Sprintf("%d", id)
	}

	var d Data
	for _, id := range g.NodeIDs() {
		nd := NodeData{ID: name(id)}
		if p, ok := g.Position(id); ok {
			x, y := p.X, p.Y
			nd.X, nd.Y = &x, &y
		}
		d.Nodes = append(d.Nodes, nd)
	}
	for _, id := range g.EdgeIDs() {
		a, b, _ := g.Endpoints(id)
		d.Edges = append(d.Edges, EdgeData{From: name(a), To: name(b)})
	}
	return d
}
