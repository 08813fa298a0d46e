package graphgeo

import (
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/graph"
	"github.com/hupe1980/graphgeo/idset"
	"github.com/hupe1980/graphgeo/index"
	"github.com/hupe1980/graphgeo/intersect"
	"github.com/hupe1980/graphgeo/model"
)

// Layout keeps a geometry index synchronized with a host graph.
//
// All topology and position changes go through Layout, which forwards them
// to the host graph and then updates the index in the same critical section.
// Readers never observe a node at its new position while an incident edge
// still has its old segment.
//
// Layout is safe for concurrent use as long as the host graph is not
// mutated behind its back. After such a mutation call Rebuild.
type Layout struct {
	mu   sync.RWMutex
	g    graph.Mutable
	idx  *index.Index
	opts options
}

// Region is the result of a region query.
type Region struct {
	Nodes []model.NodeEntry
	Edges []model.EdgeEntry
}

// Len returns the number of elements in the region.
func (r Region) Len() int { return len(r.Nodes) + len(r.Edges) }

// Stats is a point-in-time summary of a Layout.
type Stats struct {
	// GraphNodes and GraphEdges count the host graph.
	GraphNodes int
	GraphEdges int

	// IndexedNodes and IndexedEdges count what the geometry index holds.
	// They are lower than the graph counts while positions are missing.
	IndexedNodes int
	IndexedEdges int

	// TreeSize is the number of R-tree entries.
	TreeSize int
}

// New creates a Layout over g and indexes everything g already contains.
func New(g graph.Mutable, optFns ...Option) *Layout {
	opts := applyOptions(optFns)

	l := &Layout{
		g: g,
		idx: index.New(func(o *index.Options) {
			o.MinChildren = opts.minChildren
			o.MaxChildren = opts.maxChildren
		}),
		opts: opts,
	}
	l.Rebuild()

	return l
}

// Graph returns the host graph. Mutating it directly desynchronizes the
// index until the next Rebuild.
func (l *Layout) Graph() graph.Graph {
	return l.g
}

// Rebuild discards the index and bulk loads it from the host graph.
func (l *Layout) Rebuild() {
	l.mu.Lock()
	defer l.mu.Unlock()

	var nodes []model.NodeEntry
	for _, id := range l.g.NodeIDs() {
		if p, ok := l.g.Position(id); ok {
			nodes = append(nodes, model.NodeEntry{ID: id, Point: p})
		}
	}

	edgeIDs := l.g.EdgeIDs()
	edges := make([]model.EdgeEntry, 0, len(edgeIDs))
	for _, id := range edgeIDs {
		if s, err := l.segment(id); err == nil {
			edges = append(edges, model.EdgeEntry{ID: id, Segment: s})
		}
	}

	l.idx.Load(nodes, edges)
	l.opts.logger.LogRebuild(len(nodes), len(edges), len(edgeIDs)-len(edges))
}

// AddNode adds an unpositioned node to the host graph. Nothing is indexed
// until SetNodePosition is called.
func (l *Layout) AddNode(id model.NodeID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	return translateError(l.g.AddNode(id))
}

// SetNodePosition moves node id to p and refreshes the segment of every
// incident edge whose other endpoint is positioned.
func (l *Layout) SetNodePosition(id model.NodeID, p geom.Point) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.g.SetPosition(id, p) {
		return fmt.Errorf("%w: node %d", ErrNotFound, id)
	}

	l.insertNode(id, p)
	refreshed, evicted := l.refreshIncident(id)
	l.opts.logger.LogMove(id, p, refreshed, evicted)

	return nil
}

// ClearNodePosition forgets the position of node id and evicts the node and
// its incident edges from the index. The node stays in the host graph.
func (l *Layout) ClearNodePosition(id model.NodeID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.g.ClearPosition(id) {
		return fmt.Errorf("%w: node %d", ErrNotFound, id)
	}

	evicted := 0
	for _, eid := range l.g.IncidentEdges(id) {
		if l.removeEdge(eid) {
			evicted++
		}
	}
	l.removeNode(id)
	l.opts.logger.LogUnpositioned(id, evicted)

	return nil
}

// AddEdge connects a and b in the host graph. The edge is indexed when both
// endpoints are positioned.
func (l *Layout) AddEdge(id model.EdgeID, a, b model.NodeID) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.g.AddEdge(id, a, b); err != nil {
		err = translateError(err)
		l.opts.logger.LogEdgeAdded(id, false, err)
		return err
	}

	indexed := l.syncEdge(id)
	l.opts.logger.LogEdgeAdded(id, indexed, nil)

	return nil
}

// RemoveEdge removes edge id from the host graph and the index. It reports
// whether the graph knew the edge.
func (l *Layout) RemoveEdge(id model.EdgeID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.removeEdge(id)
	found := l.g.RemoveEdge(id)
	l.opts.logger.LogEdgeRemoved(id, found)

	return found
}

// RemoveNode removes node id and its incident edges from the index and the
// host graph. It reports whether the graph knew the node.
func (l *Layout) RemoveNode(id model.NodeID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	incident := l.g.IncidentEdges(id)
	for _, eid := range incident {
		l.removeEdge(eid)
	}
	l.removeNode(id)

	found := l.g.RemoveNode(id)
	l.opts.logger.LogNodeRemoved(id, len(incident), found)

	return found
}

// QueryRegion returns the nodes located in env and the edges whose bounding
// box intersects env. Order is unspecified.
func (l *Layout) QueryRegion(env geom.Envelope) Region {
	l.mu.RLock()
	defer l.mu.RUnlock()

	start := time.Now()

	var r Region
	for _, elem := range l.idx.Search(env) {
		switch elem.Kind() {
		case model.KindNode:
			n, _ := elem.Node()
			r.Nodes = append(r.Nodes, n)
		case model.KindEdge:
			e, _ := elem.Edge()
			r.Edges = append(r.Edges, e)
		}
	}

	l.opts.metricsCollector.RecordQuery(r.Len(), time.Since(start))
	l.opts.logger.LogRegion(env, len(r.Nodes), len(r.Edges))

	return r
}

// InsideBox counts the nodes and edges in the square of side size centered
// on the origin.
func (l *Layout) InsideBox(size float64) (nodes, edges int) {
	r := l.QueryRegion(geom.CenteredSquare(size))
	return len(r.Nodes), len(r.Edges)
}

// IntersectionsForEdge returns how many indexed edges cross edge id.
// Edges that are not indexed have no intersections.
func (l *Layout) IntersectionsForEdge(id model.EdgeID) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	start := time.Now()
	count := intersect.CountForEdge(l.idx, id, l.intersectOptions)
	l.opts.metricsCollector.RecordIntersections("edge", count, time.Since(start))

	return count
}

// TotalIntersectingEdges returns the number of edges that cross at least one
// other edge, using the spatial index to find candidates.
func (l *Layout) TotalIntersectingEdges() int {
	return l.IntersectingEdges().Len()
}

// IntersectingEdges returns the set of edges that cross at least one other edge.
func (l *Layout) IntersectingEdges() *idset.Set[model.EdgeID] {
	l.mu.RLock()
	defer l.mu.RUnlock()

	start := time.Now()
	set := intersect.IntersectingEdges(l.idx, l.intersectOptions)
	l.opts.metricsCollector.RecordIntersections("indexed", set.Len(), time.Since(start))
	l.opts.logger.LogIntersections("indexed", set.Len())

	return set
}

// TotalPairwiseIntersections returns the number of crossing edge pairs found
// by comparing every pair directly. It is quadratic in the number of edges.
func (l *Layout) TotalPairwiseIntersections() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	start := time.Now()
	count := intersect.CountAllPairs(l.idx.Edges(), l.opts.gridPower)
	l.opts.metricsCollector.RecordIntersections("all_pairs", count, time.Since(start))
	l.opts.logger.LogIntersections("all_pairs", count)

	return count
}

// NodeIDs returns every node of the host graph, positioned or not.
func (l *Layout) NodeIDs() []model.NodeID {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.g.NodeIDs()
}

// NodePosition returns the indexed position of node id.
func (l *Layout) NodePosition(id model.NodeID) (geom.Point, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.idx.Node(id)
}

// NodePositions returns every positioned node ordered by id.
func (l *Layout) NodePositions() []model.NodeEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.idx.Nodes()
}

// EdgeSegment returns the segment of edge id. The error wraps ErrNotFound
// for unknown edges and ErrIncompleteGeometry when an endpoint is not
// positioned.
func (l *Layout) EdgeSegment(id model.EdgeID) (geom.Segment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if s, ok := l.idx.Edge(id); ok {
		return s, nil
	}
	return l.segment(id)
}

// EdgeSegments returns every indexed edge ordered by id.
func (l *Layout) EdgeSegments() []model.EdgeEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.idx.Edges()
}

// NearestNode returns the positioned node closest to p.
func (l *Layout) NearestNode(p geom.Point) (model.NodeEntry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.idx.NearestNode(p)
}

// Stats returns graph and index counts.
func (l *Layout) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()

	is := l.idx.Stats()
	return Stats{
		GraphNodes:   len(l.g.NodeIDs()),
		GraphEdges:   len(l.g.EdgeIDs()),
		IndexedNodes: is.Nodes,
		IndexedEdges: is.Edges,
		TreeSize:     is.TreeSize,
	}
}

// Validate checks the index invariants and that the index matches the host
// graph: every positioned node and every edge with two positioned endpoints
// is indexed with its current geometry, and nothing else is.
func (l *Layout) Validate() error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err := l.idx.Validate(); err != nil {
		return err
	}

	want := idset.New[model.NodeID]()
	for _, id := range l.g.NodeIDs() {
		p, ok := l.g.Position(id)
		if !ok {
			continue
		}
		want.Add(id)
		if got, ok := l.idx.Node(id); !ok || got != p {
			return &index.InvariantViolationError{Key: model.NodeKey(id), Reason: "indexed position differs from graph"}
		}
	}
	if !want.Equal(l.idx.NodeIDs()) {
		return &index.InvariantViolationError{Reason: "indexed nodes differ from positioned graph nodes"}
	}

	wantEdges := idset.New[model.EdgeID]()
	for _, id := range l.g.EdgeIDs() {
		s, err := l.segment(id)
		if err != nil {
			continue
		}
		wantEdges.Add(id)
		if got, ok := l.idx.Edge(id); !ok || got != s {
			return &index.InvariantViolationError{Key: model.EdgeKey(id), Reason: "indexed segment differs from graph"}
		}
	}
	if !wantEdges.Equal(l.idx.EdgeIDs()) {
		return &index.InvariantViolationError{Reason: "indexed edges differ from graph edges with positioned endpoints"}
	}

	return nil
}

func (l *Layout) intersectOptions(o *intersect.Options) {
	o.GridPower = l.opts.gridPower
	o.Workers = l.opts.workers
}

// segment builds the current geometry of edge id from the host graph.
func (l *Layout) segment(id model.EdgeID) (geom.Segment, error) {
	a, b, ok := l.g.Endpoints(id)
	if !ok {
		return geom.Segment{}, fmt.Errorf("%w: edge %d", ErrNotFound, id)
	}
	pa, ok := l.g.Position(a)
	if !ok {
		return geom.Segment{}, &ErrUnpositioned{Node: a}
	}
	pb, ok := l.g.Position(b)
	if !ok {
		return geom.Segment{}, &ErrUnpositioned{Node: b}
	}
	return geom.Seg(pa, pb), nil
}

// syncEdge indexes edge id at its current geometry, or evicts it when the
// geometry is incomplete. It reports whether the edge is indexed afterwards.
func (l *Layout) syncEdge(id model.EdgeID) bool {
	s, err := l.segment(id)
	if err != nil {
		l.removeEdge(id)
		return false
	}

	start := time.Now()
	l.idx.InsertEdge(id, s)
	l.opts.metricsCollector.RecordInsert(model.KindEdge, time.Since(start))

	return true
}

func (l *Layout) refreshIncident(id model.NodeID) (refreshed, evicted int) {
	for _, eid := range l.g.IncidentEdges(id) {
		if l.syncEdge(eid) {
			refreshed++
		} else {
			evicted++
		}
	}
	return refreshed, evicted
}

func (l *Layout) insertNode(id model.NodeID, p geom.Point) {
	start := time.Now()
	l.idx.InsertNode(id, p)
	l.opts.metricsCollector.RecordInsert(model.KindNode, time.Since(start))
}

func (l *Layout) removeNode(id model.NodeID) bool {
	start := time.Now()
	_, found := l.idx.RemoveNode(id)
	l.opts.metricsCollector.RecordRemove(model.KindNode, found, time.Since(start))
	return found
}

func (l *Layout) removeEdge(id model.EdgeID) bool {
	start := time.Now()
	_, found := l.idx.RemoveEdge(id)
	l.opts.metricsCollector.RecordRemove(model.KindEdge, found, time.Since(start))
	return found
}
