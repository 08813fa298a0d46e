package index

import (
	"fmt"
	"sync"

	"github.com/hupe1980/graphgeo/geom"
	"github.com/hupe1980/graphgeo/idset"
	"github.com/hupe1980/graphgeo/internal/idmap"
	"github.com/hupe1980/graphgeo/internal/rtree"
	"github.com/hupe1980/graphgeo/model"
)

// Options configures the underlying R-tree.
type Options struct {
	// MinChildren is the minimum fan-out of a tree node.
	MinChildren int
	// MaxChildren is the maximum fan-out of a tree node.
	MaxChildren int
}

// DefaultOptions contains the default configuration.
var DefaultOptions = Options{
	MinChildren: rtree.DefaultMinChildren,
	MaxChildren: rtree.DefaultMaxChildren,
}

// Index is the composite geometry index. The zero value is not usable; use New.
type Index struct {
	mu    sync.RWMutex
	tree  *rtree.Tree
	nodes *idmap.Map[model.NodeID]
	edges *idmap.Map[model.EdgeID]
	opts  Options
}

// New creates an empty index.
func New(optFns ...func(o *Options)) *Index {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Index{
		tree:  rtree.New(opts.MinChildren, opts.MaxChildren),
		nodes: idmap.New[model.NodeID](model.KindNode),
		edges: idmap.New[model.EdgeID](model.KindEdge),
		opts:  opts,
	}
}

// InsertNode indexes node id at p. If the node was already indexed its stale
// entry is evicted first and returned.
func (idx *Index) InsertNode(id model.NodeID, p geom.Point) (model.Element, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	return upsertInto(idx.tree, idx.nodes, id, model.NewNode(id, p))
}

// InsertEdge indexes edge id with segment s. If the edge was already indexed
// its stale entry is evicted first and returned.
func (idx *Index) InsertEdge(id model.EdgeID, s geom.Segment) (model.Element, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	return upsertInto(idx.tree, idx.edges, id, model.NewEdgeSegment(id, s))
}

// RemoveNode drops node id. Incident edges are left alone.
func (idx *Index) RemoveNode(id model.NodeID) (model.Element, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	return removeFrom(idx.tree, idx.nodes, id)
}

// RemoveEdge drops edge id.
func (idx *Index) RemoveEdge(id model.EdgeID) (model.Element, bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	return removeFrom(idx.tree, idx.edges, id)
}

// upsertInto replaces the entry for id in both structures. A stale element
// that the tree cannot find means the two structures already diverged.
func upsertInto[K ~uint32](tree *rtree.Tree, m *idmap.Map[K], id K, fresh model.Element) (model.Element, bool) {
	stale, ok := m.Upsert(id, fresh)
	if ok && !tree.Remove(stale) {
		panic(&InvariantViolationError{Key: stale.Key(), Reason: "mapped element missing from tree"})
	}
	tree.Insert(fresh)
	return stale, ok
}

func removeFrom[K ~uint32](tree *rtree.Tree, m *idmap.Map[K], id K) (model.Element, bool) {
	stale, ok := m.Remove(id)
	if ok && !tree.Remove(stale) {
		panic(&InvariantViolationError{Key: stale.Key(), Reason: "mapped element missing from tree"})
	}
	return stale, ok
}

// Node returns the indexed position of node id.
func (idx *Index) Node(id model.NodeID) (geom.Point, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	elem, ok := idx.nodes.Get(id)
	if !ok {
		return geom.Point{}, false
	}
	n, _ := elem.Node()
	return n.Point, true
}

// Edge returns the indexed segment of edge id.
func (idx *Index) Edge(id model.EdgeID) (geom.Segment, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	elem, ok := idx.edges.Get(id)
	if !ok {
		return geom.Segment{}, false
	}
	e, _ := elem.Edge()
	return e.Segment, true
}

// Search returns every element whose envelope intersects env.
func (idx *Index) Search(env geom.Envelope) []model.Element {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var out []model.Element
	for elem := range idx.tree.Search(env) {
		out = append(out, elem)
	}
	return out
}

// NodesInEnvelope returns the nodes whose position lies in env.
func (idx *Index) NodesInEnvelope(env geom.Envelope) []model.NodeEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var out []model.NodeEntry
	for elem := range idx.tree.Search(env) {
		switch elem.Kind() {
		case model.KindNode:
			n, _ := elem.Node()
			out = append(out, n)
		case model.KindEdge:
		}
	}
	return out
}

// EdgesInEnvelope returns the edges whose bounding box intersects env.
func (idx *Index) EdgesInEnvelope(env geom.Envelope) []model.EdgeEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	var out []model.EdgeEntry
	for elem := range idx.tree.Search(env) {
		switch elem.Kind() {
		case model.KindEdge:
			e, _ := elem.Edge()
			out = append(out, e)
		case model.KindNode:
		}
	}
	return out
}

// NearestNode returns the indexed node closest to p.
func (idx *Index) NearestNode(p geom.Point) (model.NodeEntry, bool) {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	elem, ok := idx.tree.Nearest(p, model.KindNode)
	if !ok {
		return model.NodeEntry{}, false
	}
	return elem.Node()
}

// Nodes returns every indexed node ordered by id.
func (idx *Index) Nodes() []model.NodeEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]model.NodeEntry, 0, idx.nodes.Len())
	for _, id := range idx.nodes.IDs() {
		elem, _ := idx.nodes.Get(id)
		n, _ := elem.Node()
		out = append(out, n)
	}
	return out
}

// Edges returns every indexed edge ordered by id.
func (idx *Index) Edges() []model.EdgeEntry {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	out := make([]model.EdgeEntry, 0, idx.edges.Len())
	for _, id := range idx.edges.IDs() {
		elem, _ := idx.edges.Get(id)
		e, _ := elem.Edge()
		out = append(out, e)
	}
	return out
}

// NodeIDs returns the set of indexed node ids.
func (idx *Index) NodeIDs() *idset.Set[model.NodeID] {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idset.Of(idx.nodes.IDs()...)
}

// EdgeIDs returns the set of indexed edge ids.
func (idx *Index) EdgeIDs() *idset.Set[model.EdgeID] {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return idset.Of(idx.edges.IDs()...)
}

// Stats is a point-in-time summary of the index.
type Stats struct {
	Nodes    int
	Edges    int
	TreeSize int
}

// Stats returns the current entry counts.
func (idx *Index) Stats() Stats {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	return Stats{
		Nodes:    idx.nodes.Len(),
		Edges:    idx.edges.Len(),
		TreeSize: idx.tree.Len(),
	}
}

// Load replaces the whole content of the index with nodes and edges, bulk
// loading the tree. Later duplicates of an id win.
func (idx *Index) Load(nodes []model.NodeEntry, edges []model.EdgeEntry) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	idx.nodes.Clear()
	idx.edges.Clear()

	for _, n := range nodes {
		idx.nodes.Upsert(n.ID, model.NewNode(n.ID, n.Point))
	}
	for _, e := range edges {
		idx.edges.Upsert(e.ID, model.NewEdgeSegment(e.ID, e.Segment))
	}

	elems := make([]model.Element, 0, idx.nodes.Len()+idx.edges.Len())
	for _, elem := range idx.nodes.All() {
		elems = append(elems, elem)
	}
	for _, elem := range idx.edges.All() {
		elems = append(elems, elem)
	}
	idx.tree.Load(elems)
}

// Validate checks both invariants and returns an error wrapping
// ErrInvariantViolation on the first violation found.
func (idx *Index) Validate() error {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	if err := idx.nodes.Check(); err != nil {
		return &InvariantViolationError{Reason: err.Error()}
	}
	if err := idx.edges.Check(); err != nil {
		return &InvariantViolationError{Reason: err.Error()}
	}

	if want, got := idx.nodes.Len()+idx.edges.Len(), idx.tree.Len(); want != got {
		return &InvariantViolationError{Reason: fmt.Sprintf("maps hold %d ids but tree holds %d entries", want, got)}
	}

	seen := make(map[model.Key]int, idx.tree.Len())
	for elem := range idx.tree.Search(geom.Everything()) {
		seen[elem.Key()]++
	}
	if len(seen) != idx.tree.Len() {
		return &InvariantViolationError{Reason: fmt.Sprintf("tree holds %d entries under %d keys", idx.tree.Len(), len(seen))}
	}

	check := func(elem model.Element) error {
		matches := 0
		for hit := range idx.tree.Search(elem.Envelope()) {
			if hit.Key() != elem.Key() {
				continue
			}
			if !hit.SameGeometry(elem) {
				return &InvariantViolationError{Key: elem.Key(), Reason: fmt.Sprintf("tree holds %s, map holds %s", hit, elem)}
			}
			matches++
		}
		if matches != 1 {
			return &InvariantViolationError{Key: elem.Key(), Reason: fmt.Sprintf("found %d tree entries", matches)}
		}
		return nil
	}

	for _, elem := range idx.nodes.All() {
		if err := check(elem); err != nil {
			return err
		}
	}
	for _, elem := range idx.edges.All() {
		if err := check(elem); err != nil {
			return err
		}
	}

	return nil
}
