package idmap

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/hupe1980/graphgeo/model"
)

// Map associates identifiers of one kind with their indexed element.
type Map[K ~uint32] struct {
	kind  model.Kind
	byID  map[K]model.Element
	byKey map[model.Key]K
}

// New creates an empty map for elements of the given kind.
func New[K ~uint32](kind model.Kind) *Map[K] {
	return &Map[K]{
		kind:  kind,
		byID:  make(map[K]model.Element),
		byKey: make(map[model.Key]K),
	}
}

// Upsert associates elem with id and returns the element previously
// associated with id, if any.
//
// elem must be of the map's kind and carry id as its identifier. Anything
// else is a programming error and panics.
func (m *Map[K]) Upsert(id K, elem model.Element) (model.Element, bool) {
	if elem.Kind() != m.kind || elem.Key().ID != uint32(id) {
		panic(fmt.Sprintf("idmap: element %s cannot be stored under %s id %d", elem, m.kind, id))
	}

	prev, ok := m.byID[id]
	if ok {
		delete(m.byKey, prev.Key())
	}

	m.byID[id] = elem
	m.byKey[elem.Key()] = id

	return prev, ok
}

// Remove deletes id and returns the element it was associated with.
func (m *Map[K]) Remove(id K) (model.Element, bool) {
	prev, ok := m.byID[id]
	if !ok {
		return model.Element{}, false
	}

	delete(m.byID, id)
	delete(m.byKey, prev.Key())

	return prev, true
}

// Get returns the element associated with id.
func (m *Map[K]) Get(id K) (model.Element, bool) {
	elem, ok := m.byID[id]
	return elem, ok
}

// Lookup returns the identifier an element key is stored under.
func (m *Map[K]) Lookup(key model.Key) (K, bool) {
	id, ok := m.byKey[key]
	return id, ok
}

// Len returns the number of associations.
func (m *Map[K]) Len() int {
	return len(m.byID)
}

// All returns an iterator over all associations in unspecified order.
func (m *Map[K]) All() iter.Seq2[K, model.Element] {
	return maps.All(m.byID)
}

// IDs returns all identifiers in ascending order.
func (m *Map[K]) IDs() []K {
	return slices.Sorted(maps.Keys(m.byID))
}

// Clear removes every association.
func (m *Map[K]) Clear() {
	clear(m.byID)
	clear(m.byKey)
}

// Check verifies that both directions agree.
func (m *Map[K]) Check() error {
	if len(m.byID) != len(m.byKey) {
		return fmt.Errorf("idmap: %s map has %d ids but %d keys", m.kind, len(m.byID), len(m.byKey))
	}
	for id, elem := range m.byID {
		back, ok := m.byKey[elem.Key()]
		if !ok || back != id {
			return fmt.Errorf("idmap: %s id %d maps to %s which maps back to %d", m.kind, id, elem.Key(), back)
		}
	}
	return nil
}
