// Package idset provides compact sets of node and edge identifiers.
package idset

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Set is a set of 32-bit identifiers backed by a Roaring bitmap.
// It is not safe for concurrent mutation.
type Set[T ~uint32] struct {
	rb *roaring.Bitmap
}

// New creates a new empty set.
func New[T ~uint32]() *Set[T] {
	return &Set[T]{rb: roaring.New()}
}

// Of creates a set holding ids.
func Of[T ~uint32](ids ...T) *Set[T] {
	s := New[T]()
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add adds id to the set.
func (s *Set[T]) Add(id T) {
	s.rb.Add(uint32(id))
}

// Remove removes id from the set.
func (s *Set[T]) Remove(id T) {
	s.rb.Remove(uint32(id))
}

// Contains checks if id is in the set.
func (s *Set[T]) Contains(id T) bool {
	return s.rb.Contains(uint32(id))
}

// IsEmpty returns true if the set is empty.
func (s *Set[T]) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Len returns the number of ids in the set.
func (s *Set[T]) Len() int {
	return int(s.rb.GetCardinality())
}

// Clone returns a deep copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{rb: s.rb.Clone()}
}

// Equal reports whether s and o hold the same ids.
func (s *Set[T]) Equal(o *Set[T]) bool {
	return s.rb.Equals(o.rb)
}

// Or adds every id of o to s.
func (s *Set[T]) Or(o *Set[T]) {
	s.rb.Or(o.rb)
}

// AndNot removes every id of o from s.
func (s *Set[T]) AndNot(o *Set[T]) {
	s.rb.AndNot(o.rb)
}

// All returns an iterator over the ids in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(T(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the ids in ascending order.
func (s *Set[T]) ToSlice() []T {
	out := make([]T, 0, s.Len())
	for id := range s.All() {
		out = append(out, id)
	}
	return out
}

// Bitmap returns the underlying bitmap. Mutating it mutates the set.
func (s *Set[T]) Bitmap() *roaring.Bitmap {
	return s.rb
}
