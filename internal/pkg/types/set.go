// Package types holds small generic containers shared across packages.
package types

import (
	"iter"
	"slices"
)

// OrderedSet is a set that remembers insertion order. Use NewOrderedSet to
// build one; the zero value is not usable.
//
// OrderedSet is not safe for concurrent use.
type OrderedSet[T comparable] struct {
	index map[T]int
	items []T
}

// NewOrderedSet returns a set holding values, in order, without duplicates.
func NewOrderedSet[T comparable](values ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{index: make(map[T]int, len(values))}
	for _, v := range values {
		s.Add(v)
	}

	return s
}

// Add appends value and reports whether it was absent.
func (s *OrderedSet[T]) Add(value T) bool {
	if _, ok := s.index[value]; ok {
		return false
	}

	s.index[value] = len(s.items)
	s.items = append(s.items, value)

	return true
}

// Delete removes value and reports whether it was present. The remaining
// values keep their relative order.
func (s *OrderedSet[T]) Delete(value T) bool {
	i, ok := s.index[value]
	if !ok {
		return false
	}

	delete(s.index, value)
	s.items = slices.Delete(s.items, i, i+1)
	for j := i; j < len(s.items); j++ {
		s.index[s.items[j]] = j
	}

	return true
}

// Has reports whether value is in the set.
func (s *OrderedSet[T]) Has(value T) bool {
	_, ok := s.index[value]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Values returns a copy of the elements in insertion order.
func (s *OrderedSet[T]) Values() []T {
	return slices.Clone(s.items)
}

// All iterates over the elements in insertion order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}
