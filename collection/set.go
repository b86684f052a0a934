package collection

import (
	"encoding/json"
	"fmt"
	"maps"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Set is an unordered collection of distinct ordered values. The ordering
// constraint keeps List, String and the JSON form deterministic.
type Set[T constraints.Ordered] struct {
	elements map[T]struct{}
}

// NewSet initializes a Set with any number of values.
func NewSet[T constraints.Ordered](values ...T) Set[T] {
	set := make(map[T]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return Set[T]{elements: set}
}

// Add inserts one or more values into the set.
func (s *Set[T]) Add(values ...T) {
	if s.elements == nil {
		s.elements = make(map[T]struct{}, len(values))
	}
	for _, v := range values {
		s.elements[v] = struct{}{}
	}
}

// Remove deletes a value from the set, if present.
func (s *Set[T]) Remove(v T) {
	delete(s.elements, v)
}

// Contains reports whether the set holds v.
func (s Set[T]) Contains(v T) bool {
	_, ok := s.elements[v]

	return ok
}

// Len returns the number of values in the set.
func (s Set[T]) Len() int {
	return len(s.elements)
}

// IsEmpty reports whether the set holds no values.
func (s Set[T]) IsEmpty() bool {
	return len(s.elements) == 0
}

// List returns the values as a sorted slice.
func (s Set[T]) List() []T {
	if len(s.elements) == 0 {
		return []T{}
	}

	values := make([]T, 0, len(s.elements))
	for v := range s.elements {
		values = append(values, v)
	}
	slices.Sort(values)

	return values
}

// Union returns a new set holding every value present in either set.
func (s Set[T]) Union(other Set[T]) Set[T] {
	out := NewSet[T]()
	for v := range s.elements {
		out.Add(v)
	}
	for v := range other.elements {
		out.Add(v)
	}

	return out
}

// Intersect returns a new set holding the values present in both sets.
func (s Set[T]) Intersect(other Set[T]) Set[T] {
	out := NewSet[T]()
	for v := range s.elements {
		if other.Contains(v) {
			out.Add(v)
		}
	}

	return out
}

// Difference returns a new set holding the values of s absent from other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	out := NewSet[T]()
	for v := range s.elements {
		if !other.Contains(v) {
			out.Add(v)
		}
	}

	return out
}

// Equal reports whether both sets hold the same values.
func (s Set[T]) Equal(other Set[T]) bool {
	return maps.Equal(s.elements, other.elements)
}

// Clone returns a copy of the set.
func (s Set[T]) Clone() Set[T] {
	return Set[T]{elements: maps.Clone(s.elements)}
}

// String renders the sorted values space-separated.
//
// Implements the fmt.Stringer interface.
func (s Set[T]) String() string {
	parts := Map(s.List(), func(v T) string { return fmt.Sprint(v) })

	return strings.Join(parts, " ")
}

// MarshalJSON encodes the set as a sorted JSON array.
//
// Implements the json.Marshaler interface.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.List())
}

// UnmarshalJSON decodes a JSON array into the set.
//
// Implements the json.Unmarshaler interface.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}

	*s = NewSet(values...)

	return nil
}
