package collection

// Predicate reports whether a value matches a condition. Predicates are
// composable with And, Or and Not, so callers can assemble complex filters
// from small reusable pieces:
//
//	active := collection.Filter(users, isEnabled.And(isVerified.Or(isAdmin)))
type Predicate[T any] func(T) bool

// And returns a predicate matching values that satisfy both p and q.
func (p Predicate[T]) And(q Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) && q(v)
	}
}

// Or returns a predicate matching values that satisfy p or q.
func (p Predicate[T]) Or(q Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return p(v) || q(v)
	}
}

// Not returns the negation of p.
func (p Predicate[T]) Not() Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// Filter returns the values of s matching p, preserving order. The input is
// never modified.
func Filter[T any](s []T, p Predicate[T]) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if p(v) {
			out = append(out, v)
		}
	}

	return out
}

// Any reports whether at least one value of s matches p.
func Any[T any](s []T, p Predicate[T]) bool {
	for _, v := range s {
		if p(v) {
			return true
		}
	}

	return false
}

// All reports whether every value of s matches p. All of an empty slice is
// true.
func All[T any](s []T, p Predicate[T]) bool {
	for _, v := range s {
		if !p(v) {
			return false
		}
	}

	return true
}

// Count returns the number of values of s matching p.
func Count[T any](s []T, p Predicate[T]) int {
	n := 0
	for _, v := range s {
		if p(v) {
			n++
		}
	}

	return n
}

// Find returns the first value of s matching p, or false when none does.
func Find[T any](s []T, p Predicate[T]) (T, bool) {
	for _, v := range s {
		if p(v) {
			return v, true
		}
	}

	var zero T
	return zero, false
}
