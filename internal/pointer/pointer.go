// Package pointer provides small helpers for working with optional values
// expressed as pointers.
package pointer

// To returns a pointer to v.
func To[T any](v T) *T {
	return &v
}

// Deref returns the value p points to, or the zero value when p is nil.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}

	return *p
}

// DerefOr returns the value p points to, or def when p is nil.
func DerefOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}

	return *p
}

// Equal reports whether two optional values are equal. Two nil pointers are
// equal; a nil pointer never equals a present value.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
