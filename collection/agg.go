package collection

import (
	"golang.org/x/exp/constraints"
)

// Number constrains the types Sum accepts.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of all values of s; zero for an empty slice.
func Sum[T Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}

	return total
}

// Min returns the smallest value of s, or false for an empty slice.
func Min[T constraints.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}

	m := s[0]
	for _, v := range s[1:] {
		if v < m {
			m = v
		}
	}

	return m, true
}

// Max returns the largest value of s, or false for an empty slice.
func Max[T constraints.Ordered](s []T) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}

	m := s[0]
	for _, v := range s[1:] {
		if v > m {
			m = v
		}
	}

	return m, true
}

// MinBy returns the value of s with the smallest key, or false for an empty
// slice. Ties keep the earliest value.
func MinBy[T any, K constraints.Ordered](s []T, key func(T) K) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}

	best, bestKey := s[0], key(s[0])
	for _, v := range s[1:] {
		if k := key(v); k < bestKey {
			best, bestKey = v, k
		}
	}

	return best, true
}

// MaxBy returns the value of s with the largest key, or false for an empty
// slice. Ties keep the earliest value.
func MaxBy[T any, K constraints.Ordered](s []T, key func(T) K) (T, bool) {
	if len(s) == 0 {
		var zero T
		return zero, false
	}

	best, bestKey := s[0], key(s[0])
	for _, v := range s[1:] {
		if k := key(v); k > bestKey {
			best, bestKey = v, k
		}
	}

	return best, true
}
