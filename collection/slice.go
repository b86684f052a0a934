package collection

// Map returns a new slice holding fn applied to every value of s in order.
func Map[T, U any](s []T, fn func(T) U) []U {
	out := make([]U, 0, len(s))
	for _, v := range s {
		out = append(out, fn(v))
	}

	return out
}

// FlatMap returns a new slice holding the concatenation of fn applied to
// every value of s in order.
func FlatMap[T, U any](s []T, fn func(T) []U) []U {
	out := make([]U, 0, len(s))
	for _, v := range s {
		out = append(out, fn(v)...)
	}

	return out
}

// Uniq returns the distinct values of s, keeping the first occurrence of
// each and preserving order.
func Uniq[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Partition splits s into the values matching p and the values that do not,
// preserving order within both halves.
func Partition[T any](s []T, p Predicate[T]) (match, rest []T) {
	match = make([]T, 0, len(s))
	rest = make([]T, 0, len(s))
	for _, v := range s {
		if p(v) {
			match = append(match, v)
		} else {
			rest = append(rest, v)
		}
	}

	return match, rest
}

// GroupBy collects the values of s into buckets keyed by fn, preserving
// order within each bucket.
func GroupBy[T any, K comparable](s []T, fn func(T) K) map[K][]T {
	out := make(map[K][]T)
	for _, v := range s {
		k := fn(v)
		out[k] = append(out[k], v)
	}

	return out
}

// Associate builds a map from the key/value pairs produced by fn. Later
// pairs overwrite earlier ones on key collision.
func Associate[T any, K comparable, V any](s []T, fn func(T) (K, V)) map[K]V {
	out := make(map[K]V, len(s))
	for _, v := range s {
		k, val := fn(v)
		out[k] = val
	}

	return out
}

// Chunk splits s into consecutive slices of at most size values. It panics
// when size is less than 1.
func Chunk[T any](s []T, size int) [][]T {
	if size < 1 {
		panic("collection: chunk size must be at least 1")
	}

	out := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := start + size
		if end > len(s) {
			end = len(s)
		}
		out = append(out, s[start:end:end])
	}

	return out
}

// Reverse returns a reversed copy of s.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for n, v := range s {
		out[len(s)-1-n] = v
	}

	return out
}
