package interval

import (
	"slices"
)

// Normalize merges a collection of intervals into the minimal sorted set of
// disjoint intervals covering the same points. Overlapping and abutting
// inputs are merged; empty inputs are dropped. The input slice is not
// modified.
func Normalize[T Point[T]](ivs []Interval[T]) []Interval[T] {
	in := withoutEmpty(ivs)
	if len(in) == 0 {
		return []Interval[T]{}
	}

	slices.SortFunc(in, compare)

	out := make([]Interval[T], 0, len(in))
	cur := in[0]
	for _, next := range in[1:] {
		// next starts at or before the current end: extend instead of
		// opening a new interval.
		if cmpStartEnd(next.start, cur.end) <= 0 {
			if cmpEnd(next.end, cur.end) > 0 {
				cur.end = next.end
			}
			continue
		}

		out = append(out, cur)
		cur = next
	}

	return append(out, cur)
}

// Split partitions a collection of intervals into maximal disjoint
// sub-intervals such that within each resulting interval, membership is
// uniform across all inputs. Every boundary of every input becomes a cut
// point; pieces covered by no input are omitted. The result is sorted and
// covers exactly the union of the inputs.
func Split[T Point[T]](ivs []Interval[T]) []Interval[T] {
	in := withoutEmpty(ivs)
	if len(in) == 0 {
		return []Interval[T]{}
	}

	edges := cutPoints(in)

	out := make([]Interval[T], 0, len(edges)-1)
	for j := 0; j+1 < len(edges); j++ {
		piece := Interval[T]{start: clone(edges[j]), end: clone(edges[j+1])}
		for _, iv := range in {
			if iv.Encloses(piece) {
				out = append(out, piece)
				break
			}
		}
	}

	return out
}

// SubtractAll removes every point covered by subtrahends from the given
// intervals. Both inputs are normalized first; the result is sorted and
// disjoint.
func SubtractAll[T Point[T]](ivs, subtrahends []Interval[T]) []Interval[T] {
	out := Normalize(ivs)
	for _, s := range Normalize(subtrahends) {
		next := make([]Interval[T], 0, len(out)+1)
		for _, iv := range out {
			next = append(next, iv.Subtract(s)...)
		}
		out = next
	}

	return out
}

// Cover returns the smallest single interval covering every input, or false
// when the input holds no non-empty interval.
func Cover[T Point[T]](ivs []Interval[T]) (Interval[T], bool) {
	in := withoutEmpty(ivs)
	if len(in) == 0 {
		return Interval[T]{}, false
	}

	cover := in[0]
	for _, iv := range in[1:] {
		cover = cover.Span(iv)
	}

	return cover, true
}

// compare orders intervals by start boundary, then end boundary, with
// absent boundaries sorting as infinities.
func compare[T Point[T]](a, b Interval[T]) int {
	if c := cmpStart(a.start, b.start); c != 0 {
		return c
	}

	return cmpEnd(a.end, b.end)
}

func withoutEmpty[T Point[T]](ivs []Interval[T]) []Interval[T] {
	out := make([]Interval[T], 0, len(ivs))
	for _, iv := range ivs {
		if !iv.IsEmpty() {
			out = append(out, iv)
		}
	}

	return out
}

// cutPoints returns the sorted distinct boundaries of the inputs as a sweep
// edge list. A leading or trailing nil edge stands in for an unbounded
// side.
func cutPoints[T Point[T]](in []Interval[T]) []*T {
	var openBelow, openAbove bool
	finite := make([]T, 0, 2*len(in))
	for _, iv := range in {
		if iv.start == nil {
			openBelow = true
		} else {
			finite = append(finite, *iv.start)
		}
		if iv.end == nil {
			openAbove = true
		} else {
			finite = append(finite, *iv.end)
		}
	}

	slices.SortFunc(finite, func(a, b T) int { return a.Compare(b) })
	finite = slices.CompactFunc(finite, func(a, b T) bool { return a.Compare(b) == 0 })

	edges := make([]*T, 0, len(finite)+2)
	if openBelow {
		edges = append(edges, nil)
	}
	for i := range finite {
		edges = append(edges, &finite[i])
	}
	if openAbove {
		edges = append(edges, nil)
	}

	return edges
}
