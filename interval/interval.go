package interval

import (
	"errors"
	"fmt"

	"github.com/stackbound/commons/internal/pointer"
)

// ErrInvertedBounds is returned when an interval is constructed with a start
// boundary after its end boundary.
var ErrInvertedBounds = errors.New("interval start must not be after end")

// Point constrains the boundary types usable in an Interval. time.Time
// satisfies it natively; chrono.Date implements it for civil dates.
type Point[T any] interface {
	Compare(T) int
}

// Interval is an immutable half-open range [start, end) over a Point type.
// A nil boundary means the interval is unbounded in that direction, so the
// zero value is the interval covering every point.
type Interval[T Point[T]] struct {
	start *T
	end   *T
}

// New returns an interval with the given optional boundaries. It returns
// ErrInvertedBounds when both boundaries are present and start is after end.
// The boundary values are copied; callers keep ownership of the pointers.
func New[T Point[T]](start, end *T) (Interval[T], error) {
	if start != nil && end != nil && (*start).Compare(*end) > 0 {
		return Interval[T]{}, fmt.Errorf("%w: start %v, end %v", ErrInvertedBounds, *start, *end)
	}

	return Interval[T]{start: clone(start), end: clone(end)}, nil
}

// Between returns the interval [start, end). It panics when start is after
// end; use New for boundaries that come from untrusted input.
func Between[T Point[T]](start, end T) Interval[T] {
	iv, err := New(&start, &end)
	if err != nil {
		panic(err)
	}

	return iv
}

// From returns the interval [start, +inf).
func From[T Point[T]](start T) Interval[T] {
	return Interval[T]{start: pointer.To(start)}
}

// Until returns the interval (-inf, end).
func Until[T Point[T]](end T) Interval[T] {
	return Interval[T]{end: pointer.To(end)}
}

// Unbounded returns the interval covering every point.
func Unbounded[T Point[T]]() Interval[T] {
	return Interval[T]{}
}

// Start returns the start boundary, or false when the interval is unbounded
// below.
func (i Interval[T]) Start() (T, bool) {
	if i.start == nil {
		var zero T
		return zero, false
	}

	return *i.start, true
}

// End returns the end boundary, or false when the interval is unbounded
// above.
func (i Interval[T]) End() (T, bool) {
	if i.end == nil {
		var zero T
		return zero, false
	}

	return *i.end, true
}

// Bounded reports whether both boundaries are present.
func (i Interval[T]) Bounded() bool {
	return i.start != nil && i.end != nil
}

// IsEmpty reports whether the interval contains no points, which happens
// exactly when both boundaries are present and equal.
func (i Interval[T]) IsEmpty() bool {
	return i.start != nil && i.end != nil && (*i.start).Compare(*i.end) == 0
}

// Contains reports whether p lies inside the interval. The start boundary is
// inclusive, the end boundary exclusive; an absent boundary matches any
// point on that side.
func (i Interval[T]) Contains(p T) bool {
	if i.start != nil && (*i.start).Compare(p) > 0 {
		return false
	}
	if i.end != nil && p.Compare(*i.end) >= 0 {
		return false
	}

	return true
}

// Overlaps reports whether the two intervals share at least one point.
// Intervals that merely touch at a boundary do not overlap; see Abuts.
func (i Interval[T]) Overlaps(o Interval[T]) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return false
	}

	return cmpStartEnd(i.start, o.end) < 0 && cmpStartEnd(o.start, i.end) < 0
}

// Intersect returns the interval common to both inputs. It returns false
// when the intervals do not overlap.
func (i Interval[T]) Intersect(o Interval[T]) (Interval[T], bool) {
	if !i.Overlaps(o) {
		return Interval[T]{}, false
	}

	start := i.start
	if cmpStart(o.start, start) > 0 {
		start = o.start
	}
	end := i.end
	if cmpEnd(o.end, end) < 0 {
		end = o.end
	}

	return Interval[T]{start: clone(start), end: clone(end)}, true
}

// Encloses reports whether every point of o is also a point of the
// receiver. An empty o is enclosed by any interval whose boundaries admit
// it.
func (i Interval[T]) Encloses(o Interval[T]) bool {
	return cmpStart(i.start, o.start) <= 0 && cmpEnd(i.end, o.end) >= 0
}

// Abuts reports whether the two intervals touch at exactly one boundary
// without sharing any points.
func (i Interval[T]) Abuts(o Interval[T]) bool {
	if i.IsEmpty() || o.IsEmpty() {
		return false
	}
	if i.end != nil && o.start != nil && (*i.end).Compare(*o.start) == 0 {
		return true
	}
	if o.end != nil && i.start != nil && (*o.end).Compare(*i.start) == 0 {
		return true
	}

	return false
}

// Subtract returns the parts of the receiver not covered by o, in order.
// The result has zero, one or two non-empty intervals.
func (i Interval[T]) Subtract(o Interval[T]) []Interval[T] {
	if i.IsEmpty() {
		return []Interval[T]{}
	}
	if !i.Overlaps(o) {
		return []Interval[T]{i}
	}

	out := make([]Interval[T], 0, 2)
	if cmpStart(i.start, o.start) < 0 {
		out = append(out, Interval[T]{start: clone(i.start), end: clone(o.start)})
	}
	if cmpEnd(i.end, o.end) > 0 {
		out = append(out, Interval[T]{start: clone(o.end), end: clone(i.end)})
	}

	return out
}

// Span returns the smallest interval covering both inputs, including any gap
// between them. Empty inputs do not extend the span.
func (i Interval[T]) Span(o Interval[T]) Interval[T] {
	if i.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return i
	}

	start := i.start
	if cmpStart(o.start, start) < 0 {
		start = o.start
	}
	end := i.end
	if cmpEnd(o.end, end) > 0 {
		end = o.end
	}

	return Interval[T]{start: clone(start), end: clone(end)}
}

// Equal reports whether both intervals have the same boundaries. An absent
// boundary only equals another absent boundary.
func (i Interval[T]) Equal(o Interval[T]) bool {
	return eqBound(i.start, o.start) && eqBound(i.end, o.end)
}

// String renders the interval as "[start, end)" with "-inf" and "+inf" for
// absent boundaries.
func (i Interval[T]) String() string {
	start, end := "-inf", "+inf"
	if i.start != nil {
		start = fmt.Sprintf("%v", *i.start)
	}
	if i.end != nil {
		end = fmt.Sprintf("%v", *i.end)
	}

	return fmt.Sprintf("[%s, %s)", start, end)
}

// cmpStart compares two start boundaries, treating nil as -inf.
func cmpStart[T Point[T]](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return (*a).Compare(*b)
	}
}

// cmpEnd compares two end boundaries, treating nil as +inf.
func cmpEnd[T Point[T]](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return (*a).Compare(*b)
	}
}

// cmpStartEnd compares a start boundary (nil = -inf) against an end
// boundary (nil = +inf).
func cmpStartEnd[T Point[T]](start, end *T) int {
	if start == nil || end == nil {
		return -1
	}

	return (*start).Compare(*end)
}

func eqBound[T Point[T]](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return (*a).Compare(*b) == 0
}

func clone[T any](p *T) *T {
	if p == nil {
		return nil
	}

	return pointer.To(*p)
}
