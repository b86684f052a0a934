/*
Package interval provides an algebra over half-open ranges [start, end) with
optional boundaries, where an absent boundary means the range is unbounded in
that direction.

The Interval type is generic over any boundary type with a Compare method, so
the same algebra serves instants (time.Time), civil dates (chrono.Date) and
any custom ordered point type.

Single-interval operations (Contains, Overlaps, Intersect, Subtract, Span)
are pure functions over immutable values. Collection operations work on
slices of intervals:

  - Normalize merges overlapping and abutting intervals into the minimal
    sorted disjoint set covering the same points.
  - Split cuts a set of intervals at every boundary, yielding maximal
    disjoint pieces whose membership is uniform across all inputs.
  - SubtractAll removes one set of intervals from another.
  - Cover computes the hull of a set.

Intervals marshal to JSON and YAML as {"start": ..., "end": ...} with null
standing in for an unbounded side.
*/
package interval
