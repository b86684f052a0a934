// Package collection provides generic slice, predicate and set utilities:
// composable Predicate filters, order-preserving transforms (Map, FlatMap,
// Uniq, GroupBy), aggregations over ordered types, and a deterministic Set
// with JSON support. All functions treat their inputs as read-only.
package collection
