// Package order implements the partially ordered logical-time domain used by
// the versioned index: vector-clock Versions and Antichains (frontiers).
//
// Versions form a lattice: LessEqual is the coordinate-wise partial order,
// Join is the least upper bound (coordinate-wise max) and Meet is the
// greatest lower bound (coordinate-wise min). An Antichain is a minimal set
// of pairwise-incomparable Versions marking a boundary of progress:
// everything not yet seen is greater than or equal to some element of it.
//
// Both types are immutable values with no shared mutable state, so they are
// safe to compare and combine concurrently from multiple readers.
package order
