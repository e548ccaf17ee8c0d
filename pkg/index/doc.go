// Package index implements a versioned key-value index for incremental
// computation: for each key it records every change to the key's values at
// every point of a partially ordered logical-time domain.
//
// The index supports three families of operations:
//
//   - Accumulation: AddValue and Append record (value, multiplicity) facts
//     tagged with a version. Entries are never merged or cancelled on
//     write; duplicates coexist until compaction.
//   - Reading: ReconstructAt rebuilds the exact unconsolidated entry
//     sequence visible at a requested version, and Join combines two
//     indexes under multiplicity-weighted cross-product semantics, the
//     building block of incremental relational equi-join.
//   - Compaction: Compact collapses the history behind an advancing
//     frontier, summing multiplicities per value and dropping net-zero
//     values, which bounds memory as the computation progresses at the
//     price of no longer being able to reconstruct at obsolete versions.
//
// Compaction frontiers only move forward. Requests behind the installed
// frontier fail with ErrStaleVersion or ErrNonMonotonicCompaction rather
// than silently returning over-compacted results.
//
// The index is a single-writer structure: mutating calls must be issued
// sequentially by the owning worker, with no concurrent mutation and no
// reads during mutation. Workers that shard state should own one index
// instance each and merge outside this package.
//
// Example usage:
//
//	ix := index.New[string, int]()
//	ix.AddValue("k", order.NewVersion(1), collection.Entry[int]{Value: 10, Multiplicity: 2})
//	entries, err := ix.ReconstructAt("k", order.NewVersion(2))
package index
