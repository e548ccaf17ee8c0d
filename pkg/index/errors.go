package index

import "errors"

// Both errors below signal violated caller contracts, not recoverable
// runtime conditions. There is nothing to retry: the only fix is for the
// caller to respect monotonic progress.
var (
	// ErrStaleVersion is returned when a read, write or compaction
	// references a point not at or beyond the installed compaction
	// frontier. The history needed to answer such a request has already
	// been discarded, so the index fails loudly instead of producing an
	// over-compacted answer.
	ErrStaleVersion = errors.New("version behind the compaction frontier")

	// ErrNonMonotonicCompaction is returned when Compact is called with a
	// frontier that does not dominate the previously installed one.
	ErrNonMonotonicCompaction = errors.New("compaction frontier must advance monotonically")
)
