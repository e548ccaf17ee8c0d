package index

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/electric-sql/d2go/pkg/collection"
	"github.com/electric-sql/d2go/pkg/order"
)

// Index maps keys to the versions at which the key changed, and each
// version to the bag of (value, multiplicity) entries observed there.
// Versions within a key are an unordered set of lattice points: reads
// filter by the partial order, never by a scan cutoff.
type Index[K comparable, V comparable] struct {
	entries map[K]*keyHistory[V]

	// Compaction frontier. Absent until the first Compact call, meaning
	// every version is valid to query.
	frontier    order.Antichain
	hasFrontier bool

	log logr.Logger
}

// keyHistory holds one key's version buckets. Buckets are keyed by the
// version's canonical form; insertion order is tracked so reconstruction
// is deterministic.
type keyHistory[V comparable] struct {
	buckets map[string]*bucket[V]
	order   []string
}

type bucket[V comparable] struct {
	version order.Version
	entries []collection.Entry[V]
}

func newKeyHistory[V comparable]() *keyHistory[V] {
	return &keyHistory[V]{buckets: make(map[string]*bucket[V])}
}

// bucketFor returns the bucket for a version, creating it on first use.
func (h *keyHistory[V]) bucketFor(version order.Version) *bucket[V] {
	vk := version.Key()
	b, ok := h.buckets[vk]
	if !ok {
		b = &bucket[V]{version: version}
		h.buckets[vk] = b
		h.order = append(h.order, vk)
	}
	return b
}

// remove drops a version bucket and returns it.
func (h *keyHistory[V]) remove(vk string) *bucket[V] {
	b := h.buckets[vk]
	delete(h.buckets, vk)
	for i, k := range h.order {
		if k == vk {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	return b
}

// Option configures an Index.
type Option func(*options)

type options struct {
	logger logr.Logger
}

// WithLogger sets the logger used for compaction tracing. The default
// discards everything.
func WithLogger(logger logr.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New creates an empty index with no compaction frontier installed.
func New[K comparable, V comparable](opts ...Option) *Index[K, V] {
	o := options{logger: logr.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	return &Index[K, V]{
		entries: make(map[K]*keyHistory[V]),
		log:     o.logger.WithName("index"),
	}
}

// validateVersion gates reads and writes against the compaction frontier:
// once history behind the frontier has been discarded, requests there can
// no longer be answered correctly.
func (ix *Index[K, V]) validateVersion(version order.Version) error {
	if !ix.hasFrontier {
		return nil
	}
	if !ix.frontier.LessEqualVersion(version) {
		return fmt.Errorf("version %s behind compaction frontier %s: %w",
			version, ix.frontier, ErrStaleVersion)
	}
	return nil
}

// validateFrontier gates new compaction frontiers.
func (ix *Index[K, V]) validateFrontier(frontier order.Antichain) error {
	if !ix.hasFrontier {
		return nil
	}
	if !ix.frontier.LessEqual(frontier) {
		return fmt.Errorf("frontier %s does not dominate installed frontier %s: %w",
			frontier, ix.frontier, ErrNonMonotonicCompaction)
	}
	return nil
}

// AddValue records a single (value, multiplicity) entry for the key at the
// given version. Entries are appended as-is: repeated writes of the same
// value at the same version coexist until a Compact sums them.
func (ix *Index[K, V]) AddValue(key K, version order.Version, entry collection.Entry[V]) error {
	if err := ix.validateVersion(version); err != nil {
		return err
	}

	h, ok := ix.entries[key]
	if !ok {
		h = newKeyHistory[V]()
		ix.entries[key] = h
	}

	b := h.bucketFor(version)
	b.entries = append(b.entries, entry)
	return nil
}

// ReconstructAt returns every entry recorded for the key at any version at
// or before the requested one, concatenated in storage order. The result
// is unconsolidated: callers needing net multiplicities must sum, since
// consolidation is deferred to Compact. Unknown keys yield an empty slice.
func (ix *Index[K, V]) ReconstructAt(key K, version order.Version) ([]collection.Entry[V], error) {
	if err := ix.validateVersion(version); err != nil {
		return nil, err
	}

	h, ok := ix.entries[key]
	if !ok {
		return nil, nil
	}

	var out []collection.Entry[V]
	for _, vk := range h.order {
		b := h.buckets[vk]
		if b.version.LessEqual(version) {
			out = append(out, b.entries...)
		}
	}
	return out, nil
}

// Versions returns every version currently recorded for the key, in no
// particular order. Unknown keys yield an empty slice.
func (ix *Index[K, V]) Versions(key K) []order.Version {
	h, ok := ix.entries[key]
	if !ok {
		return nil
	}

	out := make([]order.Version, 0, len(h.order))
	for _, vk := range h.order {
		out = append(out, h.buckets[vk].version)
	}
	return out
}

// Keys returns every key with recorded history, in no particular order.
func (ix *Index[K, V]) Keys() []K {
	out := make([]K, 0, len(ix.entries))
	for key := range ix.entries {
		out = append(out, key)
	}
	return out
}

// Append extends this index with every entry of the other index,
// preserving relative entry order per (key, version). This is a cheap
// structural merge of indexes produced in the same epoch; source versions
// are not validated against the compaction frontier, which is the caller's
// responsibility.
func (ix *Index[K, V]) Append(other *Index[K, V]) {
	for key, oh := range other.entries {
		h, ok := ix.entries[key]
		if !ok {
			h = newKeyHistory[V]()
			ix.entries[key] = h
		}
		for _, vk := range oh.order {
			ob := oh.buckets[vk]
			b := h.bucketFor(ob.version)
			b.entries = append(b.entries, ob.entries...)
		}
	}
}

// Compact collapses all history behind the given frontier. For every
// selected key (all keys when none are given), versions not at or beyond
// the frontier are removed and their entries re-homed at the version
// advanced into the frontier; every receiving version is then
// consolidated, summing multiplicities per value and dropping net zeros.
// Versions already at or beyond the frontier are left untouched.
//
// The frontier must dominate the previously installed one; afterwards it
// becomes the index's compaction frontier and requests behind it fail
// with ErrStaleVersion.
func (ix *Index[K, V]) Compact(frontier order.Antichain, keys ...K) error {
	if err := ix.validateFrontier(frontier); err != nil {
		return err
	}

	selected := keys
	if len(selected) == 0 {
		selected = ix.Keys()
	}

	compacted := 0
	for _, key := range selected {
		h, ok := ix.entries[key]
		if !ok {
			continue
		}

		// Materialize the version set to merge before touching the map.
		toCompact := make([]string, 0, len(h.order))
		for _, vk := range h.order {
			if !frontier.LessEqualVersion(h.buckets[vk].version) {
				toCompact = append(toCompact, vk)
			}
		}

		toConsolidate := make(map[string]struct{}, len(toCompact))
		for _, vk := range toCompact {
			b := h.remove(vk)
			advanced := b.version.AdvanceBy(frontier)
			target := h.bucketFor(advanced)
			target.entries = append(target.entries, b.entries...)
			toConsolidate[advanced.Key()] = struct{}{}
		}

		for vk := range toConsolidate {
			b := h.buckets[vk]
			b.entries = collection.ConsolidateEntries(b.entries)
		}

		compacted += len(toCompact)
	}

	ix.frontier = frontier
	ix.hasFrontier = true

	compactionCount.Inc()
	compactedVersionCount.Add(float64(compacted))
	ix.log.V(4).Info("compacted", "frontier", frontier.String(),
		"keys", len(selected), "versions", compacted)

	return nil
}

// Frontier returns the installed compaction frontier, and false if no
// compaction has happened yet.
func (ix *Index[K, V]) Frontier() (order.Antichain, bool) {
	return ix.frontier, ix.hasFrontier
}
