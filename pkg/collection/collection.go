package collection

import (
	"fmt"
	"strings"
)

// Entry is a value with its signed multiplicity.
type Entry[T comparable] struct {
	Value        T
	Multiplicity int
}

// Collection is an ordered sequence of entries. There is no uniqueness
// constraint: a value may occur in several entries, and its net
// multiplicity is the sum over all of them.
type Collection[T comparable] struct {
	entries []Entry[T]
}

// New creates a collection from the given entries.
func New[T comparable](entries ...Entry[T]) Collection[T] {
	owned := make([]Entry[T], len(entries))
	copy(owned, entries)
	return Collection[T]{entries: owned}
}

// FromEntries creates a collection that takes ownership of the given slice.
func FromEntries[T comparable](entries []Entry[T]) Collection[T] {
	return Collection[T]{entries: entries}
}

// Entries returns a copy of the entry sequence in storage order.
func (c Collection[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(c.entries))
	copy(out, c.entries)
	return out
}

// At returns the i-th entry.
func (c Collection[T]) At(i int) Entry[T] {
	return c.entries[i]
}

// Len returns the number of entries, counting duplicates.
func (c Collection[T]) Len() int {
	return len(c.entries)
}

// IsEmpty reports whether the collection has no entries at all. A non-empty
// collection may still be a net zero; see Consolidate.
func (c Collection[T]) IsEmpty() bool {
	return len(c.entries) == 0
}

// Concat returns the order-preserving concatenation of two collections.
func (c Collection[T]) Concat(other Collection[T]) Collection[T] {
	entries := make([]Entry[T], 0, len(c.entries)+len(other.entries))
	entries = append(entries, c.entries...)
	entries = append(entries, other.entries...)
	return Collection[T]{entries: entries}
}

// Negate returns the collection with every multiplicity flipped, turning
// assertions into retractions and vice versa.
func (c Collection[T]) Negate() Collection[T] {
	entries := make([]Entry[T], len(c.entries))
	for i, e := range c.entries {
		entries[i] = Entry[T]{Value: e.Value, Multiplicity: -e.Multiplicity}
	}
	return Collection[T]{entries: entries}
}

// Consolidate sums multiplicities grouped by value and drops values whose
// net multiplicity is zero. Surviving values keep the order of their first
// appearance.
func (c Collection[T]) Consolidate() Collection[T] {
	return FromEntries(ConsolidateEntries(c.entries))
}

// ConsolidateEntries consolidates a raw entry slice without wrapping it in
// a Collection.
func ConsolidateEntries[T comparable](entries []Entry[T]) []Entry[T] {
	sums := make(map[T]int, len(entries))
	seen := make([]T, 0, len(entries))
	for _, e := range entries {
		if _, ok := sums[e.Value]; !ok {
			seen = append(seen, e.Value)
		}
		sums[e.Value] += e.Multiplicity
	}

	out := make([]Entry[T], 0, len(seen))
	for _, v := range seen {
		if m := sums[v]; m != 0 {
			out = append(out, Entry[T]{Value: v, Multiplicity: m})
		}
	}
	return out
}

// Equal reports whether two collections represent the same multiset: equal
// net multiplicity for every value, regardless of entry order or grouping.
func (c Collection[T]) Equal(other Collection[T]) bool {
	sums := make(map[T]int, len(c.entries))
	for _, e := range c.entries {
		sums[e.Value] += e.Multiplicity
	}
	for _, e := range other.entries {
		sums[e.Value] -= e.Multiplicity
	}
	for _, m := range sums {
		if m != 0 {
			return false
		}
	}
	return true
}

// Multiplicity returns the net multiplicity of a value.
func (c Collection[T]) Multiplicity(value T) int {
	total := 0
	for _, e := range c.entries {
		if e.Value == value {
			total += e.Multiplicity
		}
	}
	return total
}

func (c Collection[T]) String() string {
	if len(c.entries) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range c.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v×%d", e.Value, e.Multiplicity)
	}
	sb.WriteByte('}')
	return sb.String()
}
