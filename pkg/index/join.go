package index

import (
	"github.com/electric-sql/d2go/pkg/collection"
	"github.com/electric-sql/d2go/pkg/order"
)

// JoinResult is one matched pair produced by Join: the shared key together
// with the left and right input values.
type JoinResult[K comparable, V1 comparable, V2 comparable] struct {
	Key   K
	Left  V1
	Right V2
}

// VersionedCollection is a collection tagged with the version at which it
// takes effect.
type VersionedCollection[T comparable] struct {
	Version    order.Version
	Collection collection.Collection[T]
}

// Join computes the multiplicity-weighted cross product of two indexes
// over their shared keys. For each key present in both indexes and each
// pair of recorded entries, the result carries the lattice join of the two
// versions (the earliest point at which both inputs are known) and the
// product of the two multiplicities, which is what lets retractions
// propagate through the join. Results are grouped per result version;
// versions are unique in the output and empty groups are omitted.
//
// Join is a package function rather than a method so the two indexes may
// hold different value types.
//
// No frontier validation is performed: the caller is responsible for
// having compacted both inputs coherently beforehand.
func Join[K comparable, V1 comparable, V2 comparable](
	left *Index[K, V1], right *Index[K, V2],
) []VersionedCollection[JoinResult[K, V1, V2]] {
	type group struct {
		version order.Version
		entries []collection.Entry[JoinResult[K, V1, V2]]
	}

	groups := make(map[string]*group)
	groupOrder := make([]string, 0)

	for key, lh := range left.entries {
		rh, ok := right.entries[key]
		if !ok {
			continue
		}

		for _, lvk := range lh.order {
			lb := lh.buckets[lvk]
			for _, rvk := range rh.order {
				rb := rh.buckets[rvk]
				resultVersion := lb.version.Join(rb.version)

				g, ok := groups[resultVersion.Key()]
				if !ok {
					g = &group{version: resultVersion}
					groups[resultVersion.Key()] = g
					groupOrder = append(groupOrder, resultVersion.Key())
				}

				for _, le := range lb.entries {
					for _, re := range rb.entries {
						g.entries = append(g.entries, collection.Entry[JoinResult[K, V1, V2]]{
							Value:        JoinResult[K, V1, V2]{Key: key, Left: le.Value, Right: re.Value},
							Multiplicity: le.Multiplicity * re.Multiplicity,
						})
					}
				}
			}
		}
	}

	out := make([]VersionedCollection[JoinResult[K, V1, V2]], 0, len(groupOrder))
	for _, vk := range groupOrder {
		g := groups[vk]
		if len(g.entries) == 0 {
			continue
		}
		out = append(out, VersionedCollection[JoinResult[K, V1, V2]]{
			Version:    g.version,
			Collection: collection.FromEntries(g.entries),
		})
	}
	return out
}
