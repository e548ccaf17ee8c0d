package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Version is an immutable point in a partially ordered set of logical
// timestamps, encoded as a fixed-dimension vector clock. Two versions are
// comparable only if every coordinate of one is less than or equal to the
// corresponding coordinate of the other; otherwise they are concurrent.
type Version struct {
	coords []int
	key    string
}

// NewVersion creates a version from the given coordinates. Coordinates must
// be non-negative; violating this is a programming-contract error and
// panics.
func NewVersion(coords ...int) Version {
	for i, c := range coords {
		if c < 0 {
			panic(fmt.Sprintf("order: negative coordinate %d at dimension %d", c, i))
		}
	}

	owned := make([]int, len(coords))
	copy(owned, coords)

	return Version{coords: owned, key: encodeCoords(owned)}
}

// encodeCoords builds the canonical string form used as a map key.
func encodeCoords(coords []int) string {
	var sb strings.Builder
	for i, c := range coords {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	return sb.String()
}

// mustMatchDim asserts equal dimensionality. Comparing versions from
// different time domains is a programming-contract error.
func (v Version) mustMatchDim(other Version) {
	if len(v.coords) != len(other.coords) {
		panic(fmt.Sprintf("order: dimension mismatch: %d vs %d", len(v.coords), len(other.coords)))
	}
}

// LessEqual reports whether v precedes or equals other in the partial
// order, i.e. every coordinate of v is at most the corresponding coordinate
// of other.
func (v Version) LessEqual(other Version) bool {
	v.mustMatchDim(other)
	for i, c := range v.coords {
		if c > other.coords[i] {
			return false
		}
	}
	return true
}

// Less reports whether v strictly precedes other.
func (v Version) Less(other Version) bool {
	return v.LessEqual(other) && !v.Equal(other)
}

// Equal reports structural equality.
func (v Version) Equal(other Version) bool {
	return v.key == other.key
}

// Join returns the least upper bound: the coordinate-wise maximum, the
// earliest version at or after both inputs.
func (v Version) Join(other Version) Version {
	v.mustMatchDim(other)
	coords := make([]int, len(v.coords))
	for i, c := range v.coords {
		if other.coords[i] > c {
			coords[i] = other.coords[i]
		} else {
			coords[i] = c
		}
	}
	return Version{coords: coords, key: encodeCoords(coords)}
}

// Meet returns the greatest lower bound: the coordinate-wise minimum, the
// latest version at or before both inputs.
func (v Version) Meet(other Version) Version {
	v.mustMatchDim(other)
	coords := make([]int, len(v.coords))
	for i, c := range v.coords {
		if other.coords[i] < c {
			coords[i] = other.coords[i]
		} else {
			coords[i] = c
		}
	}
	return Version{coords: coords, key: encodeCoords(coords)}
}

// AdvanceBy rounds the version up into the given frontier: the result is
// indistinguishable from v at any time at or beyond the frontier. It is
// computed as the meet over the frontier's elements of v joined with each
// element. An empty frontier leaves the version unchanged.
//
// This is the compaction primitive: versions behind the frontier collapse
// onto their advanced image, which is where their history is summed.
func (v Version) AdvanceBy(frontier Antichain) Version {
	if len(frontier.elements) == 0 {
		return v
	}

	result := v.Join(frontier.elements[0])
	for _, elem := range frontier.elements[1:] {
		result = result.Meet(v.Join(elem))
	}
	return result
}

// Hash returns a 64-bit hash of the version, stable across processes.
func (v Version) Hash() uint64 {
	return xxhash.Sum64String(v.key)
}

// Key returns the canonical string form of the version. It is stable,
// injective on coordinates, and intended for use as a Go map key (a
// slice-backed struct cannot be one itself).
func (v Version) Key() string {
	return v.key
}

// Dim returns the number of coordinates.
func (v Version) Dim() int {
	return len(v.coords)
}

// Coords returns a copy of the coordinate vector.
func (v Version) Coords() []int {
	out := make([]int, len(v.coords))
	copy(out, v.coords)
	return out
}

func (v Version) String() string {
	return "[" + v.key + "]"
}
