package order

import (
	"strings"
)

// Antichain is a minimal set of pairwise-incomparable Versions: a frontier.
// A frontier marks a boundary of progress; a version is "beyond" the
// frontier when some element of the frontier is less than or equal to it.
//
// The empty antichain is meaningful: it is the frontier of a finished
// computation, with nothing at or beyond it.
type Antichain struct {
	elements []Version
}

// NewAntichain creates an antichain from the given versions, discarding any
// element dominated by another. Among equal elements the first occurrence
// wins.
func NewAntichain(elements ...Version) Antichain {
	minimal := make([]Version, 0, len(elements))

next:
	for _, candidate := range elements {
		for i := 0; i < len(minimal); i++ {
			if minimal[i].LessEqual(candidate) {
				continue next // dominated, drop candidate
			}
			if candidate.Less(minimal[i]) {
				minimal = append(minimal[:i], minimal[i+1:]...)
				i--
			}
		}
		minimal = append(minimal, candidate)
	}

	return Antichain{elements: minimal}
}

// LessEqual reports whether a precedes or equals other as a frontier: every
// element of a is less than or equal to some element of other.
func (a Antichain) LessEqual(other Antichain) bool {
	for _, elem := range a.elements {
		ok := false
		for _, o := range other.elements {
			if elem.LessEqual(o) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// LessEqualVersion reports whether the version is at or beyond the
// frontier, i.e. some element of a is less than or equal to v. Always false
// for the empty antichain.
func (a Antichain) LessEqualVersion(v Version) bool {
	for _, elem := range a.elements {
		if elem.LessEqual(v) {
			return true
		}
	}
	return false
}

// Equal reports whether two antichains contain the same elements,
// regardless of order.
func (a Antichain) Equal(other Antichain) bool {
	return a.LessEqual(other) && other.LessEqual(a) &&
		len(a.elements) == len(other.elements)
}

// Meet returns the lower bound of two frontiers: the minimized union of
// their elements.
func (a Antichain) Meet(other Antichain) Antichain {
	combined := make([]Version, 0, len(a.elements)+len(other.elements))
	combined = append(combined, a.elements...)
	combined = append(combined, other.elements...)
	return NewAntichain(combined...)
}

// IsEmpty reports whether the antichain has no elements.
func (a Antichain) IsEmpty() bool {
	return len(a.elements) == 0
}

// Len returns the number of elements.
func (a Antichain) Len() int {
	return len(a.elements)
}

// Elements returns a copy of the antichain's elements.
func (a Antichain) Elements() []Version {
	out := make([]Version, len(a.elements))
	copy(out, a.elements)
	return out
}

func (a Antichain) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, elem := range a.elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(elem.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
