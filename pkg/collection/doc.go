// Package collection implements the raw multiset data model of differential
// computation: an ordered sequence of (value, multiplicity) entries where
// multiplicity is a signed weight. Positive multiplicities assert
// occurrences of a value, negative ones retract them, and a net
// multiplicity of zero means the value is absent.
//
// Collections never merge or cancel entries implicitly; the same value may
// appear any number of times. Consolidate produces the net view.
package collection
