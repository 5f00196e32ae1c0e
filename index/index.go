// Package index provides secondary indexes for rowstore tables: the
// capability contracts an index must satisfy, a hash-backed equality index, a
// btree-backed range index, and a tagged union so a table can hold indexes of
// different capabilities in one homogeneous map.
package index

import (
	"cmp"
	"iter"
)

// RowID is the stable identifier a table assigns to a row at insert time.
// Identifiers increase monotonically and are never reused, even after the row
// is deleted.
type RowID uint64

// EqualityIndex is an index that can perform efficient equality lookups.
type EqualityIndex[T comparable] interface {
	// Lookup returns a lazy sequence of the ids of all rows indexed under
	// value. The sequence is empty when the value is absent.
	Lookup(value T) iter.Seq[RowID]

	// Add indexes one occurrence of id under value. It never deduplicates; a
	// value may legitimately map to many rows.
	Add(value T, id RowID)

	// Remove removes exactly one occurrence matching both value and id.
	// Callers must only remove entries they previously added.
	Remove(value T, id RowID)

	// Estimate returns the expected number of rows per distinct key: total
	// indexed entries divided by distinct keys, 0 when the index is empty.
	// It is consulted once per candidate index on every query and must not
	// scan the index.
	Estimate() int
}

// RangeIndex is an index that, in addition to efficient equality lookups, can
// perform efficient range queries.
type RangeIndex[T comparable] interface {
	EqualityIndex[T]

	// Between returns a lazy sequence, ordered by key, of the ids of all rows
	// whose indexed value lies within the given bounds.
	Between(lower, upper Bound[T]) iter.Seq[RowID]
}

// Kind discriminates the capability variants of the Index union.
type Kind int

const (
	// KindEquality marks an index that only supports equality lookups.
	KindEquality Kind = iota

	// KindRange marks an index that also supports range queries.
	KindRange
)

// String returns a string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindEquality:
		return "Equality"
	case KindRange:
		return "Range"
	default:
		return "Unknown"
	}
}

// Index wraps one concrete index behind a single type so indexes of different
// capabilities can be stored uniformly. All equality operations forward to the
// wrapped implementation; range capability is fixed when the union is built,
// so callers discover it once rather than probing per call.
//
// The zero Index wraps nothing and must not be used; construct one with
// NewEquality, NewRange, or the Hash/BTree convenience constructors.
type Index[T comparable] struct {
	kind Kind
	eq   EqualityIndex[T]
	rng  RangeIndex[T]
}

// Compile-time check: the union itself satisfies the equality contract.
var _ EqualityIndex[int] = Index[int]{}

// NewEquality wraps an equality-only index.
func NewEquality[T comparable](eq EqualityIndex[T]) Index[T] {
	return Index[T]{kind: KindEquality, eq: eq}
}

// NewRange wraps a range-capable index.
func NewRange[T comparable](rng RangeIndex[T]) Index[T] {
	return Index[T]{kind: KindRange, rng: rng}
}

// Hash returns a union wrapping a fresh HashIndex.
func Hash[T comparable]() Index[T] {
	return NewEquality[T](NewHash[T]())
}

// BTree returns a union wrapping a fresh BTreeIndex ordered by cmp.Less.
func BTree[T cmp.Ordered]() Index[T] {
	return NewRange[T](NewBTree[T]())
}

// BTreeFunc returns a union wrapping a fresh BTreeIndex ordered by less.
func BTreeFunc[T comparable](less func(a, b T) bool) Index[T] {
	return NewRange[T](NewBTreeFunc(less))
}

// Kind returns the capability variant of the wrapped index.
func (ix Index[T]) Kind() Kind { return ix.kind }

// Range returns the wrapped index as a RangeIndex when it is range-capable.
func (ix Index[T]) Range() (RangeIndex[T], bool) {
	if ix.kind != KindRange {
		return nil, false
	}
	return ix.rng, true
}

// Lookup returns a lazy sequence of the ids of all rows indexed under value.
func (ix Index[T]) Lookup(value T) iter.Seq[RowID] {
	switch ix.kind {
	case KindRange:
		return ix.rng.Lookup(value)
	default:
		return ix.eq.Lookup(value)
	}
}

// Add indexes one occurrence of id under value.
func (ix Index[T]) Add(value T, id RowID) {
	switch ix.kind {
	case KindRange:
		ix.rng.Add(value, id)
	default:
		ix.eq.Add(value, id)
	}
}

// Remove removes exactly one occurrence matching both value and id.
func (ix Index[T]) Remove(value T, id RowID) {
	switch ix.kind {
	case KindRange:
		ix.rng.Remove(value, id)
	default:
		ix.eq.Remove(value, id)
	}
}

// Estimate returns the expected number of rows per distinct key.
func (ix Index[T]) Estimate() int {
	switch ix.kind {
	case KindRange:
		return ix.rng.Estimate()
	default:
		return ix.eq.Estimate()
	}
}
