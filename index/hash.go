package index

import (
	"fmt"
	"iter"
)

// Compile-time check to ensure HashIndex satisfies the equality contract.
var _ EqualityIndex[int] = (*HashIndex[int])(nil)

// HashIndex is an EqualityIndex backed by a Go map. Lookup, Add and Remove
// are O(1) amortized; keys carry no ordering, so it is equality-capable only.
type HashIndex[T comparable] struct {
	num     int
	buckets map[T][]RowID
}

// NewHash allocates a new empty HashIndex.
func NewHash[T comparable]() *HashIndex[T] {
	return &HashIndex[T]{buckets: make(map[T][]RowID)}
}

// Lookup returns a lazy sequence of the ids of all rows indexed under value.
func (ix *HashIndex[T]) Lookup(value T) iter.Seq[RowID] {
	return func(yield func(RowID) bool) {
		for _, id := range ix.buckets[value] {
			if !yield(id) {
				return
			}
		}
	}
}

// Add indexes one occurrence of id under value.
func (ix *HashIndex[T]) Add(value T, id RowID) {
	ix.buckets[value] = append(ix.buckets[value], id)
	ix.num++
}

// Remove removes exactly one occurrence matching both value and id. The order
// of ids within a bucket is irrelevant, so removal swaps with the last entry.
// The key is dropped once its bucket empties, keeping the distinct-key count
// behind Estimate honest.
func (ix *HashIndex[T]) Remove(value T, id RowID) {
	ids, ok := ix.buckets[value]
	if !ok {
		return
	}
	for i, got := range ids {
		if got == id {
			ids[i] = ids[len(ids)-1]
			ids = ids[:len(ids)-1]
			if len(ids) == 0 {
				delete(ix.buckets, value)
			} else {
				ix.buckets[value] = ids
			}
			ix.num--
			return
		}
	}
	panic(fmt.Sprintf("rowstore: remove of entry (%v, %d) that was never added", value, id))
}

// Estimate returns the expected number of rows per distinct key.
func (ix *HashIndex[T]) Estimate() int {
	if len(ix.buckets) == 0 {
		return 0
	}
	return ix.num / len(ix.buckets)
}
