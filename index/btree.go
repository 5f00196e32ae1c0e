package index

import (
	"cmp"
	"iter"

	"github.com/google/btree"
)

// Degree of the backing btree. Matches the fan-out commonly used for
// in-memory trees of small items.
const btreeDegree = 64

// Compile-time check to ensure BTreeIndex satisfies the range contract.
var _ RangeIndex[int] = (*BTreeIndex[int])(nil)

type bucket[T any] struct {
	key T
	ids []RowID
}

// BTreeIndex is a RangeIndex backed by a balanced ordered tree mapping each
// key to the ids of the rows holding it. In addition to equality lookups it
// supports Between, an ordered bounded scan over its keys.
type BTreeIndex[T comparable] struct {
	num  int
	less func(a, b T) bool
	tree *btree.BTreeG[bucket[T]]
}

// NewBTree allocates a new empty BTreeIndex ordered by cmp.Less.
func NewBTree[T cmp.Ordered]() *BTreeIndex[T] {
	return NewBTreeFunc(cmp.Less[T])
}

// NewBTreeFunc allocates a new empty BTreeIndex ordered by less, which must
// describe a total order over the key type.
func NewBTreeFunc[T comparable](less func(a, b T) bool) *BTreeIndex[T] {
	return &BTreeIndex[T]{
		less: less,
		tree: btree.NewG(btreeDegree, func(a, b bucket[T]) bool {
			return less(a.key, b.key)
		}),
	}
}

// Lookup returns a lazy sequence of the ids of all rows indexed under value.
func (ix *BTreeIndex[T]) Lookup(value T) iter.Seq[RowID] {
	return func(yield func(RowID) bool) {
		b, ok := ix.tree.Get(bucket[T]{key: value})
		if !ok {
			return
		}
		for _, id := range b.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// Add indexes one occurrence of id under value.
func (ix *BTreeIndex[T]) Add(value T, id RowID) {
	b, ok := ix.tree.Get(bucket[T]{key: value})
	if !ok {
		b = bucket[T]{key: value}
	}
	b.ids = append(b.ids, id)
	ix.tree.ReplaceOrInsert(b)
	ix.num++
}

// Remove removes the occurrences matching both value and id, retaining the
// rest of the key's bucket. The key is dropped once its bucket empties,
// keeping the distinct-key count behind Estimate honest.
func (ix *BTreeIndex[T]) Remove(value T, id RowID) {
	b, ok := ix.tree.Get(bucket[T]{key: value})
	if !ok {
		return
	}
	kept := b.ids[:0]
	for _, got := range b.ids {
		if got != id {
			kept = append(kept, got)
		}
	}
	ix.num -= len(b.ids) - len(kept)
	if len(kept) == 0 {
		ix.tree.Delete(b)
		return
	}
	b.ids = kept
	ix.tree.ReplaceOrInsert(b)
}

// Estimate returns the expected number of rows per distinct key.
func (ix *BTreeIndex[T]) Estimate() int {
	if ix.tree.Len() == 0 {
		return 0
	}
	return ix.num / ix.tree.Len()
}

// Between returns a lazy sequence, ordered by key, of the ids of all rows
// whose indexed value lies within the given bounds.
func (ix *BTreeIndex[T]) Between(lower, upper Bound[T]) iter.Seq[RowID] {
	return func(yield func(RowID) bool) {
		emit := func(b bucket[T]) bool {
			switch upper.kind {
			case boundIncluded:
				if ix.less(upper.value, b.key) {
					return false
				}
			case boundExcluded:
				if !ix.less(b.key, upper.value) {
					return false
				}
			}
			for _, id := range b.ids {
				if !yield(id) {
					return false
				}
			}
			return true
		}

		switch lower.kind {
		case boundIncluded:
			ix.tree.AscendGreaterOrEqual(bucket[T]{key: lower.value}, emit)
		case boundExcluded:
			ix.tree.AscendGreaterOrEqual(bucket[T]{key: lower.value}, func(b bucket[T]) bool {
				if b.key == lower.value {
					return true
				}
				return emit(b)
			})
		default:
			ix.tree.Ascend(emit)
		}
	}
}
