package rowstore

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/google/btree"

	"github.com/hupe1980/rowstore/index"
	"github.com/hupe1980/rowstore/query"
	"github.com/hupe1980/rowstore/row"
)

// Default branching degree of the btree backing the row table.
const defaultDegree = 64

// entry is one stored row keyed by its identifier. The row table orders
// entries by id so the full-scan fallback walks rows in insertion order.
type entry[T comparable] struct {
	id  index.RowID
	row row.Row[T]
}

// Store is an in-memory, column-typed row table with optional secondary
// indexes and a cost-based planner for equality queries.
//
// A Store has a fixed column count and assigns every inserted row a
// monotonically increasing identifier that is never reused. At most one index
// can be attached per column; attached indexes are kept consistent with the
// stored rows across every Insert, Delete and Index call.
//
// A Store is single-owner and synchronous: it performs no internal locking,
// and every operation runs to completion on the calling goroutine. It is safe
// to hand a Store between goroutines, but concurrent mutation, or mutation
// concurrent with an in-flight Find sequence, must be prevented by the
// caller. A Find sequence that outlives a subsequent mutation is invalid and
// must not be consulted.
type Store[T comparable] struct {
	cols    int
	next    index.RowID
	rows    *btree.BTreeG[entry[T]]
	indices map[int]index.Index[T]
	logger  *Logger
}

// New creates an empty Store whose rows have exactly cols columns.
func New[T comparable](cols int, optFns ...Option) *Store[T] {
	opts := applyOptions(optFns)
	return &Store[T]{
		cols: cols,
		rows: btree.NewG(opts.degree, func(a, b entry[T]) bool {
			return a.id < b.id
		}),
		indices: make(map[int]index.Index[T]),
		logger:  opts.logger,
	}
}

// Columns returns the fixed column count of the store.
func (s *Store[T]) Columns() int { return s.cols }

// Len returns the number of rows currently stored.
func (s *Store[T]) Len() int { return s.rows.Len() }

// Insert stores r and returns the identifier assigned to it. Every attached
// index is updated with r's value at the indexed column before Insert
// returns.
//
// Insert panics if r's column count differs from the store's; a misshapen row
// is a programmer error, not recoverable input.
func (s *Store[T]) Insert(r row.Row[T]) index.RowID {
	if r.Columns() != s.cols {
		panic(fmt.Sprintf("rowstore: inserted row has %d columns, table has %d", r.Columns(), s.cols))
	}

	id := s.next
	s.next++

	for col, ix := range s.indices {
		ix.Add(r.Value(col), id)
	}
	s.rows.ReplaceOrInsert(entry[T]{id: id, row: r})

	return id
}

// Index attaches ix to column, immediately backfilling it from every stored
// row in ascending identifier order. Any index previously attached to the
// column is discarded. Backfill cost is proportional to the current row
// count, so attaching to a large table must be budgeted by the caller.
func (s *Store[T]) Index(column int, ix index.Index[T]) {
	if column < 0 || column >= s.cols {
		panic(fmt.Sprintf("rowstore: index column %d out of range for %d-column table", column, s.cols))
	}

	s.rows.Ascend(func(e entry[T]) bool {
		ix.Add(e.row.Value(column), e.id)
		return true
	})
	s.indices[column] = ix

	s.logger.LogIndexAttach(column, ix.Kind().String(), s.rows.Len())
}

// Find returns a lazy, single-pass sequence of the rows matching every
// condition. With no conditions it yields every stored row.
//
// Among the conditions whose column has an attached index and whose
// comparison is an equality against a constant, the one whose index reports
// the lowest Estimate drives candidate generation; without such a condition
// every row is scanned in ascending identifier order. Candidates are a
// superset either way: each candidate row is re-verified against all
// conditions before it is yielded.
//
// The sequence borrows the store's current state and is invalidated by any
// subsequent mutation.
func (s *Store[T]) Find(conds ...query.Condition[T]) iter.Seq[row.Row[T]] {
	return func(yield func(row.Row[T]) bool) {
		for id := range s.candidates(conds) {
			e, ok := s.rows.Get(entry[T]{id: id})
			if !ok || !matchesAll(conds, e.row) {
				continue
			}
			if !yield(e.row) {
				return
			}
		}
	}
}

// Delete removes every row matching all conditions and returns how many rows
// were removed. Attached indexes are updated to reflect the removals.
func (s *Store[T]) Delete(conds ...query.Condition[T]) int {
	return s.DeleteFunc(conds, nil)
}

// DeleteFunc removes every row that matches all conditions and, when pred is
// non-nil, for which pred returns true. It returns how many rows were
// removed.
//
// Matching row ids are collected before anything is mutated, so pred and the
// conditions always observe the pre-delete state. Each removed row's own
// values feed the index removals, keeping every attached index exact.
func (s *Store[T]) DeleteFunc(conds []query.Condition[T], pred func(row.Row[T]) bool) int {
	matched := roaring64.New()
	for id := range s.candidates(conds) {
		e, ok := s.rows.Get(entry[T]{id: id})
		if !ok || !matchesAll(conds, e.row) {
			continue
		}
		if pred != nil && !pred(e.row) {
			continue
		}
		matched.Add(uint64(id))
	}

	it := matched.Iterator()
	for it.HasNext() {
		id := index.RowID(it.Next())
		e, ok := s.rows.Delete(entry[T]{id: id})
		if !ok {
			continue
		}
		for col, ix := range s.indices {
			ix.Remove(e.row.Value(col), id)
		}
	}

	n := int(matched.GetCardinality())
	if n > 0 {
		s.logger.LogDelete(n)
	}
	return n
}

// candidates returns the row ids the planner settles on: the lookup of the
// cheapest usable index, or the full scan in ascending id order when no
// condition is index-eligible.
func (s *Store[T]) candidates(conds []query.Condition[T]) iter.Seq[index.RowID] {
	if ix, key, ok := s.plan(conds); ok {
		return ix.Lookup(key)
	}
	return func(yield func(index.RowID) bool) {
		s.rows.Ascend(func(e entry[T]) bool {
			return yield(e.id)
		})
	}
}

// plan picks the cheapest usable index among the conditions. A condition is
// usable when its column has an attached index and its comparison is an
// equality against a constant; column-vs-column comparisons are never
// index-eligible since the compared value is unknown until the row is
// fetched. Ties keep the first condition found; estimates are expected
// values, so ties carry no correctness weight.
func (s *Store[T]) plan(conds []query.Condition[T]) (index.Index[T], T, bool) {
	var (
		best  index.Index[T]
		key   T
		cost  int
		found bool
	)
	for _, c := range conds {
		ix, ok := s.indices[c.Column]
		if !ok {
			continue
		}
		lit, ok := c.Cmp.Literal()
		if !ok {
			continue
		}
		if est := ix.Estimate(); !found || est < cost {
			best, key, cost, found = ix, lit, est, true
		}
	}
	return best, key, found
}

func matchesAll[T comparable](conds []query.Condition[T], r row.Row[T]) bool {
	for _, c := range conds {
		if !c.Matches(r) {
			return false
		}
	}
	return true
}
