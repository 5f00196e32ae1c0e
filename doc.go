// Package rowstore provides an embeddable, in-memory, column-typed row store
// for Go.
//
// A Store holds fixed-width rows of a single element type, assigns each row a
// stable, monotonically increasing identifier, and answers conjunctive
// equality queries. Optional secondary indexes accelerate lookups; a small
// cost-based planner picks the cheapest usable index per query and re-verifies
// every condition against each candidate row, so indexes affect performance
// but never results.
//
// # Quick Start
//
//	store := rowstore.New[string](2)
//	store.Index(0, index.Hash[string]())
//
//	store.Insert(row.Slice[string]{"a", "x1"})
//	store.Insert(row.Slice[string]{"a", "x2"})
//	store.Insert(row.Slice[string]{"b", "x3"})
//
//	for r := range store.Find(query.Eq(0, "a")) {
//	    fmt.Println(r.Value(0), r.Value(1))
//	}
//
//	store.Delete(query.Eq(0, "a"))
//
// # Indexes
//
// Two reference implementations ship with the store:
//
//   - index.Hash: hash-backed, O(1) equality lookups, no ordering
//   - index.BTree: btree-backed, equality lookups plus ordered Between
//     range scans
//
// Any type satisfying the index package's capability contracts can be
// attached. Range capability is exposed for callers that query an index
// directly; the planner itself only ever issues equality lookups.
//
// Attaching an index backfills it from all existing rows, so indexes may be
// added before or after data with identical query results.
//
// # Ownership Model
//
// A Store is single-owner and synchronous: no internal locking, no background
// work. It can be handed between goroutines, but concurrent mutation, and
// mutation while a Find sequence is still being consumed, must be prevented
// by the embedding program.
package rowstore
