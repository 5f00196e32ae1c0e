// Package row defines the minimal capability contract a row representation
// must satisfy to be stored in a rowstore table, along with the built-in
// adapters for the representations Go programs commonly favor.
package row

import "fmt"

// Row is the capability any backing row representation must offer: indexable
// by column number and able to report its column count.
//
// Value must panic for an out-of-range column; a bad column number is a
// programmer error, not a data error.
type Row[T any] interface {
	// Value returns the value stored at column i.
	Value(i int) T

	// Columns returns the number of columns in the row.
	Columns() int
}

// Compile-time checks to ensure the built-in adapters satisfy Row.
var (
	_ Row[int] = Slice[int](nil)
	_ Row[int] = Shared[int]{}
)

// Slice adapts an owned Go slice to the Row contract.
type Slice[T any] []T

// Value returns the value stored at column i.
func (s Slice[T]) Value(i int) T {
	if i < 0 || i >= len(s) {
		panic(fmt.Sprintf("rowstore: column %d out of range for %d-column row", i, len(s)))
	}
	return s[i]
}

// Columns returns the number of columns in the row.
func (s Slice[T]) Columns() int { return len(s) }

// Shared is an immutable row handle backed by shared storage. Copies of a
// Shared alias the same values, so a row can be handed to multiple owners
// without duplicating its columns. The underlying values must not be mutated
// after construction.
type Shared[T any] struct {
	vals *[]T
}

// NewShared wraps vals in a Shared handle. The caller gives up ownership of
// vals; mutating it afterwards breaks the immutability contract.
func NewShared[T any](vals []T) Shared[T] {
	return Shared[T]{vals: &vals}
}

// Value returns the value stored at column i.
func (s Shared[T]) Value(i int) T {
	if s.vals == nil || i < 0 || i >= len(*s.vals) {
		panic(fmt.Sprintf("rowstore: column %d out of range for %d-column row", i, s.Columns()))
	}
	return (*s.vals)[i]
}

// Columns returns the number of columns in the row.
func (s Shared[T]) Columns() int {
	if s.vals == nil {
		return 0
	}
	return len(*s.vals)
}
