package index

type boundKind int

const (
	boundUnbounded boundKind = iota
	boundIncluded
	boundExcluded
)

// Bound is one endpoint of a range query: inclusive, exclusive, or absent.
type Bound[T any] struct {
	value T
	kind  boundKind
}

// Included returns a bound that admits v itself.
func Included[T any](v T) Bound[T] {
	return Bound[T]{value: v, kind: boundIncluded}
}

// Excluded returns a bound that stops short of v.
func Excluded[T any](v T) Bound[T] {
	return Bound[T]{value: v, kind: boundExcluded}
}

// Unbounded returns an absent bound: the range extends indefinitely in that
// direction.
func Unbounded[T any]() Bound[T] {
	return Bound[T]{}
}

// Bounded reports whether the bound has an endpoint value.
func (b Bound[T]) Bounded() bool { return b.kind != boundUnbounded }

// Inclusive reports whether the endpoint value itself is admitted. It is
// false for unbounded bounds.
func (b Bound[T]) Inclusive() bool { return b.kind == boundIncluded }

// Value returns the endpoint value. It is meaningful only when Bounded
// reports true.
func (b Bound[T]) Value() T { return b.value }
