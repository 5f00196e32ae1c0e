// Package query models the conditions a rowstore table is queried with.
//
// A query is a set of Conditions combined conjunctively: a row matches when
// every Condition holds. Each Condition scopes a Comparison to one column,
// and each Comparison evaluates against a Value that is either a constant
// literal or a reference to another column of the same row.
package query

import "github.com/hupe1980/rowstore/row"

// Op identifies the comparison operator of a Comparison.
type Op int

// Supported comparison operators.
const (
	// OpEqual tests a column value for equality.
	OpEqual Op = iota
)

// String returns a string representation of the Op.
func (op Op) String() string {
	switch op {
	case OpEqual:
		return "Equal"
	default:
		return "Unknown"
	}
}

// Value is the right-hand side of a comparison: a constant literal, or a
// reference to another column of the row under evaluation. Column references
// can be evaluated against any row but can never be served by an index, since
// the compared value is not known until the row is fetched.
type Value[T comparable] struct {
	constant T
	column   int
	isColumn bool
}

// Const returns a Value holding the constant literal v.
func Const[T comparable](v T) Value[T] {
	return Value[T]{constant: v}
}

// Column returns a Value referencing column i of the row being evaluated.
func Column[T comparable](i int) Value[T] {
	return Value[T]{column: i, isColumn: true}
}

// Eval resolves the Value for r: the literal itself for Const, the value of
// the referenced column for Column.
func (v Value[T]) Eval(r row.Row[T]) T {
	if v.isColumn {
		return r.Value(v.column)
	}
	return v.constant
}

// Literal returns the constant literal and true when the Value is a Const,
// and the zero value and false for a column reference.
func (v Value[T]) Literal() (T, bool) {
	if v.isColumn {
		var zero T
		return zero, false
	}
	return v.constant, true
}

// Comparison pairs an operator with the Value it compares against.
type Comparison[T comparable] struct {
	op    Op
	value Value[T]
}

// Op returns the comparison operator.
func (c Comparison[T]) Op() Op { return c.op }

// Equal returns a Comparison testing for equality against v.
func Equal[T comparable](v Value[T]) Comparison[T] {
	return Comparison[T]{op: OpEqual, value: v}
}

// Matches reports whether actual compares successfully against the
// Comparison's Value when evaluated for r.
func (c Comparison[T]) Matches(actual T, r row.Row[T]) bool {
	switch c.op {
	case OpEqual:
		return actual == c.value.Eval(r)
	default:
		return false
	}
}

// Literal returns the constant operand and true when the Comparison is an
// equality against a constant. Only such comparisons are index-eligible.
func (c Comparison[T]) Literal() (T, bool) {
	if c.op != OpEqual {
		var zero T
		return zero, false
	}
	return c.value.Literal()
}

// Condition scopes a Comparison to a single column of a row.
type Condition[T comparable] struct {
	// Column is the column whose value feeds the comparison.
	Column int

	// Cmp is the comparison to perform on the selected value.
	Cmp Comparison[T]
}

// Eq returns a Condition requiring column to equal the constant v.
func Eq[T comparable](column int, v T) Condition[T] {
	return Condition[T]{Column: column, Cmp: Equal(Const(v))}
}

// EqColumn returns a Condition requiring column to equal another column of
// the same row. Conditions of this kind are never served by an index.
func EqColumn[T comparable](column, other int) Condition[T] {
	return Condition[T]{Column: column, Cmp: Equal(Column[T](other))}
}

// Matches reports whether the Condition holds for r. The value at c.Column is
// extracted and evaluated using c.Cmp.
func (c Condition[T]) Matches(r row.Row[T]) bool {
	return c.Cmp.Matches(r.Value(c.Column), r)
}
