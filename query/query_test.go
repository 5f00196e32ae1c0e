package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rowstore/row"
)

func TestValueEval(t *testing.T) {
	assert.Equal(t, "a", Column[string](0).Eval(row.Slice[string]{"a"}))
	assert.Equal(t, "a", Const("a").Eval(row.Slice[string]{"b"}))
}

func TestValueLiteral(t *testing.T) {
	v, ok := Const("a").Literal()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = Column[string](1).Literal()
	assert.False(t, ok)
}

func TestComparisonEqual(t *testing.T) {
	assert.True(t, Equal(Column[string](0)).Matches("a", row.Slice[string]{"a"}))
	assert.False(t, Equal(Column[string](0)).Matches("a", row.Slice[string]{"b"}))
	assert.True(t, Equal(Const("a")).Matches("a", row.Slice[string]{"b"}))
	assert.False(t, Equal(Const("b")).Matches("a", row.Slice[string]{"a"}))
}

func TestComparisonLiteral(t *testing.T) {
	v, ok := Equal(Const("a")).Literal()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = Equal(Column[string](0)).Literal()
	assert.False(t, ok, "column references are never index-eligible")
}

func TestCondition(t *testing.T) {
	tests := []struct {
		name string
		cond Condition[string]
		row  row.Slice[string]
		want bool
	}{
		{
			name: "column equals other column",
			cond: EqColumn[string](1, 0),
			row:  row.Slice[string]{"a", "a"},
			want: true,
		},
		{
			name: "column differs from other column",
			cond: EqColumn[string](1, 0),
			row:  row.Slice[string]{"a", "b"},
			want: false,
		},
		{
			name: "constant match",
			cond: Eq(0, "a"),
			row:  row.Slice[string]{"a"},
			want: true,
		},
		{
			name: "constant mismatch",
			cond: Eq(0, "b"),
			row:  row.Slice[string]{"a"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cond.Matches(tt.row))
		})
	}
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "Equal", OpEqual.String())
	assert.Equal(t, "Unknown", Op(42).String())
}
