package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrKind(t *testing.T) {
	assert.Equal(t, KindOr, MustOr().Kind())
	assert.Equal(t, "or", string(MustOr().Kind()))
}

func TestOrContains(t *testing.T) {
	elem := productSummary()

	tests := []struct {
		name     string
		operands []bool
		expected bool
	}{
		{"empty operands", nil, false},
		{"all operands contain", []bool{true, true}, true},
		{"only one operand contains", []bool{true, false}, true},
		{"only the last operand contains", []bool{false, true}, true},
		{"no operand contains", []bool{false, false}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := make([]Filter, len(tt.operands))
			for i, r := range tt.operands {
				ops[i] = stub("op", r)
			}
			f := MustOr(ops...)
			assert.Equal(t, tt.expected, f.Contains(elem))
		})
	}
}

func TestOrContainsIsCommutative(t *testing.T) {
	elem := productSummary()
	a, b := stub("a", true), stub("b", false)

	assert.True(t, MustOr(a, b).Contains(elem))
	assert.True(t, MustOr(b, a).Contains(elem))

	c, d := stub("c", false), stub("d", false)
	assert.Equal(t, MustOr(c, d).Contains(elem), MustOr(d, c).Contains(elem))
}

func TestOrContainsShortCircuits(t *testing.T) {
	x, y := stub("x", true), stub("y", false)

	assert.True(t, MustOr(x, y).Contains(productSummary()))
	assert.Equal(t, int64(1), x.calls.Load())
	assert.Equal(t, int64(0), y.calls.Load())
}

func TestOrNegate(t *testing.T) {
	oper1, oper2 := stub("a", true), stub("b", false)
	f := MustOr(oper1, oper2)

	inv := f.Negate()

	and, ok := inv.(*AndFilter)
	require.True(t, ok, "expected *AndFilter, got %T", inv)
	require.Equal(t, 2, and.Len())

	not0, ok := and.At(0).(*NotFilter)
	require.True(t, ok)
	assert.Same(t, oper1, not0.Operand())

	not1, ok := and.At(1).(*NotFilter)
	require.True(t, ok)
	assert.Same(t, oper2, not1.Operand())

	// the receiver keeps its operands
	assert.Equal(t, 2, f.Len())
	assert.Same(t, oper1, f.At(0))
}

func TestOrNegateIsComplement(t *testing.T) {
	elem := productSummary()
	for _, results := range [][]bool{nil, {true}, {false}, {true, false}, {false, false}} {
		ops := make([]Filter, len(results))
		for i, r := range results {
			ops[i] = stub("op", r)
		}
		f := MustOr(ops...)
		assert.Equal(t, !f.Contains(elem), f.Negate().Contains(elem), "operands %v", results)
	}
}

func TestOrCombine(t *testing.T) {
	t.Run("returns itself when no operands are given", func(t *testing.T) {
		f := MustOr()
		assert.Same(t, f, f.Or())
	})

	t.Run("returns itself when only nil operands are given", func(t *testing.T) {
		f := MustOr()
		assert.Same(t, f, f.Or(nil, nil))

		var typedNil *OrFilter
		assert.Same(t, f, f.Or(typedNil))
	})

	t.Run("returns the single operand when initially empty", func(t *testing.T) {
		f := MustOr()
		oper1 := stub("a", true)
		assert.Same(t, oper1, f.Or(oper1))
	})

	t.Run("returns a new Or filter when initially not empty", func(t *testing.T) {
		oper1 := stub("a", true)
		f := MustOr(oper1)
		oper2 := stub("b", true)

		result := f.Or(oper2)

		or, ok := result.(*OrFilter)
		require.True(t, ok)
		assert.NotSame(t, f, or)
		assert.NotSame(t, oper2, result)
		require.Equal(t, 2, or.Len())
		assert.Same(t, oper1, or.At(0))
		assert.Same(t, oper2, or.At(1))

		assert.Equal(t, 1, f.Len())
	})

	t.Run("returns a new Or filter when given several operands and initially empty", func(t *testing.T) {
		f := MustOr()
		a, b := stub("a", true), stub("b", true)

		or, ok := f.Or(a, nil, b).(*OrFilter)
		require.True(t, ok)
		assert.Equal(t, []Filter{a, b}, or.Operands())
		assert.Equal(t, 0, f.Len())
	})

	t.Run("flattens Or operands", func(t *testing.T) {
		a, b, c := stub("a", true), stub("b", true), stub("c", true)
		f := MustOr(a, b)

		or, ok := f.Or(MustOr(c)).(*OrFilter)
		require.True(t, ok)
		require.Equal(t, 3, or.Len())
		assert.Same(t, a, or.At(0))
		assert.Same(t, b, or.At(1))
		assert.Same(t, c, or.At(2))
	})

	t.Run("flattens only one level", func(t *testing.T) {
		a, b, c := stub("a", true), stub("b", true), stub("c", true)
		inner := MustAnd(b, MustOr(c))

		or, ok := MustOr(a).Or(inner).(*OrFilter)
		require.True(t, ok)
		require.Equal(t, 2, or.Len())
		assert.Same(t, inner, or.At(1))
	})

	t.Run("does not flatten filters of another kind", func(t *testing.T) {
		a := stub("a", true)
		and := MustAnd(stub("b", true), stub("c", true))

		or, ok := MustOr(a).Or(and).(*OrFilter)
		require.True(t, ok)
		assert.Equal(t, []Filter{a, and}, or.Operands())
	})

	t.Run("returns itself when given an empty Or", func(t *testing.T) {
		f := MustOr(stub("a", true))
		assert.Same(t, f, f.Or(MustOr()))
	})
}

func TestOperandsIsACopy(t *testing.T) {
	a, b := stub("a", true), stub("b", false)
	input := []Filter{a}
	f := MustOr(input...)

	input[0] = b
	assert.Same(t, a, f.At(0))

	ops := f.Operands()
	ops[0] = b
	assert.Same(t, a, f.At(0))
}
