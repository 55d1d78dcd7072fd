package filter

import "reflect"

// Equal reports whether two filters have the same structure: the same kind,
// and for composites the pairwise equal operands in the same order.
// Leaves compare through their own Equal method when they have one and by
// identity otherwise.
func Equal(a, b Filter) bool {
	if absent(a) || absent(b) {
		return absent(a) && absent(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}

	switch x := a.(type) {
	case *NotFilter:
		y, ok := b.(*NotFilter)
		return ok && Equal(x.operand, y.operand)
	case operandLister:
		y, ok := b.(operandLister)
		if !ok {
			return false
		}
		xs, ys := x.operandList(), y.operandList()
		if len(xs) != len(ys) {
			return false
		}
		for i := range xs {
			if !Equal(xs[i], ys[i]) {
				return false
			}
		}
		return true
	case interface{ Equal(Filter) bool }:
		return x.Equal(b)
	}

	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}
