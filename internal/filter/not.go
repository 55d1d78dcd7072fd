package filter

import (
	"github.com/Geun-Oh/predix/internal/element"
)

// NotFilter contains exactly the elements its operand does not contain.
type NotFilter struct {
	operand Filter
}

// NewNot creates a NotFilter. Returns ErrMissingOperand if operand is nil.
func NewNot(operand Filter) (*NotFilter, error) {
	if absent(operand) {
		return nil, ErrMissingOperand
	}
	return &NotFilter{operand: operand}, nil
}

// MustNot is like NewNot but panics on error.
func MustNot(operand Filter) *NotFilter {
	f, err := NewNot(operand)
	if err != nil {
		panic(err)
	}
	return f
}

// Operand returns the negated filter.
func (f *NotFilter) Operand() Filter { return f.operand }

// Kind returns KindNot.
func (f *NotFilter) Kind() Kind { return KindNot }

// Contains returns the complement of the operand's result.
func (f *NotFilter) Contains(e element.Element) bool {
	return !f.operand.Contains(e)
}

// Negate returns the operand itself.
func (f *NotFilter) Negate() Filter {
	return f.operand
}

func (f *NotFilter) String() string {
	return "(not " + describe(f.operand) + ")"
}
