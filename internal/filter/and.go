package filter

import (
	"github.com/Geun-Oh/predix/internal/element"
)

// AndFilter contains an element when every operand contains it.
// An AndFilter without operands contains every element.
type AndFilter struct {
	composite
}

// NewAnd creates an AndFilter over the given operands.
// Returns an error if any operand is nil.
func NewAnd(operands ...Filter) (*AndFilter, error) {
	c, err := newComposite(operands)
	if err != nil {
		return nil, err
	}
	return &AndFilter{composite: c}, nil
}

// MustAnd is like NewAnd but panics on error.
func MustAnd(operands ...Filter) *AndFilter {
	f, err := NewAnd(operands...)
	if err != nil {
		panic(err)
	}
	return f
}

// Kind returns KindAnd.
func (f *AndFilter) Kind() Kind { return KindAnd }

// Contains evaluates operands in order and stops at the first one that
// does not contain the element.
func (f *AndFilter) Contains(e element.Element) bool {
	return f.evaluate(e, true)
}

// Negate returns an OrFilter of the negated operands.
func (f *AndFilter) Negate() Filter {
	return &OrFilter{composite: f.negated()}
}

// And returns a filter containing the elements contained by f and by every
// given filter. Nil filters are ignored and AndFilter arguments are merged
// into the operand list. f itself is never modified: calling And without
// usable arguments returns f, and calling it on an empty AndFilter with a
// single filter returns that filter.
func (f *AndFilter) And(filters ...Filter) Filter {
	return f.combine(f, filters, func(operands []Filter) Filter {
		return &AndFilter{composite: composite{operands: operands}}
	})
}

func (f *AndFilter) String() string {
	return f.format(KindAnd)
}
