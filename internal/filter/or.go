package filter

import (
	"github.com/Geun-Oh/predix/internal/element"
)

// OrFilter contains an element when at least one operand contains it.
// An OrFilter without operands contains nothing.
type OrFilter struct {
	composite
}

// NewOr creates an OrFilter over the given operands.
// Returns an error if any operand is nil.
func NewOr(operands ...Filter) (*OrFilter, error) {
	c, err := newComposite(operands)
	if err != nil {
		return nil, err
	}
	return &OrFilter{composite: c}, nil
}

// MustOr is like NewOr but panics on error.
func MustOr(operands ...Filter) *OrFilter {
	f, err := NewOr(operands...)
	if err != nil {
		panic(err)
	}
	return f
}

// Kind returns KindOr.
func (f *OrFilter) Kind() Kind { return KindOr }

// Contains evaluates operands in order and stops at the first one that
// contains the element.
func (f *OrFilter) Contains(e element.Element) bool {
	return f.evaluate(e, false)
}

// Negate returns an AndFilter of the negated operands.
func (f *OrFilter) Negate() Filter {
	return &AndFilter{composite: f.negated()}
}

// Or returns a filter containing the elements contained by f or by any of
// the given filters. It follows the same rules as AndFilter.And.
func (f *OrFilter) Or(filters ...Filter) Filter {
	return f.combine(f, filters, func(operands []Filter) Filter {
		return &OrFilter{composite: composite{operands: operands}}
	})
}

func (f *OrFilter) String() string {
	return f.format(KindOr)
}
