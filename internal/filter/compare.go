package filter

import (
	"github.com/Geun-Oh/predix/internal/element"
)

// IsGreaterFilter matches elements whose property orders after a value.
type IsGreaterFilter struct {
	property string
	value    any
}

// NewIsGreater creates a filter matching elements where property > value.
func NewIsGreater(property string, value any) *IsGreaterFilter {
	return &IsGreaterFilter{property: property, value: value}
}

// Kind returns KindIsGreater.
func (f *IsGreaterFilter) Kind() Kind { return KindIsGreater }

// Contains returns false when the property is missing or not comparable.
func (f *IsGreaterFilter) Contains(e element.Element) bool {
	c, ok := compareProperty(e, f.property, f.value)
	return ok && c > 0
}

// Negate wraps the filter in a NotFilter.
func (f *IsGreaterFilter) Negate() Filter { return negateLeaf(f) }

// Equal reports whether other is the same comparison.
func (f *IsGreaterFilter) Equal(other Filter) bool {
	o, ok := other.(*IsGreaterFilter)
	return ok && o.property == f.property && element.Equal(o.value, f.value)
}

func (f *IsGreaterFilter) String() string {
	return f.property + " > " + literal(f.value)
}

// IsLessFilter matches elements whose property orders before a value.
type IsLessFilter struct {
	property string
	value    any
}

// NewIsLess creates a filter matching elements where property < value.
func NewIsLess(property string, value any) *IsLessFilter {
	return &IsLessFilter{property: property, value: value}
}

// Kind returns KindIsLess.
func (f *IsLessFilter) Kind() Kind { return KindIsLess }

// Contains returns false when the property is missing or not comparable.
func (f *IsLessFilter) Contains(e element.Element) bool {
	c, ok := compareProperty(e, f.property, f.value)
	return ok && c < 0
}

// Negate wraps the filter in a NotFilter.
func (f *IsLessFilter) Negate() Filter { return negateLeaf(f) }

// Equal reports whether other is the same comparison.
func (f *IsLessFilter) Equal(other Filter) bool {
	o, ok := other.(*IsLessFilter)
	return ok && o.property == f.property && element.Equal(o.value, f.value)
}

func (f *IsLessFilter) String() string {
	return f.property + " < " + literal(f.value)
}

func compareProperty(e element.Element, property string, value any) (int, bool) {
	v, ok := e.Property(property)
	if !ok || v == nil {
		return 0, false
	}
	return element.Compare(v, value)
}
