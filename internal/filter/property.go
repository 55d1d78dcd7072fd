package filter

import (
	"fmt"
	"strings"

	"github.com/Geun-Oh/predix/internal/element"
)

// IsEqualFilter matches elements whose property equals a value.
type IsEqualFilter struct {
	property string
	value    any
}

// NewIsEqual creates a filter matching elements where property == value.
func NewIsEqual(property string, value any) *IsEqualFilter {
	return &IsEqualFilter{property: property, value: value}
}

// Property returns the compared property name.
func (f *IsEqualFilter) Property() string { return f.property }

// Value returns the compared value.
func (f *IsEqualFilter) Value() any { return f.value }

// Kind returns KindIsEqual.
func (f *IsEqualFilter) Kind() Kind { return KindIsEqual }

// Contains returns true if the element has the property and it equals the value.
func (f *IsEqualFilter) Contains(e element.Element) bool {
	v, ok := e.Property(f.property)
	return ok && element.Equal(v, f.value)
}

// Negate wraps the filter in a NotFilter.
func (f *IsEqualFilter) Negate() Filter { return negateLeaf(f) }

// Equal reports whether other compares the same property to the same value.
func (f *IsEqualFilter) Equal(other Filter) bool {
	o, ok := other.(*IsEqualFilter)
	return ok && o.property == f.property && element.Equal(o.value, f.value)
}

func (f *IsEqualFilter) String() string {
	return f.property + " = " + literal(f.value)
}

// IsInFilter matches elements whose property equals any of a set of values.
type IsInFilter struct {
	property string
	values   []any
}

// NewIsIn creates a filter matching elements whose property is one of values.
// Example: NewIsIn("level", "ERROR", "WARN")
func NewIsIn(property string, values ...any) *IsInFilter {
	vs := make([]any, len(values))
	copy(vs, values)
	return &IsInFilter{property: property, values: vs}
}

// Kind returns KindIsIn.
func (f *IsInFilter) Kind() Kind { return KindIsIn }

// Contains returns true if the property value is in the set.
// An empty set contains nothing.
func (f *IsInFilter) Contains(e element.Element) bool {
	v, ok := e.Property(f.property)
	if !ok {
		return false
	}
	for _, want := range f.values {
		if element.Equal(v, want) {
			return true
		}
	}
	return false
}

// Negate wraps the filter in a NotFilter.
func (f *IsInFilter) Negate() Filter { return negateLeaf(f) }

// Equal reports whether other checks the same property against the same values.
func (f *IsInFilter) Equal(other Filter) bool {
	o, ok := other.(*IsInFilter)
	if !ok || o.property != f.property || len(o.values) != len(f.values) {
		return false
	}
	for i := range f.values {
		if !element.Equal(o.values[i], f.values[i]) {
			return false
		}
	}
	return true
}

func (f *IsInFilter) String() string {
	parts := make([]string, len(f.values))
	for i, v := range f.values {
		parts[i] = literal(v)
	}
	return f.property + " in (" + strings.Join(parts, ", ") + ")"
}

// literal renders a comparison value: strings quoted, everything else as printed.
func literal(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", t)
	default:
		return fmt.Sprint(t)
	}
}
