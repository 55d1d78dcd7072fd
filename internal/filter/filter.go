// Package filter implements immutable boolean filter trees.
//
// A tree is built from leaf predicates (property comparisons) and the AND, OR
// and NOT composites. Trees are evaluated with Contains, combined with
// AndFilter.And / OrFilter.Or (or the generic AndOf / OrOf) and complemented
// with Negate. No operation mutates an existing filter, so trees and
// subtrees can be shared freely between goroutines.
package filter

import (
	"reflect"

	"github.com/Geun-Oh/predix/internal/element"
)

// Kind discriminates filter variants.
type Kind string

const (
	KindAnd          Kind = "and"
	KindOr           Kind = "or"
	KindNot          Kind = "not"
	KindIsEqual      Kind = "isEqual"
	KindIsIn         Kind = "isIn"
	KindContainsText Kind = "containsText"
	KindMatches      Kind = "matches"
	KindIsGreater    Kind = "isGreater"
	KindIsLess       Kind = "isLess"
)

// Filter is a pure predicate over an element.
type Filter interface {
	// Kind returns the fixed discriminator of the variant.
	Kind() Kind

	// Contains reports whether the element satisfies the filter.
	Contains(e element.Element) bool

	// Negate returns the logical complement of the filter.
	Negate() Filter
}

// negateLeaf is the negation used by filters without an algebraic rule.
func negateLeaf(f Filter) Filter {
	return &NotFilter{operand: f}
}

// absent reports whether f is nil, including typed nil pointers.
func absent(f Filter) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
