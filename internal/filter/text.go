package filter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Geun-Oh/predix/internal/element"
)

// ContainsTextFilter matches elements whose property text contains a substring.
type ContainsTextFilter struct {
	property string
	text     string
}

// NewContainsText creates a filter that matches when the property contains text.
func NewContainsText(property, text string) *ContainsTextFilter {
	return &ContainsTextFilter{property: property, text: text}
}

// Kind returns KindContainsText.
func (f *ContainsTextFilter) Kind() Kind { return KindContainsText }

// Contains returns true if the property, rendered as text, contains the substring.
func (f *ContainsTextFilter) Contains(e element.Element) bool {
	v, ok := textProperty(e, f.property)
	return ok && strings.Contains(v, f.text)
}

// Negate wraps the filter in a NotFilter.
func (f *ContainsTextFilter) Negate() Filter { return negateLeaf(f) }

// Equal reports whether other looks for the same text in the same property.
func (f *ContainsTextFilter) Equal(other Filter) bool {
	o, ok := other.(*ContainsTextFilter)
	return ok && *o == *f
}

func (f *ContainsTextFilter) String() string {
	return fmt.Sprintf("%s contains %q", f.property, f.text)
}

// MatchesFilter matches elements whose property text matches a pre-compiled
// regular expression. The regex is compiled once at construction.
type MatchesFilter struct {
	property string
	pattern  string
	re       *regexp.Regexp
}

// NewMatches creates a filter with a pre-compiled regex pattern.
// Returns an error wrapping ErrInvalidPattern if the pattern is invalid.
func NewMatches(property, pattern string) (*MatchesFilter, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}
	return &MatchesFilter{property: property, pattern: pattern, re: re}, nil
}

// Kind returns KindMatches.
func (f *MatchesFilter) Kind() Kind { return KindMatches }

// Contains returns true if the property text matches the regex.
func (f *MatchesFilter) Contains(e element.Element) bool {
	v, ok := textProperty(e, f.property)
	return ok && f.re.MatchString(v)
}

// Negate wraps the filter in a NotFilter.
func (f *MatchesFilter) Negate() Filter { return negateLeaf(f) }

// Equal reports whether other applies the same pattern to the same property.
func (f *MatchesFilter) Equal(other Filter) bool {
	o, ok := other.(*MatchesFilter)
	return ok && o.property == f.property && o.pattern == f.pattern
}

func (f *MatchesFilter) String() string {
	return fmt.Sprintf("%s ~ /%s/", f.property, f.pattern)
}

func textProperty(e element.Element, property string) (string, bool) {
	v, ok := e.Property(property)
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}
