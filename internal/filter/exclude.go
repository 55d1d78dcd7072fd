package filter

// Exclude returns a filter that rejects elements whose property contains any
// of the patterns. It is the negation of an OR of ContainsText filters, so
// the result is an AndFilter of NotFilters (or a single NotFilter for one
// pattern). With no patterns every element passes.
func Exclude(property string, patterns ...string) Filter {
	texts := make([]Filter, len(patterns))
	for i, p := range patterns {
		texts[i] = NewContainsText(property, p)
	}
	return OrOf(texts...).Negate()
}
