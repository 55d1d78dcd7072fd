package filter

import (
	"sync/atomic"

	"github.com/Geun-Oh/predix/internal/element"
)

// stubFilter is a leaf with a fixed result that counts its evaluations.
type stubFilter struct {
	name   string
	result bool
	calls  atomic.Int64
}

func stub(name string, result bool) *stubFilter {
	return &stubFilter{name: name, result: result}
}

func (f *stubFilter) Kind() Kind { return "stub" }

func (f *stubFilter) Contains(element.Element) bool {
	f.calls.Add(1)
	return f.result
}

func (f *stubFilter) Negate() Filter { return negateLeaf(f) }

func (f *stubFilter) String() string { return f.name }

// fakeAnd claims the "and" kind without being one of the package's composites.
type fakeAnd struct{}

func (fakeAnd) Kind() Kind                    { return KindAnd }
func (fakeAnd) Contains(element.Element) bool { return true }
func (f fakeAnd) Negate() Filter              { return negateLeaf(f) }

func productSummary() *element.Record {
	return element.NewRecord(map[string]any{
		"name":    "A",
		"sales":   12000.0,
		"inStock": true,
	})
}
