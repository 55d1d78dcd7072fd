package filter

import (
	"github.com/Geun-Oh/predix/internal/element"
)

// ContextBuffer provides grep-like --before / --after context records.
// It wraps a filter and buffers records to emit context around matches.
// A ContextBuffer is stateful and must not be shared between goroutines.
type ContextBuffer struct {
	filter     Filter
	beforeN    int
	afterN     int
	ringBuf    []element.Record // circular buffer of recent records
	ringPos    int
	lastEmit   int // ringPos of the last emitted record
	afterCount int // remaining "after" records to emit
	matched    bool
}

// NewContextBuffer creates a context-aware filter wrapper.
// before is the number of records before a match to include.
// after is the number of records after a match to include.
func NewContextBuffer(f Filter, before, after int) *ContextBuffer {
	if before < 0 {
		before = 0
	}
	if after < 0 {
		after = 0
	}
	return &ContextBuffer{
		filter:  f,
		beforeN: before,
		afterN:  after,
		ringBuf: make([]element.Record, before+1),
	}
}

// Process evaluates a record and returns the records to emit, including
// context. Records are never emitted twice. Returns nil if nothing should
// be emitted yet.
func (cb *ContextBuffer) Process(r *element.Record) []element.Record {
	isMatch := cb.filter.Contains(r)
	cb.matched = isMatch

	cb.ringBuf[cb.ringPos%len(cb.ringBuf)] = *r
	cb.ringPos++

	if isMatch {
		start := cb.ringPos - cb.beforeN - 1
		if start < cb.lastEmit {
			start = cb.lastEmit
		}

		result := make([]element.Record, 0, cb.ringPos-start)
		for i := start; i < cb.ringPos-1; i++ {
			result = append(result, cb.ringBuf[i%len(cb.ringBuf)])
		}
		result = append(result, *r)

		cb.lastEmit = cb.ringPos
		cb.afterCount = cb.afterN
		return result
	}

	if cb.afterCount > 0 {
		cb.afterCount--
		cb.lastEmit = cb.ringPos
		return []element.Record{*r}
	}

	return nil
}

// Matched reports whether the last processed record satisfied the filter.
func (cb *ContextBuffer) Matched() bool {
	return cb.matched
}

// Filter returns the wrapped filter.
func (cb *ContextBuffer) Filter() Filter {
	return cb.filter
}
