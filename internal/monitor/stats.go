// Package monitor collects statistics and alerts for a filtering run.
package monitor

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Stats collects pipeline processing metrics in a lock-free manner.
type Stats struct {
	total    atomic.Uint64
	matched  atomic.Uint64
	emitted  atomic.Uint64
	rejected atomic.Uint64
	start    time.Time
	now      func() time.Time
}

// NewStats creates a new statistics collector.
func NewStats() *Stats {
	return newStatsWithClock(time.Now)
}

func newStatsWithClock(now func() time.Time) *Stats {
	return &Stats{start: now(), now: now}
}

// RecordElement counts an element that reached the filter.
func (s *Stats) RecordElement() {
	s.total.Add(1)
}

// RecordMatch counts an element accepted by the filter.
func (s *Stats) RecordMatch() {
	s.matched.Add(1)
}

// RecordEmit counts an element written to the sinks, context included.
func (s *Stats) RecordEmit() {
	s.emitted.Add(1)
}

// RecordRejected counts an input line that could not be decoded.
func (s *Stats) RecordRejected() {
	s.rejected.Add(1)
}

// Total returns the number of evaluated elements.
func (s *Stats) Total() uint64 { return s.total.Load() }

// Matched returns the number of elements accepted by the filter.
func (s *Stats) Matched() uint64 { return s.matched.Load() }

// Emitted returns the number of elements written, context included.
func (s *Stats) Emitted() uint64 { return s.emitted.Load() }

// Rejected returns the number of undecodable input lines.
func (s *Stats) Rejected() uint64 { return s.rejected.Load() }

// Elapsed returns the time since monitoring started.
func (s *Stats) Elapsed() time.Duration {
	return s.now().Sub(s.start)
}

// Rate returns evaluated elements per second.
func (s *Stats) Rate() float64 {
	elapsed := s.Elapsed().Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(s.Total()) / elapsed
}

// Summary returns a formatted summary string.
func (s *Stats) Summary() string {
	total := s.Total()
	matched := s.Matched()

	matchRate := float64(0)
	if total > 0 {
		matchRate = float64(matched) / float64(total) * 100
	}

	return fmt.Sprintf(
		"── Summary ──\n"+
			"  Evaluated: %d\n"+
			"  Matched:   %d (%.1f%%)\n"+
			"  Emitted:   %d\n"+
			"  Rejected:  %d\n"+
			"  Duration:  %s\n"+
			"  Rate:      %.0f elements/s\n"+
			"─────────────",
		total, matched, matchRate,
		s.Emitted(),
		s.Rejected(),
		s.Elapsed().Round(time.Millisecond),
		s.Rate(),
	)
}
