package monitor

import (
	"sync"
	"time"
)

// RateDetector tracks match rates over a sliding window of one-second
// buckets and reports spikes.
type RateDetector struct {
	mu        sync.Mutex
	window    time.Duration
	threshold float64
	buckets   []bucket
	now       func() time.Time
}

type bucket struct {
	at    time.Time
	count int64
}

// NewRateDetector creates a detector. A spike is reported when the current
// second exceeds threshold times the average of the earlier seconds.
// Windows under a second default to 10s and non-positive thresholds to 3.
func NewRateDetector(window time.Duration, threshold float64) *RateDetector {
	if window < time.Second {
		window = 10 * time.Second
	}
	if threshold <= 0 {
		threshold = 3.0
	}
	return &RateDetector{window: window, threshold: threshold, now: time.Now}
}

// Record counts one event now and reports whether the rate is spiking.
func (r *RateDetector) Record() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.prune(now)

	sec := now.Truncate(time.Second)
	if n := len(r.buckets); n > 0 && r.buckets[n-1].at.Equal(sec) {
		r.buckets[n-1].count++
	} else {
		r.buckets = append(r.buckets, bucket{at: sec, count: 1})
	}
	return r.spiking()
}

// CurrentRate returns events per second over the window.
func (r *RateDetector) CurrentRate() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prune(r.now())
	var total int64
	for _, b := range r.buckets {
		total += b.count
	}
	return float64(total) / r.window.Seconds()
}

// prune drops buckets older than the window. Caller holds mu.
func (r *RateDetector) prune(now time.Time) {
	cutoff := now.Add(-r.window)
	i := 0
	for i < len(r.buckets) && r.buckets[i].at.Before(cutoff) {
		i++
	}
	r.buckets = r.buckets[i:]
}

// spiking compares the latest bucket to the average of the others. Caller holds mu.
func (r *RateDetector) spiking() bool {
	n := len(r.buckets)
	if n < 3 {
		return false
	}

	var sum int64
	for _, b := range r.buckets[:n-1] {
		sum += b.count
	}
	avg := float64(sum) / float64(n-1)
	if avg == 0 {
		return false
	}
	return float64(r.buckets[n-1].count) > avg*r.threshold
}
