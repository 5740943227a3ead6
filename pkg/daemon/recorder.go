package daemon

import (
	"sync"
	"time"
)

// ApplyRecorder keeps the last N apply times. Its main job is suspend
// detection: X servers reset gamma tables on resume, so a long gap
// between applies means the next one must not be skipped as redundant.
type ApplyRecorder struct {
	maxRecordCount int
	applyTimes     []time.Time
	mu             sync.Mutex
}

// NewApplyRecorder returns a recorder keeping at most maxRecordCount
// apply times.
func NewApplyRecorder(maxRecordCount int) *ApplyRecorder {
	return &ApplyRecorder{
		maxRecordCount: maxRecordCount,
		applyTimes:     make([]time.Time, 0, maxRecordCount),
	}
}

// AddRecordNow records an apply at the current time.
func (r *ApplyRecorder) AddRecordNow() {
	r.AddRecord(time.Now())
}

// AddRecord records an apply at t.
func (r *ApplyRecorder) AddRecord(t time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.applyTimes) >= r.maxRecordCount {
		r.applyTimes = r.applyTimes[1:]
	}
	// Round strips the monotonic clock reading, so gaps measured across
	// a system sleep come out wall-clock accurate.
	r.applyTimes = append(r.applyTimes, t.Round(0))
}

// LastRecord returns the most recent apply time, or the zero time when
// nothing was recorded yet.
func (r *ApplyRecorder) LastRecord() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.applyTimes) == 0 {
		return time.Time{}
	}
	return r.applyTimes[len(r.applyTimes)-1]
}

// GapExceeds reports whether more than limit has passed since the last
// recorded apply. A recorder with no records yet reports no gap.
func (r *ApplyRecorder) GapExceeds(limit time.Duration) bool {
	last := r.LastRecord()
	if last.IsZero() {
		return false
	}
	return time.Since(last) > limit
}

// Records returns a copy of the recorded apply times, oldest first.
func (r *ApplyRecorder) Records() []time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Time(nil), r.applyTimes...)
}
