package watch

import (
	"sync"
	"time"
)

// Recorder is an Observer that keeps the latest tick report for readers on
// other goroutines.
type Recorder struct {
	mu            sync.RWMutex
	last          *Report
	ticks         uint64
	failedTicks   uint64
	lastFindingAt time.Time
}

// Snapshot is a point-in-time copy of a Recorder.
type Snapshot struct {
	Ticks         uint64
	FailedTicks   uint64
	Last          *Report
	LastFindingAt time.Time
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Observe records report.
func (r *Recorder) Observe(report Report) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ticks++
	if report.Failed() {
		r.failedTicks++
	}
	if len(report.Findings) > 0 {
		r.lastFindingAt = report.StartedAt
	}
	r.last = &report
}

// Snapshot returns the current state.
func (r *Recorder) Snapshot() Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := Snapshot{
		Ticks:         r.ticks,
		FailedTicks:   r.failedTicks,
		LastFindingAt: r.lastFindingAt,
	}
	if r.last != nil {
		last := *r.last
		s.Last = &last
	}
	return s
}
