package watch

import (
	"errors"
	"time"

	"availability-watcher/core/recgov"
	"availability-watcher/core/reconcile"
)

// State is the lifecycle state of a Poller.
type State int32

const (
	StateIdle State = iota
	StatePolling
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePolling:
		return "polling"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Error kinds attached to tick failures in logs and status output.
const (
	KindRemote  = "remote"
	KindData    = "data"
	KindUnknown = "unknown"
)

// ErrorKind classifies a tick failure.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, recgov.ErrRemote):
		return KindRemote
	case errors.Is(err, reconcile.ErrMissingSummary), errors.Is(err, reconcile.ErrInvalidReleaseTimestamp):
		return KindData
	default:
		return KindUnknown
	}
}

// DateResult is the outcome of one date within a tick.
type DateResult struct {
	Date         string
	Availability reconcile.EffectiveAvailability
	Err          error
}

// Report summarizes one tick.
type Report struct {
	Tick      uint64
	StartedAt time.Time
	Duration  time.Duration
	// Results holds one entry per requested date, in input order.
	// Empty when the tick was aborted.
	Results []DateResult
	// Findings are the positive results, in the order they were emitted.
	Findings []reconcile.EffectiveAvailability
	// Err is set when the whole tick was aborted.
	Err error
}

// Failed reports whether the tick was aborted.
func (r Report) Failed() bool {
	return r.Err != nil
}

// Observer receives every tick report.
type Observer interface {
	Observe(report Report)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(report Report)

// Observe calls f(report).
func (f ObserverFunc) Observe(report Report) {
	f(report)
}
