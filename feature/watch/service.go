package watch

import (
	"time"

	"availability-watcher/core/reconcile"

	"go.uber.org/zap"
)

// Status is the read-only view of a running watch.
type Status struct {
	State         string                            `json:"state"`
	Dates         []string                          `json:"dates"`
	Ticks         uint64                            `json:"ticks"`
	FailedTicks   uint64                            `json:"failed_ticks"`
	LastTickAt    *time.Time                        `json:"last_tick_at,omitempty"`
	LastError     string                            `json:"last_error,omitempty"`
	LastErrorKind string                            `json:"last_error_kind,omitempty"`
	Findings      []reconcile.EffectiveAvailability `json:"findings"`
	LastFindingAt *time.Time                        `json:"last_finding_at,omitempty"`
}

// DateStatus is the last known outcome of one date.
type DateStatus struct {
	Date             string `json:"date"`
	Quantity         int    `json:"quantity"`
	IncludeSecondary bool   `json:"include_secondary"`
	Available        bool   `json:"available"`
	Error            string `json:"error,omitempty"`
	ErrorKind        string `json:"error_kind,omitempty"`
}

// Service exposes the poller state to HTTP handlers.
type Service struct {
	poller   *Poller
	recorder *Recorder
	logger   *zap.Logger
}

// NewService creates a new watch service.
func NewService(poller *Poller, recorder *Recorder, logger *zap.Logger) *Service {
	return &Service{
		poller:   poller,
		recorder: recorder,
		logger:   logger,
	}
}

// Status returns the poller state and the outcome of the last tick.
func (s *Service) Status() Status {
	snap := s.recorder.Snapshot()
	st := Status{
		State:       s.poller.State().String(),
		Dates:       s.poller.Dates(),
		Ticks:       snap.Ticks,
		FailedTicks: snap.FailedTicks,
		Findings:    []reconcile.EffectiveAvailability{},
	}
	if st.Dates == nil {
		st.Dates = []string{}
	}
	if !snap.LastFindingAt.IsZero() {
		at := snap.LastFindingAt
		st.LastFindingAt = &at
	}

	last := snap.Last
	if last == nil {
		return st
	}
	at := last.StartedAt
	st.LastTickAt = &at
	if last.Err != nil {
		st.LastError = last.Err.Error()
		st.LastErrorKind = ErrorKind(last.Err)
	}
	st.Findings = append(st.Findings, last.Findings...)
	return st
}

// Results returns every date of the last completed tick, including failed and
// unavailable ones.
func (s *Service) Results() []DateStatus {
	snap := s.recorder.Snapshot()
	if snap.Last == nil {
		return []DateStatus{}
	}

	out := make([]DateStatus, 0, len(snap.Last.Results))
	for _, res := range snap.Last.Results {
		ds := DateStatus{
			Date:             res.Date,
			Quantity:         res.Availability.Quantity,
			IncludeSecondary: res.Availability.IncludeSecondary,
			Available:        res.Availability.Available(),
		}
		if res.Err != nil {
			ds.Error = res.Err.Error()
			ds.ErrorKind = ErrorKind(res.Err)
		}
		out = append(out, ds)
	}
	return out
}
