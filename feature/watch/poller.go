package watch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"availability-watcher/core/clock"
	"availability-watcher/core/recgov"
	"availability-watcher/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrNotValidated is returned when polling is attempted without a valid date set.
	ErrNotValidated = errors.New("no validated dates to poll")
	// ErrNotIdle is returned when Run is called on a poller that already ran.
	ErrNotIdle = errors.New("poller is not idle")
)

// Target identifies the facility and tour being watched.
type Target struct {
	FacilityID int
	TourID     int
}

// Poller queries availability for a date set on a fixed interval and reports
// every date with a positive effective quantity to its sink.
type Poller struct {
	client    recgov.Client
	sink      Sink
	clock     clock.Clock
	logger    *zap.Logger
	cfg       Config
	target    Target
	observers []Observer

	state atomic.Int32
	ticks atomic.Uint64

	mu    sync.RWMutex
	dates DateSet
}

// NewPoller creates an idle poller.
func NewPoller(client recgov.Client, sink Sink, clk clock.Clock, logger *zap.Logger, cfg Config, target Target, observers ...Observer) *Poller {
	return &Poller{
		client:    client,
		sink:      sink,
		clock:     clk,
		logger:    logger,
		cfg:       cfg,
		target:    target,
		observers: observers,
	}
}

// State returns the current lifecycle state.
func (p *Poller) State() State {
	return State(p.state.Load())
}

// Ticks returns the number of ticks started so far.
func (p *Poller) Ticks() uint64 {
	return p.ticks.Load()
}

// Dates returns the validated dates, or nil before validation.
func (p *Poller) Dates() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.dates.Len() == 0 {
		return nil
	}
	return p.dates.Strings()
}

// Validate checks the raw dates and stores them for polling.
// A validation failure terminates the poller.
func (p *Poller) Validate(raw []string) (DateSet, error) {
	dates, err := ValidateDates(raw)
	if err != nil {
		p.state.Store(int32(StateTerminated))
		return DateSet{}, err
	}

	p.mu.Lock()
	p.dates = dates
	p.mu.Unlock()
	return dates, nil
}

// Run validates raw and polls until ctx is cancelled. The first tick starts
// immediately. Tick failures are logged and never stop the loop.
func (p *Poller) Run(ctx context.Context, raw []string) error {
	if _, err := p.Validate(raw); err != nil {
		return err
	}
	return p.Poll(ctx)
}

// Poll runs the loop over the already validated dates.
func (p *Poller) Poll(ctx context.Context) error {
	p.mu.RLock()
	validated := p.dates.Len() > 0
	p.mu.RUnlock()
	if !validated {
		p.state.Store(int32(StateTerminated))
		return ErrNotValidated
	}
	if err := p.cfg.Validate(); err != nil {
		p.state.Store(int32(StateTerminated))
		return err
	}
	if !p.state.CompareAndSwap(int32(StateIdle), int32(StatePolling)) {
		return fmt.Errorf("%w: %s", ErrNotIdle, p.State())
	}
	defer p.state.Store(int32(StateTerminated))

	p.logger.Info("Polling started",
		zap.Strings("dates", p.Dates()),
		zap.Int("facility_id", p.target.FacilityID),
		zap.Int("tour_id", p.target.TourID),
		zap.Duration("interval", p.cfg.Interval))

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		p.Tick(ctx)

		select {
		case <-ctx.Done():
		case <-ticker.C:
			if ctx.Err() == nil {
				continue
			}
		}
		p.logger.Info("Polling stopped", zap.Uint64("ticks", p.ticks.Load()))
		return nil
	}
}

// Tick performs one availability check: one monthly request, then one daily
// request per date. Positive findings go to the sink in input order once every
// date has been resolved.
func (p *Poller) Tick(ctx context.Context) Report {
	report := Report{
		Tick:      p.ticks.Add(1),
		StartedAt: p.clock.Now(),
	}
	defer func() {
		report.Duration = p.clock.Now().Sub(report.StartedAt)
		p.publish(report)
	}()

	p.mu.RLock()
	dates := p.dates
	p.mu.RUnlock()
	if dates.Len() == 0 {
		report.Err = ErrNotValidated
		return report
	}

	l := p.logger.With(zap.Uint64("tick", report.Tick))

	monthly, err := p.client.FetchMonthly(ctx, p.target.FacilityID, dates.Year(), dates.Month())
	if err != nil {
		failureLog(ctx, l)("Monthly availability check failed", zap.String("kind", ErrorKind(err)), zap.Error(err))
		report.Err = err
		return report
	}

	keys := dates.Strings()
	results := make([]DateResult, len(keys))

	g := new(errgroup.Group)
	if p.cfg.MaxConcurrency > 0 {
		g.SetLimit(p.cfg.MaxConcurrency)
	}
	for i, date := range keys {
		i, date := i, date
		g.Go(func() error {
			avail, err := p.checkDate(ctx, l, monthly, date)
			results[i] = DateResult{Date: date, Availability: avail, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	report.Results = results
	logFailure := failureLog(ctx, l)
	for _, res := range results {
		if res.Err != nil {
			logFailure("Date availability check failed",
				zap.String("date", res.Date),
				zap.String("kind", ErrorKind(res.Err)),
				zap.Error(res.Err))
			continue
		}
		if !res.Availability.Available() {
			continue
		}

		l.Info("Availability found",
			zap.String("date", res.Date),
			zap.Int("quantity", res.Availability.Quantity))
		if err := p.sink.Notify(res.Availability); err != nil {
			l.Error("Failed to emit notification", zap.String("date", res.Date), zap.Error(err))
		}
		report.Findings = append(report.Findings, res.Availability)
	}

	return report
}

func (p *Poller) checkDate(ctx context.Context, l *zap.Logger, monthly *recgov.MonthlyAvailability, date string) (reconcile.EffectiveAvailability, error) {
	summary := reconcile.LookupSummary(monthly, date, p.target.TourID)
	if summary == nil {
		return reconcile.EffectiveAvailability{}, fmt.Errorf("%w for %s (tour %d)", reconcile.ErrMissingSummary, date, p.target.TourID)
	}

	details, err := p.client.FetchDaily(ctx, p.target.FacilityID, date)
	if err != nil {
		return reconcile.EffectiveAvailability{}, err
	}
	if len(details) == 0 {
		return reconcile.EffectiveAvailability{}, &recgov.RemoteError{Op: "daily", Err: recgov.ErrEmptyBody}
	}
	if len(details) > 1 {
		l.Debug("Ignoring extra daily records", zap.String("date", date), zap.Int("records", len(details)))
	}

	return reconcile.Reconcile(date, summary, details[0], p.clock.Now())
}

// failureLog picks the level for tick failures. Once ctx is done the failures
// come from shutdown, not from the API.
func failureLog(ctx context.Context, l *zap.Logger) func(string, ...zap.Field) {
	if ctx.Err() != nil {
		return l.Debug
	}
	return l.Warn
}

func (p *Poller) publish(report Report) {
	for _, o := range p.observers {
		o.Observe(report)
	}
}
