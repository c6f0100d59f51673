package watch

import (
	"fmt"
	"io"
	"sync"

	"availability-watcher/core/clock"
	"availability-watcher/core/reconcile"
)

// NotificationLayout is the timestamp format of a notification line.
const NotificationLayout = "2006-01-02 15:04:05.000"

// Sink consumes positive availability findings.
type Sink interface {
	Notify(finding reconcile.EffectiveAvailability) error
}

// WriterSink renders findings as timestamped lines:
//
//	[2024-05-09 12:00:00.000]	2024-05-10 AVAILABLE!!! Quantity: 3
type WriterSink struct {
	mu    sync.Mutex
	w     io.Writer
	clock clock.Clock
}

// NewWriterSink creates a sink writing to w, stamped with clk.
func NewWriterSink(w io.Writer, clk clock.Clock) *WriterSink {
	return &WriterSink{w: w, clock: clk}
}

// Notify writes one line for the finding.
func (s *WriterSink) Notify(finding reconcile.EffectiveAvailability) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.w, "[%s]\t%s AVAILABLE!!! Quantity: %d\n",
		s.clock.Now().Format(NotificationLayout), finding.Date, finding.Quantity)
	return err
}
