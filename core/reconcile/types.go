package reconcile

import "errors"

var (
	// ErrMissingSummary reports a requested date without a monthly entry for the tour.
	// It points at a caller or configuration mistake (date outside the queried month,
	// wrong facility/tour pair) rather than at a transport failure.
	ErrMissingSummary = errors.New("missing monthly summary")
	// ErrInvalidReleaseTimestamp reports a next release timestamp that is not RFC 3339.
	ErrInvalidReleaseTimestamp = errors.New("invalid next release timestamp")
)

// EffectiveAvailability is the reservable quantity of one date, derived from the
// monthly summary and the daily detail. It is recomputed on every tick.
type EffectiveAvailability struct {
	// Date is the yyyy-MM-dd date the quantity applies to.
	Date string `json:"date"`

	// Quantity is the net reservable count. It may be zero or negative.
	Quantity int `json:"quantity"`

	// IncludeSecondary records whether the secondary pool was counted.
	IncludeSecondary bool `json:"include_secondary"`
}

// Available reports whether the date is actionable.
func (e EffectiveAvailability) Available() bool {
	return e.Quantity > 0
}
