package reconcile

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"availability-watcher/core/recgov"
)

// Reconcile combines the monthly tour summary and the daily detail of a date into
// its effective availability, evaluated at now.
//
// The daily counts are authoritative; the monthly summary only decides whether the
// secondary pool has been released yet. A nil summary fails with ErrMissingSummary.
func Reconcile(date string, summary *recgov.TourSummary, detail recgov.DailyAvailability, now time.Time) (EffectiveAvailability, error) {
	if summary == nil {
		return EffectiveAvailability{}, fmt.Errorf("%w: date %s", ErrMissingSummary, date)
	}

	includeSecondary, err := IncludeSecondary(summary, now)
	if err != nil {
		return EffectiveAvailability{}, fmt.Errorf("date %s: %w", date, err)
	}

	return EffectiveAvailability{
		Date:             date,
		Quantity:         Quantity(detail, includeSecondary),
		IncludeSecondary: includeSecondary,
	}, nil
}

// IncludeSecondary applies the release rule: the secondary pool counts once now is at
// or after the summary's next release timestamp. Without a timestamp the inventory is
// treated as fully released, which is what the API has been observed to mean.
func IncludeSecondary(summary *recgov.TourSummary, now time.Time) (bool, error) {
	if summary == nil || summary.NextReleaseTimestamp == nil {
		return true, nil
	}
	raw := strings.TrimSpace(*summary.NextReleaseTimestamp)
	if raw == "" {
		return true, nil
	}

	release, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return false, fmt.Errorf("%w %q: %v", ErrInvalidReleaseTimestamp, raw, err)
	}
	return !now.Before(release), nil
}

// Quantity computes the net reservable count of a daily detail record.
func Quantity(detail recgov.DailyAvailability, includeSecondary bool) int {
	quantity := detail.InventoryCount.Any - detail.ReservationCount.Any
	if includeSecondary {
		quantity += detail.InventoryCount.AnySecondary - detail.ReservationCount.AnySecondary
	}
	return quantity
}

// LookupSummary returns the tour summary of a date from the monthly response,
// or nil if either the date or the tour is absent.
func LookupSummary(monthly *recgov.MonthlyAvailability, date string, tourID int) *recgov.TourSummary {
	if monthly == nil {
		return nil
	}
	day, ok := monthly.Dates[date]
	if !ok {
		return nil
	}
	tour, ok := day.Tours[strconv.Itoa(tourID)]
	if !ok {
		return nil
	}
	return &tour
}
