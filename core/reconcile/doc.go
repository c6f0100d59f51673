// Package reconcile derives the true reservable quantity of a date from two
// inconsistent sources of the availability API.
//
// The monthly summary view is cheap to query for a whole month but its counts lag
// behind reality. The daily view is accurate but does not say whether the secondary
// ticket pool has been released. Reconcile combines them:
//
//	includeSecondary = now >= summary.next_release_timestamp   (true without a timestamp)
//	quantity = (inventory.ANY - reservation.ANY)
//	         + (includeSecondary ? inventory.ANY_SECONDARY - reservation.ANY_SECONDARY : 0)
//
// # Purity
//
// Every function here is pure: the evaluation instant is an argument, so calling
// Reconcile twice with the same inputs yields the same EffectiveAvailability.
//
// # Errors
//
//   - ErrMissingSummary: the date or tour is absent from the monthly response.
//   - ErrInvalidReleaseTimestamp: the release timestamp cannot be parsed.
//
// Both are data-consistency errors; the poller logs them apart from transport failures.
package reconcile
