// Package watch polls availability for a set of dates and reports the ones that
// become reservable.
//
// # Flow
//
// A Poller validates its dates (one calendar month, yyyy-MM-dd), then ticks on a
// fixed interval. Each tick fetches the monthly summary once and the daily detail
// of every date concurrently, reconciles the two and writes a line to the Sink for
// every date with a positive quantity:
//
//	[2024-05-09 12:00:00.000]	2024-05-10 AVAILABLE!!! Quantity: 3
//
// A failed monthly request skips the tick. A failed date only skips that date.
// Nothing is cached or deduplicated between ticks.
//
// # HTTP Endpoints
//
//   - GET /watch/status : Poller state, tick counters and the last findings.
//   - GET /watch/results : Outcome of every date in the last tick.
package watch
