// Package recgov is the client for the timed-entry reservation availability API.
//
// Two read-only endpoints are exposed through the Client interface:
//
//   - FetchMonthly: the monthly summary view, keyed by local date and then by tour id.
//     It lags behind the real inventory but carries the next release timestamp.
//   - FetchDaily: the daily detail records with primary (ANY) and secondary
//     (ANY_SECONDARY) inventory and reservation counts. Only the first record is
//     authoritative.
//
// # Errors
//
// Network failures, non-2xx statuses and undecodable or empty bodies are all returned
// as *RemoteError, which matches ErrRemote with errors.Is. The poller treats every
// RemoteError as retryable.
//
// # Timeouts
//
// The client builds its own transport with dial, TLS and response-header timeouts,
// plus an overall per-request timeout (TimeoutSeconds). Nothing is cached.
//
// # Usage
//
//	client, err := recgov.NewClient(cfg.Recgov)
//	month, err := client.FetchMonthly(ctx, cfg.Recgov.FacilityID, 2024, time.May)
package recgov
