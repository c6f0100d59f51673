package recgov

import (
	"errors"
	"fmt"
)

var (
	// ErrRemote matches every RemoteError.
	ErrRemote = errors.New("remote availability error")
	// ErrEmptyBody reports a response that decoded to nothing usable.
	ErrEmptyBody = errors.New("empty response body")
)

// RemoteError covers network failures, non-2xx statuses and malformed or absent bodies.
// Callers treat all of them the same way: the request is retried on the next tick.
type RemoteError struct {
	// Op is the endpoint name (monthly, daily).
	Op string
	// URL is the requested URL.
	URL string
	// StatusCode is the HTTP status, or zero when no response was received.
	StatusCode int
	Err        error
}

func (e *RemoteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s availability request %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s availability request %s: %v", e.Op, e.URL, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrRemote.
func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}
