package pulse

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes the bulk pipeline branches on.
var (
	// ErrInvalidInput indicates a request was rejected before any
	// network call (e.g. a location ID that is not an integer).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNetwork indicates a transport-level failure: timeout,
	// connection refused, DNS. Never retried.
	ErrNetwork = errors.New("network error")

	// ErrRateLimited indicates a single HTTP 429 response.
	ErrRateLimited = errors.New("rate limited")

	// ErrRateLimitExhausted indicates 429 responses persisted past the
	// retry budget.
	ErrRateLimitExhausted = errors.New("rate limit retries exhausted")
)

// APIError is a non-429 HTTP error response from the Pulse API.
type APIError struct {
	StatusCode int
	Body       string
	Hint       string // best-effort suggestion, empty when none applies
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("HTTP %d - %s (hint: %s)", e.StatusCode, e.Body, e.Hint)
	}
	return fmt.Sprintf("HTTP %d - %s", e.StatusCode, e.Body)
}

// Is supports errors.Is comparison by status code.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// IsRateLimited reports whether err is a single 429 (retryable by the
// bulk pipeline, never by the client itself).
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
