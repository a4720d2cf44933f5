package wiki

import (
	"fmt"
	"time"
)

// NetworkError wraps a connection-level failure that persisted through
// every retry attempt. Carries no HTTP status because the round-trip
// never completed.
type NetworkError struct {
	Cause error
}

// Error returns a formatted error message.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Cause)
}

// Unwrap exposes the underlying transport failure.
func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// RateLimitError indicates the API kept answering HTTP 429 through every
// retry attempt. RetryAfter carries the last server-directed delay, or
// zero when the header was absent.
type RateLimitError struct {
	RetryAfter time.Duration
}

// Error returns a formatted error message.
func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (HTTP 429), server asked to retry after %s", e.RetryAfter)
	}
	return "rate limited (HTTP 429)"
}

// HTTPError indicates a non-retryable HTTP failure status.
type HTTPError struct {
	StatusCode int
	Message    string
}

// Error returns a formatted error message.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// APIError indicates the MediaWiki API returned an error envelope in an
// otherwise successful response.
type APIError struct {
	Code string
	Info string
}

// Error returns a formatted error message.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error %s: %s", e.Code, e.Info)
}

// PageNotFoundError indicates the requested page does not exist. In
// batch operations this is an expected outcome and is collected rather
// than propagated.
type PageNotFoundError struct {
	Title string
	Lang  string
}

// Error returns a formatted error message.
func (e *PageNotFoundError) Error() string {
	return fmt.Sprintf("page not found: %q (lang=%s)", e.Title, e.Lang)
}

// ValidationError indicates the caller supplied invalid parameters. It
// is always raised before any network call.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %q: %s", e.Field, e.Message)
}

// RedirectChainError indicates a redirect chain exceeded the defensive
// hop cap, which only happens when the redirect table is cyclic or
// otherwise malformed.
type RedirectChainError struct {
	Title string
	Hops  int
}

// Error returns a formatted error message.
func (e *RedirectChainError) Error() string {
	return fmt.Sprintf("redirect chain for %q exceeded %d hops (cyclic redirect table?)", e.Title, e.Hops)
}
