// Package errs defines the error kinds the rate and country providers can
// produce. Callers match them with errors.As so each kind keeps a distinct
// user-facing treatment instead of being folded into one generic failure.
package errs

import (
	"fmt"
	"strings"
)

// ConfigurationError reports a missing or unusable credential. It is raised
// before any network call is attempted; an unauthenticated request is never
// sent.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// TransportError reports a network failure or a non-success HTTP status other
// than 429. StatusCode is zero when the request never produced a response.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	return fmt.Sprintf("upstream returned HTTP %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RateLimitError reports an HTTP 429 from the rate provider. It is kept
// separate from TransportError so the caller can show a throttling-specific
// message.
type RateLimitError struct{}

func (e *RateLimitError) Error() string {
	return "rate provider throttled the request (HTTP 429)"
}

// DataShapeError reports a 200 response that lacks a usable rate for the
// requested currency. Present carries the currency codes that were in the
// response, for diagnosis.
type DataShapeError struct {
	Currency string
	Present  []string
}

func (e *DataShapeError) Error() string {
	if len(e.Present) == 0 {
		return fmt.Sprintf("response has no rate for %s", e.Currency)
	}
	return fmt.Sprintf("response has no rate for %s (got: %s)",
		e.Currency, strings.Join(e.Present, ", "))
}
