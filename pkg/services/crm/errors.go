package crm

import (
	"errors"
	"fmt"
)

// Sentinel errors for terminal HTTP outcomes that carry no useful body.
var (
	// ErrAuthentication signals a 401: the API key is missing or invalid.
	ErrAuthentication = errors.New("authentication failed: invalid or missing API key")
	// ErrNotFound signals a 404 on a specific resource.
	ErrNotFound = errors.New("resource not found")
)

// Validation reason kinds reported by ValidationError.
const (
	ReasonMissingField  = "missing required field"
	ReasonInvalidFormat = "invalid format"
	ReasonInvalidValue  = "invalid value"
)

// ValidationError reports a record rejected before any network call.
type ValidationError struct {
	Field  string
	Reason string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Reason, e.Field, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Field)
}

// ClientError is a terminal non-2xx response that is neither a 401 nor a
// 404: most commonly a 400 rejection. Retrying cannot fix it.
type ClientError struct {
	StatusCode int
	Detail     string
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("request rejected with status %d: %s", e.StatusCode, e.Detail)
}

// RetryExhaustedError wraps the last transient failure once the attempt
// budget is spent.
type RetryExhaustedError struct {
	Attempts int
	Err      error
}

func (e *RetryExhaustedError) Error() string {
	return fmt.Sprintf("request failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *RetryExhaustedError) Unwrap() error {
	return e.Err
}
