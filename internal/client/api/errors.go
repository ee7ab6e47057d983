package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrMalformedResponse = errors.New("malformed response")
	ErrLookupFailed      = errors.New("lookup failed")
)

// SchemaError reports a response that could not be trusted: not JSON, no
// envelope, or a payload missing required fields.
type SchemaError struct {
	Op     Operation
	Reason string
	Err    error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", ErrMalformedResponse, e.Op, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMalformedResponse, e.Op, e.Reason)
}

func (e *SchemaError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedResponse, e.Err}
	}
	return []error{ErrMalformedResponse}
}
