package stats

import (
	"errors"
	"fmt"
)

// ErrAuthenticationFailed is returned when credentials are missing or the
// status page still demands a login after the single re-authentication
// attempt a cycle is allowed.
var ErrAuthenticationFailed = errors.New("failed to fetch status page: need authentication")

// TransportError wraps a network-level failure reaching the modem. It aborts
// the whole poll cycle and is never retried.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to reach %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MalformedDocumentError means the page does not have the shape the vendor
// parser expects, e.g. a table at a fixed index is missing. It distinguishes
// "page changed shape" from "no channels reported".
type MalformedDocumentError struct {
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	return "malformed status page: " + e.Reason
}

// FieldParseError means a cell had text but the text did not convert to the
// expected numeric type. Partial or garbled data must not be reported as
// complete, so this aborts the capture.
type FieldParseError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldParseError) Error() string {
	return fmt.Sprintf("cannot parse %s value %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldParseError) Unwrap() error { return e.Err }
