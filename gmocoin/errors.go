// Package gmocoin provides the shared plumbing for the GMO Coin public REST
// API: the transport abstraction, the raw and typed response envelopes, the
// error values every operation returns, and the converters used to decode the
// API's string-encoded numeric and timestamp fields.
//
// The package itself performs no logging and keeps no state between calls;
// every failure is reported to the caller as a typed error value.
package gmocoin

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so that callers can tell an unreachable
// server apart from a response they could not understand.
type ErrorKind string

const (
	// ErrorKindTransport covers network failures, TLS/connection errors,
	// and malformed request URLs.
	ErrorKindTransport ErrorKind = "transport"

	// ErrorKindDecode covers bodies that are not valid JSON, do not match
	// the documented shape, or contain a numeric/timestamp field that does
	// not parse.
	ErrorKindDecode ErrorKind = "decode"

	// ErrorKindUnknown is reserved for test doubles and for wrapping
	// unanticipated failures.
	ErrorKindUnknown ErrorKind = "unknown"
)

// Error is the failure value returned by every operation in this module.
type Error struct {
	Kind  ErrorKind
	Op    string // operation that failed, e.g. "perform request"
	Field string // offending JSON field for decode failures, if known
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("%s error in field %q: %v", e.Kind, e.Field, e.Err)
	case e.Op != "" && e.Err != nil:
		return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s error", e.Kind)
	}
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches two errors of this type by kind, so that
// errors.Is(err, &Error{Kind: ErrorKindDecode}) works regardless of the
// wrapped cause.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// NewTransportError wraps a network-level or URL-construction failure.
func NewTransportError(op string, err error) *Error {
	return &Error{Kind: ErrorKindTransport, Op: op, Err: err}
}

// NewDecodeError wraps a body that could not be interpreted as the expected
// typed structure. field names the offending JSON field when known and may be
// empty for document-level failures.
func NewDecodeError(field string, err error) *Error {
	return &Error{Kind: ErrorKindDecode, Field: field, Err: err}
}

// NewUnknownError returns the opaque error used by test doubles and for
// failures that fit neither of the other kinds.
func NewUnknownError() *Error {
	return &Error{Kind: ErrorKindUnknown}
}

// IsTransport reports whether err is (or wraps) a transport-kind Error.
func IsTransport(err error) bool {
	return hasKind(err, ErrorKindTransport)
}

// IsDecode reports whether err is (or wraps) a decode-kind Error.
func IsDecode(err error) bool {
	return hasKind(err, ErrorKindDecode)
}

// IsUnknown reports whether err is (or wraps) an unknown-kind Error.
func IsUnknown(err error) bool {
	return hasKind(err, ErrorKindUnknown)
}

func hasKind(err error, kind ErrorKind) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}
	return false
}
