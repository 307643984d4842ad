package httpapi

//
// Error taxonomy: call (transport), parse, and service errors.
//

import "github.com/skillwave/sdk-go/internal/transportx"

// DefaultErrorMessage is the [*ServiceError] message used when the
// error table has no entry for the exact status code.
const DefaultErrorMessage = "Unknown error"

// CallError wraps a transport-level failure that occurred while
// dispatching a call. Use errors.As to inspect the wrapped
// [*transportx.Error] and recover its component scoping.
type CallError struct {
	// Err is the transport error we're wrapping.
	Err error
}

// Error implements error.
func (e *CallError) Error() string {
	return "Call to service failed: " + e.Err.Error()
}

// Unwrap allows to access the underlying error.
func (e *CallError) Unwrap() error {
	return e.Err
}

// ParseError means the response carried a non-empty body that is not
// valid JSON. The raw body text is part of the message so that API
// misbehaviour is visible in logs without extra unwrapping.
type ParseError struct {
	// RawBody is the raw response body that failed to parse.
	RawBody string

	// Err is the underlying JSON decoding error.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return "cannot parse response body: " + e.RawBody
}

// Unwrap allows to access the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ServiceError means the server answered with a status code outside
// [200, 300). It carries everything the server told us.
type ServiceError struct {
	// StatusCode is the status code of the response.
	StatusCode int

	// Headers is the ordered list of response header pairs.
	Headers []transportx.HeaderPair

	// Response is the parsed response body, when there was one.
	Response any

	// Message is the message from the call's error table, resolved
	// by exact status-code match, or [DefaultErrorMessage].
	Message string
}

// Error implements error.
func (e *ServiceError) Error() string {
	return e.Message
}
