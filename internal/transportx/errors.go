package transportx

//
// Transport error wrapping
//

import "errors"

// Error is the wrapper for transport-level errors. The key objective
// of this structure is to scope the failure by the name of the
// component where it occurred while preserving the wrapped error for
// errors.Is and errors.As inspection.
type Error struct {
	// Component is the name of the failing component.
	Component string

	// WrappedErr is the error that we're wrapping.
	WrappedErr error
}

// Error implements error.
func (e *Error) Error() string {
	return e.Component + ": " + e.WrappedErr.Error()
}

// Unwrap allows to access the underlying error.
func (e *Error) Unwrap() error {
	return e.WrappedErr
}

// NewError creates a new [*Error] with the given component name and
// underlying error. If err is already an [*Error], we return it
// unchanged so that the innermost component name wins.
func NewError(component string, err error) *Error {
	var wrapper *Error
	if errors.As(err, &wrapper) {
		return wrapper
	}
	return &Error{
		Component:  component,
		WrappedErr: err,
	}
}
