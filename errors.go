package ffi

import "errors"

var (
	// ErrHandlerNil is returned when a provided handler function is nil.
	ErrHandlerNil = errors.New("handler cannot be nil")

	// ErrHostCall indicates that a waPC host invocation failed.
	ErrHostCall = errors.New("host call failed")

	// ErrHostResponseInvalid signals that the host returned an invalid or unexpected payload.
	ErrHostResponseInvalid = errors.New("host response is invalid or unexpected")

	// ErrHostError means the host completed the call but reported a failure status.
	ErrHostError = errors.New("host returned an error status")

	// ErrStatusConflict is returned when a status carries both a result and an error.
	ErrStatusConflict = errors.New("status cannot carry both a result and an error message")

	// ErrStatusEmpty is returned when a status carries neither a result nor an error.
	ErrStatusEmpty = errors.New("status must carry a result or an error message")
)
