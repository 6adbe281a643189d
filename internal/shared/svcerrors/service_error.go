package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInputNotFound = "input_not_found"
	categoryInputError    = "input_error"
	categoryEncoding      = "encoding_error"
	categoryInternal      = "internal"
)

// Exit codes follow sysexits.h.
const (
	ExitCodeDataErr  = 65
	ExitCodeNoInput  = 66
	ExitCodeSoftware = 70
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewInputNotFoundError creates a new ServiceError with category input_not_found.
func NewInputNotFoundError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInputNotFound,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeNoInput,
	}
}

// NewInputError creates a new ServiceError with category input_error.
func NewInputError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInputError,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeDataErr,
	}
}

// NewEncodingError creates a new ServiceError with category encoding_error.
func NewEncodingError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryEncoding,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeDataErr,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: ExitCodeSoftware,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

// NewInternalErrorPanic reports a worker that panicked. There is no retry: the whole run fails.
func NewInternalErrorPanic(cause error) *ServiceError {
	svcErr := NewInternalError(errorCodeInternalPanic, cause)
	svcErr.Message = "worker failure"
	return svcErr
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a run-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // input_not_found, input_error, encoding_error or internal
	Code     string // package-owned stable code (e.g. AGG_1001)
	Message  string // human-readable
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit status
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
