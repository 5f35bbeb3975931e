package errors

import (
	"fmt"
	"net/http"
	"strings"
)

// Common application errors
var (
	ErrUserNotFound = NewNotFoundError("user", "User not found")
	ErrInternal     = NewInternalError("internal server error", nil)
)

// ValidationError represents a validation failure with field-level details.
// Fields preserves the order in which the failing fields were reported.
type ValidationError struct {
	Fields []string
}

// NewValidationError creates a new validation error from field messages
func NewValidationError(fields []string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
}

// HTTPStatus returns the HTTP status code for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// UpstreamError represents a failure of an external collaborator
// (database or third-party HTTP API).
type UpstreamError struct {
	Upstream string
	Message  string
	Err      error
}

// NewUpstreamError creates a new upstream error
func NewUpstreamError(upstream, message string, err error) *UpstreamError {
	return &UpstreamError{
		Upstream: upstream,
		Message:  message,
		Err:      err,
	}
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error
func (e *UpstreamError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// HTTPStatuser interface for errors that can map themselves to an HTTP status
type HTTPStatuser interface {
	HTTPStatus() int
}
