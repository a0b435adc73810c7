package errors

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// ValidationError represents a validation failure with field-level details.
// Fields maps a form field name to the message rendered next to it.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a new validation error for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Fields: map[string]string{field: message},
	}
}

// NewFieldErrors creates a validation error carrying multiple field messages.
func NewFieldErrors(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Add records a message for a field, keeping the first message per field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s - %s", f, e.Fields[f])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// HTTPStatus returns the HTTP status for this error.
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// NotFoundError represents a resource not found error.
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error.
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status for this error.
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// AlreadyExistsError represents a resource already exists error.
type AlreadyExistsError struct {
	Resource string
	Message  string
}

// NewAlreadyExistsError creates a new already exists error.
func NewAlreadyExistsError(resource, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface.
func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// HTTPStatus returns the HTTP status for this error.
func (e *AlreadyExistsError) HTTPStatus() int {
	return http.StatusConflict
}

// UnauthorizedError represents failed or missing authentication.
type UnauthorizedError struct {
	Message string
}

// NewUnauthorizedError creates a new unauthorized error.
func NewUnauthorizedError(message string) *UnauthorizedError {
	return &UnauthorizedError{Message: message}
}

// Error implements the error interface.
func (e *UnauthorizedError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "unauthorized"
}

// HTTPStatus returns the HTTP status for this error.
func (e *UnauthorizedError) HTTPStatus() int {
	return http.StatusUnauthorized
}

// InternalError represents an internal server error with context.
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface.
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status for this error.
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// HTTPStatuser interface for errors that map to an HTTP status code.
type HTTPStatuser interface {
	HTTPStatus() int
}

// StatusOf returns the HTTP status for err, falling back to 500.
func StatusOf(err error) int {
	if s, ok := err.(HTTPStatuser); ok {
		return s.HTTPStatus()
	}
	return http.StatusInternalServerError
}
