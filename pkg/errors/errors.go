// Package errors provides typed errors for the gender-api toolkit
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of error
type ErrorType int

const (
	// ErrConfig indicates a missing or invalid credential or setting
	ErrConfig ErrorType = iota
	// ErrValidation indicates caller input rejected before any request was sent
	ErrValidation
	// ErrAPI indicates the upstream answered with a non-success status
	ErrAPI
	// ErrTransport indicates the request never completed (DNS, refused, timeout)
	ErrTransport
)

// GenderAPIError is the base error type for all toolkit errors
type GenderAPIError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	Cause      error
	Context    map[string]interface{}
}

// Error returns the error message
func (e *GenderAPIError) Error() string {
	msg := e.Message
	if e.StatusCode != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, msg, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, msg)
}

// Unwrap returns the underlying cause
func (e *GenderAPIError) Unwrap() error {
	return e.Cause
}

// New creates a new GenderAPIError
func New(errType ErrorType, message string, cause error) *GenderAPIError {
	return &GenderAPIError{
		Type:    errType,
		Message: message,
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// WithContext adds context to the error
func (e *GenderAPIError) WithContext(key string, value interface{}) *GenderAPIError {
	e.Context[key] = value
	return e
}

// WithStatus records the HTTP status that produced the error
func (e *GenderAPIError) WithStatus(code int) *GenderAPIError {
	e.StatusCode = code
	return e
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	var apiErr *GenderAPIError
	if err == nil {
		return false
	}
	if errors.As(err, &apiErr) {
		return apiErr.Type == errType
	}
	return false
}

// TypeOf returns the category of err, and false when err is not a GenderAPIError.
func TypeOf(err error) (ErrorType, bool) {
	var apiErr *GenderAPIError
	if !errors.As(err, &apiErr) {
		return 0, false
	}
	return apiErr.Type, true
}

// StatusCode returns the upstream HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *GenderAPIError
	if !errors.As(err, &apiErr) {
		return 0
	}
	return apiErr.StatusCode
}

// IsRetryable reports whether err is transient. The client itself never
// retries; this is for callers that want to.
func IsRetryable(err error) bool {
	var apiErr *GenderAPIError
	if !errors.As(err, &apiErr) {
		return false
	}

	switch apiErr.Type {
	case ErrTransport:
		return true
	case ErrAPI:
		return apiErr.StatusCode >= http.StatusInternalServerError ||
			apiErr.StatusCode == http.StatusTooManyRequests
	default:
		return false
	}
}

// String returns the short tag used in messages and JSON error bodies.
func (et ErrorType) String() string {
	switch et {
	case ErrConfig:
		return "CONFIG"
	case ErrValidation:
		return "VALIDATION"
	case ErrAPI:
		return "API"
	case ErrTransport:
		return "TRANSPORT"
	default:
		return "UNKNOWN"
	}
}

// Convenience functions for common errors

// ConfigError creates a configuration error
func ConfigError(message string, cause error) *GenderAPIError {
	return New(ErrConfig, message, cause)
}

// ValidationError creates a validation error
func ValidationError(message string, cause error) *GenderAPIError {
	return New(ErrValidation, message, cause)
}

// APIError creates an upstream response error
func APIError(message string, cause error) *GenderAPIError {
	return New(ErrAPI, message, cause)
}

// TransportError creates a transport error
func TransportError(message string, cause error) *GenderAPIError {
	return New(ErrTransport, message, cause)
}
