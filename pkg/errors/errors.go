package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// Domain errors
	ErrorTypeInvalidIdentifier ErrorType = "INVALID_IDENTIFIER"
	ErrorTypeUserNotFound      ErrorType = "USER_NOT_FOUND"

	// Upstream errors
	ErrorTypeUpstreamUnavailable ErrorType = "UPSTREAM_UNAVAILABLE"
	ErrorTypeTimeout             ErrorType = "TIMEOUT"

	// Rendering and application errors
	ErrorTypeRenderFailure ErrorType = "RENDER_FAILURE"
	ErrorTypeInternal      ErrorType = "INTERNAL"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Cause      error     `json:"-"`
	HTTPStatus int       `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// UserMessage returns the short descriptive string shown to the end user.
// Internal causes never leak through it.
func (e *AppError) UserMessage() string {
	return e.Message
}

// Constructor functions for the error taxonomy

// NewInvalidIdentifierError creates an error for bad or missing input
func NewInvalidIdentifierError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInvalidIdentifier,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewUserNotFoundError creates an error for a valid FID with no registry record
func NewUserNotFoundError(fid string) *AppError {
	return &AppError{
		Type:       ErrorTypeUserNotFound,
		Message:    fmt.Sprintf("no Farcaster account found for FID %s", fid),
		HTTPStatus: http.StatusNotFound,
	}
}

// NewUpstreamUnavailableError creates an error for a transient upstream failure
func NewUpstreamUnavailableError(source string, err error) *AppError {
	return &AppError{
		Type:       ErrorTypeUpstreamUnavailable,
		Message:    fmt.Sprintf("%s is temporarily unavailable", source),
		Cause:      err,
		HTTPStatus: http.StatusBadGateway,
	}
}

// NewTimeoutError creates a timeout error for an upstream operation
func NewTimeoutError(operation string) *AppError {
	return &AppError{
		Type:       ErrorTypeTimeout,
		Message:    fmt.Sprintf("operation '%s' timed out", operation),
		HTTPStatus: http.StatusGatewayTimeout,
	}
}

// NewRenderFailureError creates an error for a failed image render
func NewRenderFailureError(err error) *AppError {
	return &AppError{
		Type:       ErrorTypeRenderFailure,
		Message:    "could not render the anniversary card",
		Cause:      err,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewInternalError creates an internal error
func NewInternalError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// Helper functions

// GetAppError extracts AppError from an error chain
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsType checks if an error is of a specific type
func IsType(err error, errType ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == errType
}

// IsInvalidIdentifier checks if an error is an invalid identifier error
func IsInvalidIdentifier(err error) bool {
	return IsType(err, ErrorTypeInvalidIdentifier)
}

// IsUserNotFound checks if an error is a user not found error
func IsUserNotFound(err error) bool {
	return IsType(err, ErrorTypeUserNotFound)
}

// IsUpstreamUnavailable checks if an error is an upstream availability error
func IsUpstreamUnavailable(err error) bool {
	return IsType(err, ErrorTypeUpstreamUnavailable) || IsType(err, ErrorTypeTimeout)
}

// IsRenderFailure checks if an error is a render failure
func IsRenderFailure(err error) bool {
	return IsType(err, ErrorTypeRenderFailure)
}
