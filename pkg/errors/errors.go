// Package errors provides structured error handling for the gateway
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode represents an error code
type ErrorCode string

const (
	// Client errors (4xx)
	CodeInvalidRequest  ErrorCode = "INVALID_REQUEST"
	CodePayloadTooLarge ErrorCode = "PAYLOAD_TOO_LARGE"

	// Recovered locally by the gateway, they select the fallback path
	CodeConfiguration     ErrorCode = "CONFIGURATION_ERROR"
	CodeModelUnavailable  ErrorCode = "MODEL_UNAVAILABLE"
	CodeExtractionFailure ErrorCode = "EXTRACTION_FAILURE"

	// Server errors (5xx)
	CodeInternal ErrorCode = "INTERNAL_ERROR"
)

// AppError represents an application error with structured information
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  string                 `json:"details,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
	Cause    error                  `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Details != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Details)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap returns the underlying cause error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status code the error would map to if it ever
// reached the caller. Only rejected requests are expected to.
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeInvalidRequest:
		return http.StatusBadRequest
	case CodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	case CodeModelUnavailable, CodeConfiguration:
		return http.StatusServiceUnavailable
	case CodeExtractionFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// WithMetadata adds metadata to the error
func (e *AppError) WithMetadata(key string, value interface{}) *AppError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// WithCause adds a cause error
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// NewAppError creates a new application error
func NewAppError(code ErrorCode, message, details string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Details: details,
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) *AppError {
	return NewAppError(CodeInvalidRequest, message, "")
}

// NewPayloadTooLargeError rejects a request body over limit bytes
func NewPayloadTooLargeError(limit int64) *AppError {
	return NewAppError(CodePayloadTooLarge, "Request body too large", "").
		WithMetadata("limit_bytes", limit)
}

// NewConfigurationError reports a missing or unusable setting
func NewConfigurationError(setting string) *AppError {
	return NewAppError(
		CodeConfiguration,
		"Configuration error",
		fmt.Sprintf("%s is not configured", setting),
	).WithMetadata("setting", setting)
}

// NewModelUnavailableError creates a model unavailable error
func NewModelUnavailableError(reason string, cause error) *AppError {
	return NewAppError(
		CodeModelUnavailable,
		"Model unavailable",
		reason,
	).WithCause(cause)
}

// NewExtractionFailureError creates an extraction failure error
func NewExtractionFailureError(reason string, cause error) *AppError {
	return NewAppError(
		CodeExtractionFailure,
		"Could not extract recipes from model output",
		reason,
	).WithCause(cause)
}

// NewInternalError creates an internal server error
func NewInternalError(message string) *AppError {
	if message == "" {
		message = "An unexpected error occurred"
	}
	return NewAppError(CodeInternal, message, "")
}

// Wrap wraps an error as an internal error if it's not already an AppError
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	return NewInternalError(message).WithCause(err)
}

// Is checks whether any error in the chain carries the given code
func Is(err error, code ErrorCode) bool {
	for err != nil {
		var appErr *AppError
		if !stderrors.As(err, &appErr) {
			return false
		}
		if appErr.Code == code {
			return true
		}
		err = appErr.Cause
	}
	return false
}

// GetCode extracts the outermost error code from an error
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}

// ErrorResponse is the body returned to callers on a rejected request
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToErrorResponse converts an error to the public error body
func ToErrorResponse(err error) ErrorResponse {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		if appErr.Details != "" {
			return ErrorResponse{Error: appErr.Details}
		}
		return ErrorResponse{Error: appErr.Message}
	}
	return ErrorResponse{Error: "An unexpected error occurred"}
}
