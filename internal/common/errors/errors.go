// Package errors provides the coded error model shared by the conversion
// engine, the interpreter pipeline, and the serving boundaries.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Conversion engine: unknown category or unit.
	ErrCodeLookupFailure ErrorCode = "LOOKUP_FAILURE"

	// Interpreter pipeline.
	ErrCodeJSONMalformed   ErrorCode = "JSON_MALFORMED"
	ErrCodeSchemaViolation ErrorCode = "SCHEMA_VIOLATION"
	ErrCodeServiceFailure  ErrorCode = "SERVICE_FAILURE"

	// Shared by the manual and AI paths.
	ErrCodeNumericCoercion ErrorCode = "NUMERIC_COERCION_FAILED"
	ErrCodeInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrCodeInternal        ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// Error Constructors
// ==========================

// NewLookupFailureError creates a non-retryable unknown-category/unit error.
// details should name the offending key.
func NewLookupFailureError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeLookupFailure,
		Message:   "Unknown category or unit",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewJSONMalformedError creates a non-retryable error for AI responses that
// could not be parsed as JSON. The parser diagnostic is preserved in details.
func NewJSONMalformedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeJSONMalformed,
		Message:   "AI response is not valid JSON",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaViolationError creates a non-retryable error for parsed AI
// responses missing required keys or carrying an unsupported category.
func NewSchemaViolationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaViolation,
		Message:   "AI response violates the expected schema",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNumericCoercionError creates a non-retryable error for a value field
// that could not be interpreted as a number.
func NewNumericCoercionError(raw interface{}) *StandardError {
	return &StandardError{
		Code:      ErrCodeNumericCoercion,
		Message:   "Value is not interpretable as a number",
		Details:   fmt.Sprintf("value: %v", raw),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewServiceFailureError creates a retryable error for a failed call to the
// external AI provider. A fresh request is a fresh attempt; nothing retries
// automatically.
func NewServiceFailureError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeServiceFailure,
		Message:   "AI service request failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidInputError creates a non-retryable boundary validation error.
func NewInvalidInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   "Invalid request input",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError creates a non-retryable catch-all error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// Utility Functions
// ==========================

// HTTPStatus maps an error code to the status the REST boundary responds
// with. Upstream-content failures (the AI produced something unusable) map
// to 502 so callers can tell them apart from their own bad requests.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeLookupFailure, ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeNumericCoercion:
		return http.StatusUnprocessableEntity
	case ErrCodeJSONMalformed, ErrCodeSchemaViolation, ErrCodeServiceFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// IsRetryableErrorCode checks if an error code is worth retrying by hand.
func IsRetryableErrorCode(code ErrorCode) bool {
	return code == ErrCodeServiceFailure
}

// GetErrorCategory returns the subsystem a code belongs to, for log labels.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "LOOKUP"):
		return "ENGINE"
	case strings.Contains(codeStr, "JSON") || strings.Contains(codeStr, "SCHEMA") || strings.Contains(codeStr, "SERVICE"):
		return "INTERPRETER"
	case strings.Contains(codeStr, "COERCION") || strings.Contains(codeStr, "INPUT"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
