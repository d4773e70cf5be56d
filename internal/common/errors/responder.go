// internal/common/errors/responder.go
package errors

import (
	"encoding/json"
	"net/http"
	"time"
)

// Responder writes coded errors as HTTP responses with standardized envelopes.
type Responder struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewResponder(logger Logger) *Responder {
	return &Responder{logger: logger}
}

// ErrorEnvelope is the wire form of a failed request.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// WriteError normalizes err to a StandardError, logs it, and writes the JSON
// envelope with the code's HTTP status. Callers classify domain sentinels
// into StandardErrors before reaching here; anything unclassified becomes
// INTERNAL_ERROR.
func (r *Responder) WriteError(w http.ResponseWriter, requestID string, err error) {
	stdErr := Normalize(err)
	r.logError(requestID, stdErr)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(HTTPStatus(stdErr.Code))
	_ = json.NewEncoder(w).Encode(ErrorEnvelope{
		Error: ErrorBody{
			Code:      stdErr.Code,
			Message:   stdErr.Message,
			Details:   stdErr.Details,
			RequestID: requestID,
			Timestamp: stdErr.Timestamp,
		},
	})
}

// Normalize ensures we always have a StandardError.
func Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func (r *Responder) logError(requestID string, stdErr *StandardError) {
	r.logger.Error("Request failed", map[string]interface{}{
		"requestId":     requestID,
		"errorCode":     string(stdErr.Code),
		"message":       stdErr.Message,
		"details":       stdErr.Details,
		"retryable":     stdErr.Retryable,
		"errorCategory": GetErrorCategory(stdErr.Code),
	})
}
