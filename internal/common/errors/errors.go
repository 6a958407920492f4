// internal/common/errors/errors.go

// Package errors provides standardized error handling for the chatbot
// service. The conversation engine itself never errors on malformed text;
// everything here belongs to the shell and store boundaries.
package errors

import (
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeInvalidInput   ErrorCode = "INVALID_INPUT"

	ErrCodeSessionNotFound         ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionExpired          ErrorCode = "SESSION_EXPIRED"
	ErrCodeSessionStoreUnavailable ErrorCode = "SESSION_STORE_UNAVAILABLE"

	ErrCodePatternTableInvalid ErrorCode = "PATTERN_TABLE_INVALID"
	ErrCodeEngineFailure       ErrorCode = "ENGINE_FAILURE"
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
// 2. Error Constructors
// ==========================

// NewInvalidRequestError marks a structurally bad API request.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "Request body is invalid",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError marks a lookup for an unknown session id.
func NewSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Session not found",
		Details:   sessionID,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionExpiredError marks a session past its TTL.
func NewSessionExpiredError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionExpired,
		Message:   "Session has expired",
		Details:   sessionID,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreUnavailableError marks a failed round-trip to the
// session store; the caller may retry.
func NewSessionStoreUnavailableError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreUnavailable,
		Message:   "Session store unavailable",
		Details:   details,
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPatternTableInvalidError marks a pattern-override file that failed
// schema validation. Startup must not proceed on this error.
func NewPatternTableInvalidError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodePatternTableInvalid,
		Message:   "Pattern table failed validation",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// IsRetryable reports whether err carries a retryable StandardError.
func IsRetryable(err error) bool {
	if se, ok := err.(*StandardError); ok {
		return se.Retryable
	}
	return false
}

// CodeOf extracts the error code, or empty for foreign errors.
func CodeOf(err error) ErrorCode {
	if se, ok := err.(*StandardError); ok {
		return se.Code
	}
	return ""
}
