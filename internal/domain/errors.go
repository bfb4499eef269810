package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error is implemented by every error that crosses the application boundary.
// The code is machine-checkable, the message is safe to show to a caller.
type Error interface {
	error
	GetCode() string
	GetMessage() string
}

// Error codes
const (
	CodeValidation    = "VALIDATION_ERROR"
	CodeStorage       = "STORAGE_ERROR"
	CodeGateway       = "GATEWAY_ERROR"
	CodeOTPNotMatched = "OTP_NOT_MATCHED"
	CodeOTPUnknown    = "OTP_UNKNOWN"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeRateLimited   = "RATE_LIMITED"
	CodeInternal      = "INTERNAL_ERROR"
)

// BusinessError is the default Error implementation
type BusinessError struct {
	Code    string
	Message string
	cause   error
}

func NewBusinessError(code, message string) *BusinessError {
	return &BusinessError{Code: code, Message: message}
}

func (e *BusinessError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *BusinessError) GetCode() string    { return e.Code }
func (e *BusinessError) GetMessage() string { return e.Message }
func (e *BusinessError) Unwrap() error      { return e.cause }

// Is matches any Error carrying the same code, so errors.Is(err, ErrNotFound)
// holds for every resource-specific not-found error.
func (e *BusinessError) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.GetCode() == e.Code
}

// WithMessage returns a copy of e with a different caller-facing message
func (e *BusinessError) WithMessage(message string) *BusinessError {
	return &BusinessError{Code: e.Code, Message: message, cause: e.cause}
}

// Wrap returns a copy of e that records cause for logging and errors.As
func (e *BusinessError) Wrap(cause error) *BusinessError {
	return &BusinessError{Code: e.Code, Message: e.Message, cause: cause}
}

var (
	ErrValidation   = NewBusinessError(CodeValidation, "Invalid request")
	ErrStorage      = NewBusinessError(CodeStorage, "Database error")
	ErrGateway      = NewBusinessError(CodeGateway, "OTP provider error")
	ErrNotFound     = NewBusinessError(CodeNotFound, "Resource not found")
	ErrConflict     = NewBusinessError(CodeConflict, "Resource already exists")
	ErrUnauthorized = NewBusinessError(CodeUnauthorized, "Unauthorized")
	ErrRateLimited  = NewBusinessError(CodeRateLimited, "Rate limit exceeded")
	ErrInternal     = NewBusinessError(CodeInternal, "Internal server error")

	// ErrOTPNotMatched is returned when the provider recognized the code as wrong
	ErrOTPNotMatched = NewBusinessError(CodeOTPNotMatched, "OTP not found. Please check and try again.")
	// ErrOTPUnknown is returned for any provider verdict that is not a recognized match or mismatch
	ErrOTPUnknown = NewBusinessError(CodeOTPUnknown, "Invalid OTP or phone number. Please ensure both are correct.")
	// ErrPhoneNotRegistered is returned when a verified phone number has no registry record
	ErrPhoneNotRegistered = NewBusinessError(CodeNotFound, "User not found.")

	ErrNoFieldsToUpdate = NewBusinessError(CodeValidation, "No fields to update")
	ErrInvalidID        = NewBusinessError(CodeValidation, "Invalid ID")
)

// NewValidationError creates a validation error with the given message
func NewValidationError(message string) *BusinessError {
	return ErrValidation.WithMessage(message)
}

// NewNotFoundError creates a not found error for the named resource
func NewNotFoundError(resource string) *BusinessError {
	return ErrNotFound.WithMessage(resource + " not found")
}

// NewStorageError wraps a database failure
func NewStorageError(cause error) *BusinessError {
	return ErrStorage.Wrap(cause)
}

// GatewayError reports a failed call to the OTP provider. Payload holds the
// provider's response body when one was received.
type GatewayError struct {
	Op      string
	Message string
	Status  int
	Payload json.RawMessage
	Err     error
}

func (e *GatewayError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("otp gateway %s: %v", e.Op, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("otp gateway %s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("otp gateway %s: provider rejected request", e.Op)
}

func (e *GatewayError) GetCode() string { return CodeGateway }

func (e *GatewayError) GetMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return ErrGateway.Message
}

func (e *GatewayError) Unwrap() error { return e.Err }

func (e *GatewayError) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.GetCode() == CodeGateway
}

// AsError converts any error into a domain Error, defaulting to ErrInternal
func AsError(err error) Error {
	var de Error
	if errors.As(err, &de) {
		return de
	}
	return ErrInternal.Wrap(err)
}
