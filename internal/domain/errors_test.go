package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBusinessError(t *testing.T) {
	tests := []struct {
		name     string
		err      *BusinessError
		wantErr  string
		wantCode string
	}{
		{
			name:     "validation_error",
			err:      NewValidationError("phone number is required"),
			wantErr:  "phone number is required",
			wantCode: CodeValidation,
		},
		{
			name:     "not_found_error",
			err:      NewNotFoundError("Groomer"),
			wantErr:  "Groomer not found",
			wantCode: CodeNotFound,
		},
		{
			name:     "storage_error_with_cause",
			err:      NewStorageError(errors.New("connection refused")),
			wantErr:  "Database error: connection refused",
			wantCode: CodeStorage,
		},
		{
			name:     "otp_not_matched",
			err:      ErrOTPNotMatched,
			wantErr:  "OTP not found. Please check and try again.",
			wantCode: CodeOTPNotMatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, tt.err.Error())
			assert.Equal(t, tt.wantCode, tt.err.GetCode())
		})
	}
}

func TestBusinessError_IsMatchesByCode(t *testing.T) {
	assert.True(t, errors.Is(NewNotFoundError("Doctor"), ErrNotFound))
	assert.True(t, errors.Is(ErrPhoneNotRegistered, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("wrapped: %w", ErrInvalidID), ErrValidation))
	assert.False(t, errors.Is(ErrOTPNotMatched, ErrOTPUnknown))
	assert.False(t, errors.Is(ErrStorage, ErrNotFound))
}

func TestBusinessError_WrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := ErrStorage.Wrap(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Database error", err.GetMessage())
	assert.Nil(t, ErrStorage.Unwrap())
}

func TestGatewayError(t *testing.T) {
	payload := json.RawMessage(`{"status":"error","description":"invalid apikey"}`)
	err := &GatewayError{Op: "send", Status: 200, Payload: payload}

	assert.Equal(t, CodeGateway, err.GetCode())
	assert.Equal(t, "OTP provider error", err.GetMessage())
	assert.Equal(t, "otp gateway send: status 200", err.Error())
	assert.True(t, errors.Is(err, ErrGateway))

	timeout := &GatewayError{Op: "verify", Err: errors.New("deadline exceeded")}
	assert.Equal(t, "otp gateway verify: deadline exceeded", timeout.Error())
}

func TestAsError(t *testing.T) {
	assert.Equal(t, CodeNotFound, AsError(fmt.Errorf("x: %w", ErrPhoneNotRegistered)).GetCode())
	assert.Equal(t, CodeGateway, AsError(&GatewayError{Op: "resend"}).GetCode())
	assert.Equal(t, CodeInternal, AsError(errors.New("plain")).GetCode())

	var verrs ValidationErrors
	verrs.Add("email", "Invalid email format.")
	assert.Equal(t, CodeValidation, AsError(verrs).GetCode())
}
