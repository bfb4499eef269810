package domain

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// OTPState is the position of a phone number in the verification flow.
// The flow keeps no state between requests; the value reports where a single
// call left the number.
type OTPState string

const (
	OTPStateIdle     OTPState = "idle"
	OTPStateSent     OTPState = "sent"
	OTPStateResent   OTPState = "resent"
	OTPStateVerified OTPState = "verified"
	OTPStateRejected OTPState = "rejected"
)

// MatchOutcome is the classified verdict of a verify call
type MatchOutcome int

const (
	OutcomeUnknown MatchOutcome = iota
	OutcomeMatched
	OutcomeNotMatched
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomeMatched:
		return "matched"
	case OutcomeNotMatched:
		return "not_matched"
	}
	return "unknown"
}

// OTPGateway issues and checks codes through the external SMS provider.
// The provider owns the code lifecycle; implementations never retry.
type OTPGateway interface {
	SendOTP(ctx context.Context, phoneNumber string) error
	VerifyOTP(ctx context.Context, phoneNumber, code string) (MatchOutcome, error)
	ResendOTP(ctx context.Context, phoneNumber string) error
}

// PhoneRegistry maps phone numbers to stable user ids
type PhoneRegistry interface {
	// GetOrCreate returns the id for phoneNumber, inserting a record when none exists.
	// It must be atomic for concurrent callers with the same number.
	GetOrCreate(ctx context.Context, phoneNumber string) (ulid.ULID, error)

	// FindIDByPhone returns ErrPhoneNotRegistered when no record matches
	FindIDByPhone(ctx context.Context, phoneNumber string) (ulid.ULID, error)
}

// TokenIssuer signs session tokens for verified users
type TokenIssuer interface {
	IssueToken(userID ulid.ULID) (token string, expiresAt time.Time, err error)
}

// OTPInitiation is returned once a code has been sent
type OTPInitiation struct {
	UserID      ulid.ULID `json:"userId"`
	PhoneNumber string    `json:"phoneNumber"`
	State       OTPState  `json:"-"`
}

// VerificationResult is returned for a verified phone number
type VerificationResult struct {
	UserID    ulid.ULID `json:"userId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	State     OTPState  `json:"-"`
}

// SendOTPRequest is the body of the initiate and resend endpoints
type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

// VerifyOTPRequest is the body of the verify endpoint
type VerifyOTPRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	OTP         string `json:"otp"`
}
