package application

import (
	"context"
	"strings"

	"github.com/myanimal/petcare-service/internal/domain"
	"go.uber.org/zap"
)

// OTPService runs phone verification: the provider generates and checks the
// codes, the registry maps verified numbers to user ids
type OTPService struct {
	registry domain.PhoneRegistry
	gateway  domain.OTPGateway
	tokens   domain.TokenIssuer
	logger   *zap.Logger
}

func NewOTPService(registry domain.PhoneRegistry, gateway domain.OTPGateway, tokens domain.TokenIssuer, logger *zap.Logger) *OTPService {
	return &OTPService{
		registry: registry,
		gateway:  gateway,
		tokens:   tokens,
		logger:   logger,
	}
}

// Initiate registers the phone number when it is new and asks the provider to
// send a code. The registry record is kept even if sending fails.
func (s *OTPService) Initiate(ctx context.Context, phoneNumber string) (*domain.OTPInitiation, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return nil, domain.NewValidationError("Phone number is required")
	}

	userID, err := s.registry.GetOrCreate(ctx, phoneNumber)
	if err != nil {
		s.logger.Error("failed to register phone number", zap.String("phone_number", phoneNumber), zap.Error(err))
		return nil, err
	}

	if err := s.gateway.SendOTP(ctx, phoneNumber); err != nil {
		s.logState(ctx, phoneNumber, domain.OTPStateIdle, err)
		return nil, err
	}

	s.logState(ctx, phoneNumber, domain.OTPStateSent, nil)
	return &domain.OTPInitiation{
		UserID:      userID,
		PhoneNumber: phoneNumber,
		State:       domain.OTPStateSent,
	}, nil
}

// Resend asks the provider to deliver the code again without touching the registry
func (s *OTPService) Resend(ctx context.Context, phoneNumber string) (domain.OTPState, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return domain.OTPStateIdle, domain.NewValidationError("Phone number is required")
	}

	if err := s.gateway.ResendOTP(ctx, phoneNumber); err != nil {
		s.logState(ctx, phoneNumber, domain.OTPStateIdle, err)
		return domain.OTPStateIdle, err
	}

	s.logState(ctx, phoneNumber, domain.OTPStateResent, nil)
	return domain.OTPStateResent, nil
}

// Verify checks code with the provider. A match resolves the user id and
// issues a session token; a mismatch and an unrecognized verdict fail with
// distinct errors.
func (s *OTPService) Verify(ctx context.Context, phoneNumber, code string) (*domain.VerificationResult, error) {
	phoneNumber = strings.TrimSpace(phoneNumber)
	code = strings.TrimSpace(code)
	if phoneNumber == "" || code == "" {
		return nil, domain.NewValidationError("Phone number and OTP are required.")
	}

	outcome, err := s.gateway.VerifyOTP(ctx, phoneNumber, code)
	if err != nil {
		s.logState(ctx, phoneNumber, domain.OTPStateSent, err)
		return nil, err
	}

	switch outcome {
	case domain.OutcomeMatched:
	case domain.OutcomeNotMatched:
		s.logState(ctx, phoneNumber, domain.OTPStateRejected, domain.ErrOTPNotMatched)
		return nil, domain.ErrOTPNotMatched
	default:
		s.logState(ctx, phoneNumber, domain.OTPStateRejected, domain.ErrOTPUnknown)
		return nil, domain.ErrOTPUnknown
	}

	userID, err := s.registry.FindIDByPhone(ctx, phoneNumber)
	if err != nil {
		s.logger.Error("verified phone number has no user",
			zap.String("phone_number", phoneNumber),
			zap.Error(err),
		)
		return nil, err
	}

	token, expiresAt, err := s.tokens.IssueToken(userID)
	if err != nil {
		s.logger.Error("failed to issue session token", zap.String("user_id", userID.String()), zap.Error(err))
		return nil, domain.ErrInternal.Wrap(err)
	}

	s.logState(ctx, phoneNumber, domain.OTPStateVerified, nil)
	return &domain.VerificationResult{
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		State:     domain.OTPStateVerified,
	}, nil
}

func (s *OTPService) logState(ctx context.Context, phoneNumber string, state domain.OTPState, err error) {
	fields := []zap.Field{
		zap.String("phone_number", phoneNumber),
		zap.String("state", string(state)),
	}
	if requestID, ok := domain.GetRequestID(ctx); ok {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if err != nil {
		s.logger.Warn("otp flow", append(fields, zap.Error(err))...)
		return
	}
	s.logger.Info("otp flow", fields...)
}
