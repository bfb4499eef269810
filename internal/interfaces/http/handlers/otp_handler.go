package handlers

import (
	"context"
	"net/http"

	"github.com/myanimal/petcare-service/internal/domain"
	"go.uber.org/zap"
)

type OTPService interface {
	Initiate(ctx context.Context, phoneNumber string) (*domain.OTPInitiation, error)
	Resend(ctx context.Context, phoneNumber string) (domain.OTPState, error)
	Verify(ctx context.Context, phoneNumber, code string) (*domain.VerificationResult, error)
}

type OTPHandler struct {
	service OTPService
	logger  *zap.Logger
}

func NewOTPHandler(service OTPService, logger *zap.Logger) *OTPHandler {
	return &OTPHandler{
		service: service,
		logger:  logger,
	}
}

// SendOTPResponse is returned once a code was dispatched
type SendOTPResponse struct {
	Message     string `json:"message"`
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
}

// VerifyOTPResponse carries the registry id and a session token
type VerifyOTPResponse struct {
	Message   string `json:"message"`
	UserID    string `json:"userId"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

// SendOTP godoc
// @Summary Send a verification code
// @Description Registers the phone number when it is new and asks the SMS provider to send a code
// @Tags otp
// @Accept json
// @Produce json
// @Param request body domain.SendOTPRequest true "Phone number"
// @Success 200 {object} SendOTPResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /send-otp [post]
func (h *OTPHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.SendOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, "invalid send-otp request", err)
		return
	}

	result, err := h.service.Initiate(r.Context(), req.PhoneNumber)
	if err != nil {
		respondError(w, h.logger, "failed to send otp", err)
		return
	}

	respondJSON(w, http.StatusOK, SendOTPResponse{
		Message:     "OTP sent successfully.",
		UserID:      result.UserID.String(),
		PhoneNumber: result.PhoneNumber,
	})
}

// VerifyOTP godoc
// @Summary Verify a code
// @Description Checks the code with the SMS provider and returns the user id with a session token
// @Tags otp
// @Accept json
// @Produce json
// @Param request body domain.VerifyOTPRequest true "Phone number and code"
// @Success 200 {object} VerifyOTPResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /verify-otp [post]
func (h *OTPHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.VerifyOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, "invalid verify-otp request", err)
		return
	}

	result, err := h.service.Verify(r.Context(), req.PhoneNumber, req.OTP)
	if err != nil {
		respondError(w, h.logger, "failed to verify otp", err)
		return
	}

	respondJSON(w, http.StatusOK, VerifyOTPResponse{
		Message:   "OTP verified successfully.",
		UserID:    result.UserID.String(),
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt.UTC().Format(timeFormat),
	})
}

// ResendOTP godoc
// @Summary Resend a verification code
// @Tags otp
// @Accept json
// @Produce json
// @Param request body domain.SendOTPRequest true "Phone number"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 502 {object} errors.ErrorResponse
// @Router /resend-otp [post]
func (h *OTPHandler) ResendOTP(w http.ResponseWriter, r *http.Request) {
	var req domain.SendOTPRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, h.logger, "invalid resend-otp request", err)
		return
	}

	if _, err := h.service.Resend(r.Context(), req.PhoneNumber); err != nil {
		respondError(w, h.logger, "failed to resend otp", err)
		return
	}

	respondMessage(w, "OTP resent successfully.")
}
