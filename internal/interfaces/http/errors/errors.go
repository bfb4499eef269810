package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/myanimal/petcare-service/internal/domain"
)

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Code     string          `json:"code"`
	Message  string          `json:"message"`
	Details  []ErrorDetail   `json:"details,omitempty"`
	Provider json.RawMessage `json:"provider,omitempty"`
}

// ErrorDetail represents a validation error detail
type ErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StatusFor maps a domain error code to its HTTP status
func StatusFor(code string) int {
	switch code {
	case domain.CodeValidation, domain.CodeOTPNotMatched, domain.CodeOTPUnknown:
		return http.StatusBadRequest
	case domain.CodeUnauthorized:
		return http.StatusUnauthorized
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeConflict:
		return http.StatusConflict
	case domain.CodeRateLimited:
		return http.StatusTooManyRequests
	case domain.CodeGateway:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the body for err. Storage and internal causes are
// never exposed; only the error's public message is.
func NewErrorResponse(err error) ErrorResponse {
	de := domain.AsError(err)
	resp := ErrorResponse{
		Code:    de.GetCode(),
		Message: de.GetMessage(),
	}

	var verrs domain.ValidationErrors
	if stderrors.As(err, &verrs) {
		resp.Details = make([]ErrorDetail, len(verrs))
		for i, fe := range verrs {
			resp.Details[i] = ErrorDetail{Field: fe.Field, Message: fe.Message}
		}
	}

	var gerr *domain.GatewayError
	if stderrors.As(err, &gerr) && len(gerr.Payload) > 0 {
		resp.Provider = gerr.Payload
	}
	return resp
}

// RespondWithError sends a standardized error response
func RespondWithError(w http.ResponseWriter, err error) {
	resp := NewErrorResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(resp.Code))
	json.NewEncoder(w).Encode(resp)
}
