package auth

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/myanimal/petcare-service/internal/domain"
	"github.com/myanimal/petcare-service/internal/infrastructure/jwt"
	"github.com/myanimal/petcare-service/internal/interfaces/http/errors"
	"go.uber.org/zap"
)

// AuthMiddleware admits requests carrying a valid session token and puts the
// token subject into the request context
type AuthMiddleware struct {
	ja     *jwtauth.JWTAuth
	logger *zap.Logger
}

func NewAuthMiddleware(ja *jwtauth.JWTAuth, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{ja: ja, logger: logger}
}

// Authenticator verifies the bearer token, then requires it to be valid
func (m *AuthMiddleware) Authenticator(next http.Handler) http.Handler {
	return jwtauth.Verifier(m.ja)(m.requireSubject(next))
}

func (m *AuthMiddleware) requireSubject(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			m.logger.Debug("rejected session token", zap.Error(err))
			errors.RespondWithError(w, domain.ErrUnauthorized.WithMessage("Invalid token"))
			return
		}
		if token.Issuer() != jwt.Issuer || token.Subject() == "" {
			errors.RespondWithError(w, domain.ErrUnauthorized.WithMessage("Invalid token"))
			return
		}

		ctx := domain.WithSubject(r.Context(), token.Subject())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
