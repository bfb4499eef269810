package jwt

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/oklog/ulid/v2"
)

// Issuer is set on every session token
const Issuer = "petcare-service"

type Claims struct {
	jwt.RegisteredClaims
}

// JWT signs HS256 session tokens for verified phone numbers
type JWT struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

// New creates a new JWT service
func New(secret string, duration time.Duration) *JWT {
	return &JWT{
		secret:   []byte(secret),
		duration: duration,
		now:      time.Now,
	}
}

// IssueToken signs a session token whose subject is userID
func (j *JWT) IssueToken(userID ulid.ULID) (string, time.Time, error) {
	issuedAt := j.now()
	expiresAt := issuedAt.Add(j.duration)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ID:        ulid.Make().String(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

// ValidateToken validates a session token and returns its claims
func (j *JWT) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return j.secret, nil
	}, jwt.WithIssuer(Issuer))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Auth returns the verifier the HTTP layer uses for bearer tokens
func (j *JWT) Auth() *jwtauth.JWTAuth {
	return jwtauth.New("HS256", j.secret, nil)
}
