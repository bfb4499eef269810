package jwt

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT(t *testing.T) {
	j := New("test-secret", time.Hour)
	userID := ulid.Make()

	t.Run("validate invalid token", func(t *testing.T) {
		_, err := j.ValidateToken("invalid-token")
		assert.Error(t, err)
	})

	t.Run("validate expired token", func(t *testing.T) {
		expired := New("test-secret", -time.Minute)
		token, _, err := expired.IssueToken(userID)
		require.NoError(t, err)

		_, err = j.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("validate token signed with another secret", func(t *testing.T) {
		token, _, err := New("other-secret", time.Hour).IssueToken(userID)
		require.NoError(t, err)

		_, err = j.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("validate valid token", func(t *testing.T) {
		token, expiresAt, err := j.IssueToken(userID)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		claims, err := j.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.Subject)
		assert.Equal(t, Issuer, claims.Issuer)
	})

	t.Run("jwtauth accepts issued token", func(t *testing.T) {
		token, _, err := j.IssueToken(userID)
		require.NoError(t, err)

		parsed, err := j.Auth().Decode(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), parsed.Subject())
	})
}
