package services

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidateToken(t *testing.T) {
	svc := NewAuthService("test-secret", zerolog.Nop())

	token, err := svc.IssueToken(map[string]interface{}{"email": "a@x.com", "name": "A"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewAuthService("test-secret", zerolog.Nop())

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	require.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	issuer := NewAuthService("secret-a", zerolog.Nop())
	verifier := NewAuthService("secret-b", zerolog.Nop())

	token, err := issuer.IssueToken(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateGarbageToken(t *testing.T) {
	svc := NewAuthService("test-secret", zerolog.Nop())

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
}
