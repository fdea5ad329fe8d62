package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestHMACVerifier(t *testing.T) {
	raw := signHS256(t, "topsecret", jwt.MapClaims{
		"sub":   "user-123",
		"email": "jane@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	tok, err := NewHMACVerifier("topsecret").Verify(context.Background(), raw)
	require.NoError(t, err)

	var claims map[string]interface{}
	require.NoError(t, tok.Claims(&claims))
	assert.Equal(t, "user-123", claims["sub"])
	assert.Equal(t, "jane@example.com", claims["email"])
}

func TestHMACVerifierRejectsWrongSecret(t *testing.T) {
	raw := signHS256(t, "topsecret", jwt.MapClaims{"sub": "user-123"})
	_, err := NewHMACVerifier("other").Verify(context.Background(), raw)
	assert.Error(t, err)
}

func TestHMACVerifierRejectsExpired(t *testing.T) {
	raw := signHS256(t, "topsecret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	_, err := NewHMACVerifier("topsecret").Verify(context.Background(), raw)
	assert.Error(t, err)
}

func TestInsecureVerifier(t *testing.T) {
	// any HS256 token parses regardless of the signing secret
	raw := signHS256(t, "whatever", jwt.MapClaims{"sub": "user-456"})
	tok, err := NewInsecureVerifier().Verify(context.Background(), raw)
	require.NoError(t, err)

	var claims map[string]interface{}
	require.NoError(t, tok.Claims(&claims))
	assert.Equal(t, "user-456", claims["sub"])
}

func TestInsecureVerifierRejectsMalformed(t *testing.T) {
	_, err := NewInsecureVerifier().Verify(context.Background(), "nodots")
	assert.Error(t, err)
}
