package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("secret", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Subject)

	_, err = ParseJWT("other", token)
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestGenerateJWT_RequiresSecret(t *testing.T) {
	_, err := GenerateJWT("", "admin", time.Hour)
	assert.EqualError(t, err, "JWT_SECRET is not set")
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := GenerateJWT("secret", "admin", -time.Minute)
	require.NoError(t, err)

	_, err = ParseJWT("secret", token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseJWT_RejectsOtherSigningMethods(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, AdminClaims{Username: "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseJWT("secret", token)
	assert.Error(t, err)
}
