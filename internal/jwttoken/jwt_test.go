package jwttoken

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "chipscope/pkg/domain-errors"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("test-signing-key", "chipscope")

	token, err := svc.GenerateToken("operator@rack1", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operator@rack1", claims.Subject)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := NewService("test-signing-key", "chipscope")

	token, err := svc.GenerateToken("operator", -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.Error(t, err)

	var de *dErrors.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, dErrors.CodeUnauthorized, de.Code)
	assert.Contains(t, de.Detail, "expired")
}

func TestValidateWrongKey(t *testing.T) {
	token, err := NewService("key-one", "chipscope").GenerateToken("operator", time.Hour)
	require.NoError(t, err)

	_, err = NewService("key-two", "chipscope").ValidateToken(token)
	require.Error(t, err)

	var de *dErrors.Error
	require.ErrorAs(t, err, &de)
	assert.Equal(t, dErrors.CodeUnauthorized, de.Code)
}

func TestValidateRejectsNonHMAC(t *testing.T) {
	// An unsigned token must not pass just because its header says "none".
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "sneaky"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewService("test-signing-key", "chipscope").ValidateToken(token)
	require.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	_, err := NewService("test-signing-key", "chipscope").ValidateToken("not.a.token")
	require.Error(t, err)
}
