package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	accountID := uuid.New()

	token, err := CreateToken(accountID)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, accountID.String(), claims.AccountID)
}

func TestValidateToken_InvalidTokensAlwaysError(t *testing.T) {
	wrongKey := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		AccountID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	tampered, err := wrongKey.SignedString([]byte("not-the-server-key"))
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":         "not.a.token",
		"empty":           "",
		"wrong signature": tampered,
	} {
		t.Run(name, func(t *testing.T) {
			claims, err := ValidateToken(token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		AccountID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	token, err := expired.SignedString(jwtKey)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
