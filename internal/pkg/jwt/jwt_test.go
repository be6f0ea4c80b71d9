package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestGenerateAndValidate(t *testing.T) {
	token, err := Generate("ann@example.com", "Ann", testSecret, 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAndExtract(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", claims.Email)
	assert.Equal(t, "Ann", claims.Name)
	assert.Equal(t, "ann@example.com", claims.Subject)
}

func TestValidateWrongSecret(t *testing.T) {
	token, err := Generate("ann@example.com", "Ann", testSecret, 1)
	require.NoError(t, err)

	_, err = ValidateAndExtract(token, "other-secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateExpired(t *testing.T) {
	token, err := Generate("ann@example.com", "Ann", testSecret, -1)
	require.NoError(t, err)

	_, err = ValidateAndExtract(token, testSecret)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestValidateGarbage(t *testing.T) {
	_, err := ValidateAndExtract("not-a-token", testSecret)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
