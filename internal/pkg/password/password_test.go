package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, "secret-password", hash)
	assert.True(t, Verify("secret-password", hash))
	assert.False(t, Verify("wrong-password", hash))
}

func TestHashIsSalted(t *testing.T) {
	first, err := Hash("secret-password")
	require.NoError(t, err)
	second, err := Hash("secret-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
