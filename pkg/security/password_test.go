package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("somepassword")
	require.NoError(t, err)

	assert.NotEqual(t, "somepassword", hash)
	assert.True(t, CheckPassword(hash, "somepassword"))
	assert.False(t, CheckPassword(hash, "wrong-password"))
}

func TestHashPassword_Unique(t *testing.T) {
	// bcrypt salts every hash, two hashes of the same input must differ
	h1, err := HashPassword("somepassword")
	require.NoError(t, err)
	h2, err := HashPassword("somepassword")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordLength+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestCheckPassword_InvalidHash(t *testing.T) {
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "somepassword"))
}
