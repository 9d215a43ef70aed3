package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, VerifyPassword(hash, "correct horse battery staple"))
	assert.False(t, VerifyPassword(hash, "wrong password"))
	assert.False(t, VerifyPassword("not-a-hash", "anything"))
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := HashPassword("same password")
	require.NoError(t, err)
	hash2, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, hash1, hash2)
}
