package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("margherita4ever")
	require.NoError(t, err)
	require.NotContains(t, hash, "margherita4ever")

	ok, err := VerifyPassword("margherita4ever", hash)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPassword("sbagliata", hash)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	_, err := VerifyPassword("x", "non-un-hash")
	require.Error(t, err)
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	h1, err := HashPassword("stessa")
	require.NoError(t, err)
	h2, err := HashPassword("stessa")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
