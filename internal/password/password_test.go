package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Remeraldb/ValidatateInputDataTest/internal/password"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := password.Hash("Abcdefg1")
	require.NoError(t, err)

	assert.NotEqual(t, "Abcdefg1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2"))

	assert.True(t, password.Compare("Abcdefg1", hash))
	assert.False(t, password.Compare("Abcdefg2", hash))
	assert.False(t, password.Compare("", hash))
}

func TestCompare_MalformedHash(t *testing.T) {
	// A corrupt stored hash is a mismatch, not an error.
	assert.False(t, password.Compare("Abcdefg1", "not-a-bcrypt-hash"))
	assert.False(t, password.Compare("Abcdefg1", ""))
}

func TestHash_Salted(t *testing.T) {
	first, err := password.Hash("Abcdefg1")
	require.NoError(t, err)
	second, err := password.Hash("Abcdefg1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, password.Compare("Abcdefg1", first))
	assert.True(t, password.Compare("Abcdefg1", second))
}
