package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	hash, err := h.Hash("Password123!")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotContains(t, hash, "Password123!")

	assert.True(t, h.Verify("Password123!", hash))
	assert.False(t, h.Verify("Password123?", hash))
	assert.False(t, h.Verify("", hash))
}

func TestBcryptHasher_DistinctSalts(t *testing.T) {
	h := &BcryptHasher{Cost: bcrypt.MinCost}

	h1, err := h.Hash("Password123!")
	require.NoError(t, err)
	h2, err := h.Hash("Password123!")
	require.NoError(t, err)

	// salt is random per hash, yet both verify
	assert.NotEqual(t, h1, h2)
	assert.True(t, h.Verify("Password123!", h1))
	assert.True(t, h.Verify("Password123!", h2))
}

func TestBcryptHasher_MalformedHashFailsClosed(t *testing.T) {
	h := NewBcryptHasher()

	assert.False(t, h.Verify("Password123!", ""))
	assert.False(t, h.Verify("Password123!", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("Password123!", "$2a$xx$garbage"))
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := NewID()
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
