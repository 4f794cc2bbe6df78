package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPasswordHash(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestCheckPasswordHash_EmptyHashNeverMatches(t *testing.T) {
	assert.False(t, CheckPasswordHash("", ""))
	assert.False(t, CheckPasswordHash("s3cret", ""))
}

func TestHashPassword_RejectsEmpty(t *testing.T) {
	_, err := HashPassword("")
	assert.Error(t, err)
}
