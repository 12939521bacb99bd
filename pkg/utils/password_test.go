package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "logitrack/pkg/errors"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "Secret123", hash)

	assert.True(t, CheckPassword(hash, "Secret123"))
	assert.False(t, CheckPassword(hash, "secret123"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("Secret123"))

	weak := []string{
		"Sh0rt", // too short
		"nouppercase1",
		"NOLOWERCASE1",
		"NoDigitsHere",
	}
	for _, pw := range weak {
		assert.ErrorIs(t, ValidatePassword(pw), appErrors.ErrWeakPassword, "password %q", pw)
	}
}
