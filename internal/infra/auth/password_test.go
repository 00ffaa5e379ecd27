package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret!", hash)

	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret!"))
}

func TestHashIsSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	assert.NoError(t, err)
	second, err := HashPassword("same-password")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
