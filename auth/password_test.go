package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	digest, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", digest)

	assert.True(t, CheckPassword("s3cret-pass", digest))
	assert.False(t, CheckPassword("wrong-pass", digest))
}

func TestHashPasswordSalted(t *testing.T) {
	a, err := HashPassword("same-input")
	require.NoError(t, err)
	b, err := HashPassword("same-input")
	require.NoError(t, err)

	// bcrypt salts every digest, so equal inputs produce distinct digests.
	assert.NotEqual(t, a, b)
}
