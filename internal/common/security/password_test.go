package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("EatSleepRepeat")
	require.NoError(t, err)
	require.NotEqual(t, "EatSleepRepeat", hash)

	assert.True(t, CheckPasswordHash("EatSleepRepeat", hash))
	assert.False(t, CheckPasswordHash("eatsleeprepeat", hash))
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("Big100")
	require.NoError(t, err)
	second, err := HashPassword("Big100")
	require.NoError(t, err)

	// Random salt: same plaintext, different hashes, both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPasswordHash("Big100", first))
	assert.True(t, CheckPasswordHash("Big100", second))
}

func TestCheckPasswordHash_MalformedHash(t *testing.T) {
	assert.False(t, CheckPasswordHash("whatever", "not-a-bcrypt-hash"))
	assert.False(t, CheckPasswordHash("whatever", ""))
}
