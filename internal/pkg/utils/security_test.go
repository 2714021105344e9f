package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("Hash And Verify", func(t *testing.T) {
		hash, err := HashPassword("s3cretpass")
		require.NoError(t, err)

		assert.NotEqual(t, "s3cretpass", hash, "hash should not be the plaintext")
		assert.True(t, CheckPasswordHash("s3cretpass", hash), "correct password should verify")
		assert.False(t, CheckPasswordHash("wrongpass", hash), "wrong password should not verify")
	})

	t.Run("Same Password Hashes Differently", func(t *testing.T) {
		first, err := HashPassword("s3cretpass")
		require.NoError(t, err)
		second, err := HashPassword("s3cretpass")
		require.NoError(t, err)

		assert.NotEqual(t, first, second, "bcrypt should salt each hash")
	})
}

func TestSessionJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-abc", secret, 1)
		require.NoError(t, err)

		sessionID, err := ParseJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "session-abc", sessionID, "parsed session id should match the one signed")
	})

	t.Run("Wrong Secret Is Rejected", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-abc", secret, 1)
		require.NoError(t, err)

		_, err = ParseJWT(token, "another-secret")
		assert.Error(t, err, "a token signed with a different secret must not parse")
	})

	t.Run("Garbage Token Is Rejected", func(t *testing.T) {
		_, err := ParseJWT("not-a-jwt", secret)
		assert.Error(t, err)
	})

	t.Run("Expired Token Is Rejected", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-abc", secret, -1)
		require.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err, "an already-expired token must not parse")
	})
}
