package auth_test

import (
	"testing"
	"time"

	"go-jobportal-backend/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", 30*24*time.Hour)

	token, err := issuer.Mint("profile-1", "+919876543210")
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "profile-1", claims.Subject)
	assert.Equal(t, "+919876543210", claims.Phone)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestTokenRejection(t *testing.T) {
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)

	t.Run("Wrong secret", func(t *testing.T) {
		other := auth.NewTokenIssuer("other-secret", time.Hour)
		token, err := other.Mint("profile-1", "+919876543210")
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := auth.NewTokenIssuer("test-secret", -time.Minute)
		token, err := expired.Mint("profile-1", "+919876543210")
		require.NoError(t, err)

		_, err = issuer.Parse(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Garbage input", func(t *testing.T) {
		_, err := issuer.Parse("not-a-token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
