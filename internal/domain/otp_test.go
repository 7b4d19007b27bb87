package domain_test

import (
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateChallengeCode(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := domain.GenerateChallengeCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, ch := range code {
			assert.True(t, ch >= '0' && ch <= '9', "code must be numeric: %s", code)
		}
		assert.NotEqual(t, '0', rune(code[0]), "code must not have a leading zero: %s", code)
	}
}

func TestChallengeVerify(t *testing.T) {
	now := time.Now()

	t.Run("Correct code within window succeeds", func(t *testing.T) {
		c := domain.NewChallenge("123456", now, 10*time.Minute)
		result := c.Verify("123456", now.Add(5*time.Minute), domain.MaxChallengeAttempts)
		assert.Equal(t, domain.VerifyOK, result)
	})

	t.Run("Nil challenge reports no challenge", func(t *testing.T) {
		var c *domain.Challenge
		result := c.Verify("123456", now, domain.MaxChallengeAttempts)
		assert.Equal(t, domain.VerifyNoChallenge, result)
	})

	t.Run("Code is dead exactly at expiry", func(t *testing.T) {
		c := domain.NewChallenge("123456", now, 10*time.Minute)
		result := c.Verify("123456", now.Add(10*time.Minute), domain.MaxChallengeAttempts)
		assert.Equal(t, domain.VerifyExpired, result)
		// Expiry does not remove the challenge or touch the counter
		assert.Equal(t, 0, c.Attempts)
	})

	t.Run("Mismatch increments the attempt counter", func(t *testing.T) {
		c := domain.NewChallenge("123456", now, 10*time.Minute)
		result := c.Verify("000000", now, domain.MaxChallengeAttempts)
		assert.Equal(t, domain.VerifyMismatch, result)
		assert.Equal(t, 1, c.Attempts)
	})

	t.Run("Correct code after three wrong attempts is still rejected", func(t *testing.T) {
		c := domain.NewChallenge("123456", now, 10*time.Minute)
		for i := 0; i < 3; i++ {
			assert.Equal(t, domain.VerifyMismatch, c.Verify("000000", now, domain.MaxChallengeAttempts))
		}
		result := c.Verify("123456", now, domain.MaxChallengeAttempts)
		assert.Equal(t, domain.VerifyExhausted, result)
	})

	t.Run("Expiry is checked before exhaustion", func(t *testing.T) {
		c := domain.NewChallenge("123456", now, 10*time.Minute)
		c.Attempts = domain.MaxChallengeAttempts
		result := c.Verify("123456", now.Add(time.Hour), domain.MaxChallengeAttempts)
		assert.Equal(t, domain.VerifyExpired, result)
	})

	t.Run("Re-issuance replaces the old code", func(t *testing.T) {
		old := domain.NewChallenge("111111", now, 10*time.Minute)
		old.Attempts = 2
		replacement := domain.NewChallenge("222222", now.Add(time.Minute), 10*time.Minute)
		assert.Equal(t, domain.VerifyMismatch, replacement.Verify("111111", now.Add(2*time.Minute), domain.MaxChallengeAttempts))
		// The replacement started with a fresh counter
		assert.Equal(t, 1, replacement.Attempts)
	})
}

func TestChallengeState(t *testing.T) {
	now := time.Now()

	var none *domain.Challenge
	assert.Equal(t, domain.StateNoChallenge, none.State(now, domain.MaxChallengeAttempts))

	pending := domain.NewChallenge("123456", now, 10*time.Minute)
	assert.Equal(t, domain.StatePending, pending.State(now, domain.MaxChallengeAttempts))
	assert.Equal(t, domain.StateExpired, pending.State(now.Add(10*time.Minute), domain.MaxChallengeAttempts))

	exhausted := domain.NewChallenge("123456", now, 10*time.Minute)
	exhausted.Attempts = domain.MaxChallengeAttempts
	assert.Equal(t, domain.StateExhausted, exhausted.State(now, domain.MaxChallengeAttempts))
}
