package domain

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// Challenge is the live OTP sub-record bound to a profile. A nil *Challenge
// means no challenge is pending. Issuing replaces any prior challenge
// unconditionally; a successful verification clears it entirely.
type Challenge struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
	Attempts  int       `json:"attempts"`
}

// MaxChallengeAttempts is the default attempt cap. A challenge that has
// consumed this many attempts is dead regardless of code correctness.
const MaxChallengeAttempts = 3

// ChallengeState is the tagged OTP state derived from a profile snapshot.
type ChallengeState int

const (
	StateNoChallenge ChallengeState = iota
	StatePending
	StateExpired
	StateExhausted
)

// VerifyResult is the outcome of a single verification attempt.
type VerifyResult int

const (
	VerifyOK VerifyResult = iota
	VerifyNoChallenge
	VerifyExpired
	VerifyExhausted
	VerifyMismatch
)

// GenerateChallengeCode draws a 6-digit code uniformly from 100000-999999.
func GenerateChallengeCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("otp: generating code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// NewChallenge creates a Pending challenge with a fresh attempt counter.
func NewChallenge(code string, now time.Time, ttl time.Duration) *Challenge {
	return &Challenge{
		Code:      code,
		ExpiresAt: now.Add(ttl),
		Attempts:  0,
	}
}

// State reports the tagged state at the given instant.
func (c *Challenge) State(now time.Time, maxAttempts int) ChallengeState {
	switch {
	case c == nil:
		return StateNoChallenge
	case !now.Before(c.ExpiresAt):
		return StateExpired
	case c.Attempts >= maxAttempts:
		return StateExhausted
	default:
		return StatePending
	}
}

// Verify checks candidate against the challenge at the given instant.
// Check order: no challenge, expiry (the challenge stays in place), attempt
// exhaustion (terminal), then code comparison. A mismatch increments the
// attempt counter; the caller must persist it so the cap survives retries.
func (c *Challenge) Verify(candidate string, now time.Time, maxAttempts int) VerifyResult {
	if c == nil {
		return VerifyNoChallenge
	}
	if !now.Before(c.ExpiresAt) {
		return VerifyExpired
	}
	if c.Attempts >= maxAttempts {
		return VerifyExhausted
	}
	if candidate != c.Code {
		c.Attempts++
		return VerifyMismatch
	}
	return VerifyOK
}
