package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipekarrohit/backend-project/config"
)

func newTestTokenService(secret string, ttl time.Duration) *TokenService {
	return NewTokenService(config.AuthConfig{JWTSecret: secret, TokenDuration: ttl})
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestTokenService("super-secret", time.Hour)

	token, err := svc.Issue(42, "jane@example.com", RoleTeacher)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, ok := svc.Verify(token)
	require.True(t, ok)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, RoleTeacher, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyExpired(t *testing.T) {
	svc := newTestTokenService("super-secret", -1*time.Second)

	token, err := svc.Issue(1, "a@x.com", RoleStudent)
	require.NoError(t, err)

	// Signature is valid but expiry has passed.
	_, ok := svc.Verify(token)
	assert.False(t, ok)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := newTestTokenService("right-secret", time.Hour)
	verifier := newTestTokenService("wrong-secret", time.Hour)

	token, err := issuer.Issue(1, "a@x.com", RoleStudent)
	require.NoError(t, err)

	_, ok := verifier.Verify(token)
	assert.False(t, ok)
}

func TestVerifyMalformed(t *testing.T) {
	svc := newTestTokenService("k", time.Hour)

	for _, input := range []string{"", "not.a.jwt", "garbage"} {
		_, ok := svc.Verify(input)
		assert.False(t, ok, "input %q should be invalid", input)
	}
}
