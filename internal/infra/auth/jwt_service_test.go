package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
)

func newTestJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	if ttl != 0 {
		cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}
	}

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	accountID := uuid.New()

	token, err := svc.Issue(accountID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, accountID, subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	// Clearly non-JWT input
	subject, err := svc.Verify("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	assert.Equal(t, uuid.Nil, subject)
}

func TestJWTService_WrongKey(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig("first_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestJWTConfig("second_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	token, err := issuer.Issue(uuid.New())
	require.NoError(t, err)

	// A token signed with a different key must fail with the same error as
	// any other invalid token.
	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing", -time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_TamperedToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("test_access_secret_key_very_long_for_testing", 0))
	require.NoError(t, err)

	token, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig("", 0))
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultTTLIsOneHour(t *testing.T) {
	cfg := newTestJWTConfig("test_access_secret_key_very_long_for_testing", 0)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL())
}
