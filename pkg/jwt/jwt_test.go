package jwt

import (
	"testing"
	"time"

	"medtrack/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(config.SessionConfig{Secret: "s3cret", TTL: time.Hour})
	userID := uuid.New()

	token, tokenID, err := svc.GenerateSessionToken(userID, "doctor")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "doctor", claims.Role)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	issuer := NewJWTService(config.SessionConfig{Secret: "one", TTL: time.Hour})
	verifier := NewJWTService(config.SessionConfig{Secret: "two", TTL: time.Hour})

	token, _, err := issuer.GenerateSessionToken(uuid.New(), "patient")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpired(t *testing.T) {
	svc := NewJWTService(config.SessionConfig{Secret: "s3cret", TTL: -time.Minute})

	token, _, err := svc.GenerateSessionToken(uuid.New(), "patient")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
