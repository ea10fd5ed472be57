package controllers

import (
	"testing"
	"time"

	"filmoteca/config"
	"filmoteca/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupJWT(t *testing.T) {
	t.Helper()
	var cfg config.Configuration
	cfg.Security.JwtSecret = "test-secret"
	cfg.Security.TokenTTLMinutes = 60
	Setup(cfg, ledger.NewMemoryLedger())
}

func TestSessionTokenRoundtrip(t *testing.T) {
	setupJWT(t)

	token, err := SignSessionToken("user-123", "admin", time.Hour)
	require.NoError(t, err)

	claims, err := ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestSessionTokenExpired(t *testing.T) {
	setupJWT(t)

	token, err := SignSessionToken("user-123", "user", -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token)
	assert.Error(t, err)
}

func TestSessionTokenTampered(t *testing.T) {
	setupJWT(t)

	token, err := SignSessionToken("user-123", "user", time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token + "x")
	assert.Error(t, err)
}

func TestSessionTokenWrongSecret(t *testing.T) {
	setupJWT(t)
	token, err := SignSessionToken("user-123", "user", time.Hour)
	require.NoError(t, err)

	var cfg config.Configuration
	cfg.Security.JwtSecret = "other-secret"
	Setup(cfg, ledger.NewMemoryLedger())

	_, err = ParseSessionToken(token)
	assert.Error(t, err)
}
