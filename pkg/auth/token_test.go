package auth

import (
	"testing"
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionConfig() config.SessionConfig {
	return config.SessionConfig{Secret: "secret", Issuer: "dashboard"}
}

func TestMintAndParseSessionToken(t *testing.T) {
	cfg := sessionConfig()
	now := time.Now().UTC()

	token, err := MintSessionToken(cfg, now, SessionTokenPayload{
		Kind:      enums.IdentityKindShop,
		SubjectID: 42,
		SessionID: "session-1",
	})
	require.NoError(t, err)

	claims, err := ParseSessionToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, enums.IdentityKindShop, claims.Kind)
	assert.Equal(t, int64(42), claims.SubjectID)
	assert.Equal(t, "session-1", claims.SessionID())
	assert.Equal(t, "42", claims.Subject)
	assert.Nil(t, claims.ExpiresAt, "sessions have no expiry by default")
}

func TestMintSessionTokenHonoursExpiration(t *testing.T) {
	cfg := sessionConfig()
	cfg.ExpirationMinutes = 5
	now := time.Now().UTC()

	token, err := MintSessionToken(cfg, now, SessionTokenPayload{Kind: enums.IdentityKindAdmin, SubjectID: 1, SessionID: "s"})
	require.NoError(t, err)

	claims, err := ParseSessionToken(cfg, token)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, now.Add(5*time.Minute), claims.ExpiresAt.Time, time.Second)

	expired, err := MintSessionToken(cfg, now.Add(-time.Hour), SessionTokenPayload{Kind: enums.IdentityKindAdmin, SubjectID: 1, SessionID: "s"})
	require.NoError(t, err)
	_, err = ParseSessionToken(cfg, expired)
	assert.Error(t, err)
}

func TestMintSessionTokenValidatesInput(t *testing.T) {
	now := time.Now()
	_, err := MintSessionToken(config.SessionConfig{Issuer: "x"}, now, SessionTokenPayload{Kind: enums.IdentityKindAdmin, SessionID: "s"})
	assert.Error(t, err, "missing secret")

	_, err = MintSessionToken(sessionConfig(), now, SessionTokenPayload{Kind: "customer", SessionID: "s"})
	assert.Error(t, err, "unknown kind")

	_, err = MintSessionToken(sessionConfig(), now, SessionTokenPayload{Kind: enums.IdentityKindAdmin})
	assert.Error(t, err, "missing session id")
}

func TestParseSessionTokenRejectsForeignTokens(t *testing.T) {
	token, err := MintSessionToken(sessionConfig(), time.Now(), SessionTokenPayload{Kind: enums.IdentityKindAdmin, SubjectID: 1, SessionID: "s"})
	require.NoError(t, err)

	other := sessionConfig()
	other.Secret = "different"
	_, err = ParseSessionToken(other, token)
	assert.Error(t, err, "wrong secret")

	other = sessionConfig()
	other.Issuer = "someone-else"
	_, err = ParseSessionToken(other, token)
	assert.Error(t, err, "wrong issuer")

	_, err = ParseSessionToken(sessionConfig(), "not-a-jwt")
	assert.Error(t, err)
}
