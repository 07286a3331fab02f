package auth

import (
	"context"
	"testing"
	"time"

	pkgAuth "github.com/angelmondragon/dashboard-backend/pkg/auth"
	"github.com/angelmondragon/dashboard-backend/pkg/auth/session"
	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintFor(t *testing.T, kind enums.IdentityKind, subjectID int64, sessionID string) string {
	t.Helper()
	token, err := pkgAuth.MintSessionToken(testSessionCfg, time.Now(), pkgAuth.SessionTokenPayload{
		Kind:      kind,
		SubjectID: subjectID,
		SessionID: sessionID,
	})
	require.NoError(t, err)
	return token
}

func TestGateEvaluate(t *testing.T) {
	ctx := context.Background()
	sessions := newMemorySessions()
	require.NoError(t, sessions.Save(ctx, enums.IdentityKindAdmin, "admin-sid", session.Record{ID: 7, Role: "admin"}))
	require.NoError(t, sessions.Save(ctx, enums.IdentityKindShop, "shop-sid", session.Record{ID: 4, Role: "shop"}))
	require.NoError(t, sessions.Save(ctx, enums.IdentityKindAdmin, "wrong-role", session.Record{ID: 9, Role: "shop"}))

	gate, err := NewGate(sessions, testSessionCfg)
	require.NoError(t, err)

	otherIssuer := config.SessionConfig{Secret: testSessionCfg.Secret, Issuer: "elsewhere"}
	foreign, err := pkgAuth.MintSessionToken(otherIssuer, time.Now(), pkgAuth.SessionTokenPayload{
		Kind: enums.IdentityKindAdmin, SubjectID: 7, SessionID: "admin-sid",
	})
	require.NoError(t, err)

	cases := []struct {
		name  string
		kind  enums.IdentityKind
		token string
		want  State
	}{
		{"admin session", enums.IdentityKindAdmin, mintFor(t, enums.IdentityKindAdmin, 7, "admin-sid"), StateAuthenticated},
		{"shop session", enums.IdentityKindShop, mintFor(t, enums.IdentityKindShop, 4, "shop-sid"), StateAuthenticated},
		{"missing token", enums.IdentityKindAdmin, "", StateUnauthenticated},
		{"garbage token", enums.IdentityKindAdmin, "not-a-jwt", StateUnauthenticated},
		{"foreign issuer", enums.IdentityKindAdmin, foreign, StateUnauthenticated},
		{"shop token at admin gate", enums.IdentityKindAdmin, mintFor(t, enums.IdentityKindShop, 4, "shop-sid"), StateUnauthenticated},
		{"no stored record", enums.IdentityKindAdmin, mintFor(t, enums.IdentityKindAdmin, 7, "gone"), StateUnauthenticated},
		{"record with other role", enums.IdentityKindAdmin, mintFor(t, enums.IdentityKindAdmin, 9, "wrong-role"), StateUnauthenticated},
		{"record of another subject", enums.IdentityKindAdmin, mintFor(t, enums.IdentityKindAdmin, 8, "admin-sid"), StateUnauthenticated},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := gate.Evaluate(ctx, tc.kind, tc.token)
			assert.Equal(t, tc.want, decision.State)
			assert.Equal(t, tc.kind.LoginPath(), decision.LoginPath)
			if tc.want == StateAuthenticated {
				require.NotNil(t, decision.Record)
				assert.NotEmpty(t, decision.SessionID)
			} else {
				assert.Nil(t, decision.Record)
			}
		})
	}
}

func TestPendingDecision(t *testing.T) {
	decision := Pending(enums.IdentityKindShop)
	assert.Equal(t, StateLoading, decision.State)
	assert.Equal(t, "/login/shop", decision.LoginPath)
}

func TestNewGateRequiresReader(t *testing.T) {
	_, err := NewGate(nil, testSessionCfg)
	assert.Error(t, err)
}
