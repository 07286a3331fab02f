package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/dashboard-backend/internal/auth"
	"github.com/angelmondragon/dashboard-backend/pkg/auth/session"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
)

type stubGate struct {
	decision  auth.Decision
	lastToken string
}

func (g *stubGate) Evaluate(_ context.Context, kind enums.IdentityKind, token string) auth.Decision {
	g.lastToken = token
	d := g.decision
	d.Kind = kind
	d.LoginPath = kind.LoginPath()
	return d
}

func TestRequireSessionRejectsUnauthenticated(t *testing.T) {
	gate := &stubGate{decision: auth.Decision{State: auth.StateUnauthenticated}}
	called := false
	handler := RequireSession(gate, enums.IdentityKindShop, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/shop/v1/products", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if called {
		t.Fatal("expected handler not to run")
	}
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
	if got := resp.Header().Get("Location"); got != "/login/shop" {
		t.Fatalf("expected shop login location, got %q", got)
	}

	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "UNAUTHORIZED" || body.Error.Details["login"] != "/login/shop" {
		t.Fatalf("unexpected error body: %s", resp.Body.String())
	}
}

func TestRequireSessionSeedsContext(t *testing.T) {
	record := &session.Record{ID: 7, Role: "admin", Kind: enums.IdentityKindAdmin}
	gate := &stubGate{decision: auth.Decision{State: auth.StateAuthenticated, SessionID: "sid-1", Record: record}}

	var (
		got   *session.Record
		gotID string
	)
	handler := RequireSession(gate, enums.IdentityKindAdmin, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = SessionFromContext(r.Context())
		gotID = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/v1/stats", nil)
	req.Header.Set("Authorization", "Bearer tok-123")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", resp.Code)
	}
	if gate.lastToken != "tok-123" {
		t.Fatalf("expected bearer prefix stripped, got %q", gate.lastToken)
	}
	if got != record || gotID != "sid-1" {
		t.Fatalf("expected session in context, got %+v %q", got, gotID)
	}
}

func TestSessionFromEmptyContext(t *testing.T) {
	if _, ok := SessionFromContext(context.Background()); ok {
		t.Fatal("expected no session")
	}
}
