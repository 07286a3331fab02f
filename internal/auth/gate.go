package auth

import (
	"context"
	"fmt"
	"strings"

	pkgAuth "github.com/angelmondragon/dashboard-backend/pkg/auth"
	"github.com/angelmondragon/dashboard-backend/pkg/auth/session"
	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
)

// State is the outcome of a gate check.
type State string

const (
	// StateLoading is the state before the session record has been read.
	StateLoading         State = "loading"
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticated   State = "authenticated"
)

// Decision tells the caller whether to render protected content or send the
// user to the login entry point of the requested kind.
type Decision struct {
	State     State
	Kind      enums.IdentityKind
	SessionID string
	Record    *session.Record
	LoginPath string
}

// Gate resolves a bearer token into a session decision. A present record is
// trusted until logout; there is no refresh or timeout.
type Gate struct {
	sessions session.Reader
	cfg      config.SessionConfig
}

func NewGate(sessions session.Reader, cfg config.SessionConfig) (*Gate, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session reader is required")
	}
	return &Gate{sessions: sessions, cfg: cfg}, nil
}

// Pending returns the decision held while the record is being read.
func Pending(kind enums.IdentityKind) Decision {
	return Decision{State: StateLoading, Kind: kind, LoginPath: kind.LoginPath()}
}

// Evaluate always resolves to authenticated or unauthenticated.
func (g *Gate) Evaluate(ctx context.Context, kind enums.IdentityKind, token string) Decision {
	decision := Pending(kind)
	decision.State = StateUnauthenticated

	token = strings.TrimSpace(token)
	if token == "" {
		return decision
	}
	claims, err := pkgAuth.ParseSessionToken(g.cfg, token)
	if err != nil || claims.Kind != kind {
		return decision
	}

	record, ok := g.sessions.Load(ctx, kind, claims.SessionID())
	if !ok || record.Role != kind.Role() || record.ID != claims.SubjectID {
		return decision
	}

	decision.State = StateAuthenticated
	decision.SessionID = claims.SessionID()
	decision.Record = record
	return decision
}
