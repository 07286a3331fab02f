package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/angelmondragon/dashboard-backend/api/responses"
	"github.com/angelmondragon/dashboard-backend/api/validators"
	"github.com/angelmondragon/dashboard-backend/internal/auth"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
)

// SessionGate resolves a bearer token into a session decision.
type SessionGate interface {
	Evaluate(ctx context.Context, kind enums.IdentityKind, token string) auth.Decision
}

// RequireSession admits requests carrying a live session of the given kind.
// Everyone else gets a 401 pointing at the login entry point for that kind.
func RequireSession(gate SessionGate, kind enums.IdentityKind, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := gate.Evaluate(r.Context(), kind, validators.BearerToken(r.Header.Get("Authorization")))
			if decision.State != auth.StateAuthenticated {
				w.Header().Set("Location", decision.LoginPath)
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required").
					WithDetails(map[string]string{"login": decision.LoginPath}))
				return
			}

			ctx := WithSession(r.Context(), decision.SessionID, decision.Record)
			if logg != nil {
				ctx = logg.WithSessionKind(ctx, kind.String())
				ctx = logg.WithActorID(ctx, strconv.FormatInt(decision.Record.ID, 10))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
