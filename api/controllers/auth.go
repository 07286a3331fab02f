package controllers

import (
	"net/http"

	"github.com/angelmondragon/dashboard-backend/api/middleware"
	"github.com/angelmondragon/dashboard-backend/api/responses"
	"github.com/angelmondragon/dashboard-backend/api/validators"
	authsvc "github.com/angelmondragon/dashboard-backend/internal/auth"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
)

// Login handles the credential login of the given identity kind.
func Login(kind enums.IdentityKind, svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "auth") {
			return
		}
		var req authsvc.LoginRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		req.Email = validators.SanitizeString(req.Email, maxNameLen)

		var (
			resp *authsvc.LoginResponse
			err  error
		)
		switch kind {
		case enums.IdentityKindShop:
			resp, err = svc.ShopLogin(r.Context(), req)
		default:
			resp, err = svc.AdminLogin(r.Context(), req)
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMutation(w, http.StatusOK, resp, "Signed in successfully")
	}
}

// Logout clears the session named by the bearer token. It succeeds even when
// the token is stale so the client can always drop its copy.
func Logout(kind enums.IdentityKind, gate middleware.SessionGate, svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil || gate == nil, "auth") {
			return
		}
		decision := gate.Evaluate(r.Context(), kind, validators.BearerToken(r.Header.Get("Authorization")))
		if decision.State == authsvc.StateAuthenticated {
			svc.Logout(r.Context(), kind, decision.SessionID)
		}
		responses.WriteMutation(w, http.StatusOK, map[string]string{"login": kind.LoginPath()}, "Signed out")
	}
}

// Session returns the record of the caller's current session. It runs
// behind RequireSession, which supplies the session id.
func Session(kind enums.IdentityKind, svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "auth") {
			return
		}
		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required").
				WithDetails(map[string]string{"login": kind.LoginPath()}))
			return
		}
		record, err := svc.Session(r.Context(), kind, sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}
