package controllers

import (
	"net/http"

	"github.com/angelmondragon/dashboard-backend/api/responses"
	"github.com/angelmondragon/dashboard-backend/api/validators"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
)

const (
	maxNameLen   = 200
	maxSearchLen = 100
)

// unavailable reports whether svc is missing and writes the error if so.
func unavailable(w http.ResponseWriter, r *http.Request, logg *logger.Logger, missing bool, name string) bool {
	if missing {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, name+" service unavailable"))
	}
	return missing
}

// deleted is the payload returned after a confirmed delete.
type deleted struct {
	ID int64 `json:"id"`
}

func sanitizeOptional(v *string, maxLen int) *string {
	if v == nil {
		return nil
	}
	trimmed := validators.SanitizeString(*v, maxLen)
	return &trimmed
}
