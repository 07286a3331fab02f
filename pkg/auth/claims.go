package auth

import (
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenPayload captures the data available when minting a session token.
type SessionTokenPayload struct {
	Kind      enums.IdentityKind
	SubjectID int64
	SessionID string
}

// SessionTokenClaims represents the typed JWT handed to dashboard clients.
// The jti is the session id under which the session record is stored.
type SessionTokenClaims struct {
	Kind      enums.IdentityKind `json:"kind"`
	SubjectID int64              `json:"sid"`
	jwt.RegisteredClaims
}

// SessionID returns the id of the stored session record.
func (c *SessionTokenClaims) SessionID() string {
	return c.ID
}
