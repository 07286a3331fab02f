package auth

import "github.com/angelmondragon/dashboard-backend/pkg/auth/session"

// LoginRequest captures the credentials sent to either login endpoint.
// Blank or malformed credentials are rejected by the service with the same
// message as a wrong password.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the session token and the stored session record.
type LoginResponse struct {
	Token   string          `json:"token"`
	Session *session.Record `json:"session"`
}
