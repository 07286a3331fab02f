package admins

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/angelmondragon/dashboard-backend/pkg/security"
)

// CreateInput describes a new administrator. Password is plaintext.
type CreateInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type repository interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	Create(ctx context.Context, admin *models.Admin) error
}

// Service provisions administrators. Logins go through internal/auth.
type Service struct {
	repo     repository
	password config.PasswordConfig
}

func NewService(repo repository, passwordCfg config.PasswordConfig) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("admin repository required")
	}
	return &Service{repo: repo, password: passwordCfg}, nil
}

// Create hashes the password with the configured scheme and stores the admin.
func (s *Service) Create(ctx context.Context, input CreateInput) (*models.Admin, error) {
	email := strings.TrimSpace(input.Email)
	details := map[string]string{}
	if email == "" || !strings.Contains(email, "@") {
		details["email"] = "must be a valid email"
	}
	if input.Password == "" {
		details["password"] = "is required"
	}
	if len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}

	hashed, err := security.HashPassword(input.Password, s.password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash admin password")
	}
	admin := &models.Admin{
		Email:     email,
		Password:  hashed,
		FirstName: optional(input.FirstName),
		LastName:  optional(input.LastName),
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func optional(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}
