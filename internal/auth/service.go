package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	pkgAuth "github.com/angelmondragon/dashboard-backend/pkg/auth"
	"github.com/angelmondragon/dashboard-backend/pkg/auth/session"
	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
	"github.com/angelmondragon/dashboard-backend/pkg/metrics"
	"github.com/angelmondragon/dashboard-backend/pkg/security"
)

const invalidCredentialsMessage = "Invalid email or password"

// Service defines the behavior needed by the auth controllers.
type Service interface {
	AdminLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	ShopLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Logout(ctx context.Context, kind enums.IdentityKind, sessionID string)
	Session(ctx context.Context, kind enums.IdentityKind, sessionID string) (*session.Record, error)
}

type adminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type shopRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Shop, error)
}

type sessionStore interface {
	session.Reader
	Save(ctx context.Context, kind enums.IdentityKind, sessionID string, record session.Record) error
	Clear(ctx context.Context, kind enums.IdentityKind, sessionID string) error
}

type service struct {
	admins   adminRepository
	shops    shopRepository
	sessions sessionStore
	cfg      config.SessionConfig
	metrics  *metrics.AuthMetrics
	logg     *logger.Logger
	now      func() time.Time
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Admins   adminRepository
	Shops    shopRepository
	Sessions sessionStore
	Session  config.SessionConfig
	Metrics  *metrics.AuthMetrics
	Logger   *logger.Logger
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Admins == nil {
		return nil, fmt.Errorf("admin repository is required")
	}
	if params.Shops == nil {
		return nil, fmt.Errorf("shop repository is required")
	}
	if params.Sessions == nil {
		return nil, fmt.Errorf("session store is required")
	}
	return &service{
		admins:   params.Admins,
		shops:    params.Shops,
		sessions: params.Sessions,
		cfg:      params.Session,
		metrics:  params.Metrics,
		logg:     params.Logger,
		now:      time.Now,
	}, nil
}

func (s *service) AdminLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	kind := enums.IdentityKindAdmin
	if blankCredentials(req) {
		return nil, s.reject(kind)
	}
	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, s.lookupFailed(kind, err)
	}
	if err := s.verify(kind, req.Password, admin.Password); err != nil {
		return nil, err
	}

	return s.open(ctx, kind, session.Record{
		ID:        admin.ID,
		Email:     admin.Email,
		Name:      displayName(admin),
		Role:      kind.Role(),
		FirstName: admin.FirstName,
		LastName:  admin.LastName,
		CreatedAt: admin.CreatedAt,
	})
}

func (s *service) ShopLogin(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	kind := enums.IdentityKindShop
	if blankCredentials(req) {
		return nil, s.reject(kind)
	}
	shop, err := s.shops.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, s.lookupFailed(kind, err)
	}
	if shop.Password == nil || shop.Email == nil {
		return nil, s.reject(kind)
	}
	if err := s.verify(kind, req.Password, *shop.Password); err != nil {
		return nil, err
	}

	return s.open(ctx, kind, session.Record{
		ID:        shop.ID,
		Email:     *shop.Email,
		Name:      shop.Name,
		Role:      kind.Role(),
		Phone:     shop.Phone,
		Address:   shop.Address,
		CreatedAt: shop.CreatedAt,
	})
}

// Logout clears the session record. Failures are logged and otherwise ignored
// so the caller always ends up signed out client side.
func (s *service) Logout(ctx context.Context, kind enums.IdentityKind, sessionID string) {
	if err := s.sessions.Clear(ctx, kind, sessionID); err != nil && s.logg != nil {
		ctx = s.logg.WithSessionKind(ctx, kind.String())
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "auth.logout_failed")
	}
}

func (s *service) Session(ctx context.Context, kind enums.IdentityKind, sessionID string) (*session.Record, error) {
	record, ok := s.sessions.Load(ctx, kind, sessionID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session").
			WithDetails(map[string]string{"login": kind.LoginPath()})
	}
	return record, nil
}

func (s *service) open(ctx context.Context, kind enums.IdentityKind, record session.Record) (*LoginResponse, error) {
	sessionID := session.NewSessionID()
	token, err := pkgAuth.MintSessionToken(s.cfg, s.now().UTC(), pkgAuth.SessionTokenPayload{
		Kind:      kind,
		SubjectID: record.ID,
		SessionID: sessionID,
	})
	if err != nil {
		s.metrics.IncLogin(kind.String(), metrics.LoginOutcomeError)
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint session token")
	}
	if err := s.sessions.Save(ctx, kind, sessionID, record); err != nil {
		s.metrics.IncLogin(kind.String(), metrics.LoginOutcomeError)
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store session")
	}

	record.Kind = kind
	s.metrics.IncLogin(kind.String(), metrics.LoginOutcomeSuccess)
	return &LoginResponse{Token: token, Session: &record}, nil
}

func (s *service) verify(kind enums.IdentityKind, password, stored string) error {
	valid, err := security.VerifyPassword(password, stored)
	if err != nil || !valid {
		// an unreadable stored hash is treated like a wrong password
		return s.reject(kind)
	}
	return nil
}

func (s *service) lookupFailed(kind enums.IdentityKind, err error) error {
	if pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		return s.reject(kind)
	}
	s.metrics.IncLogin(kind.String(), metrics.LoginOutcomeError)
	return err
}

func (s *service) reject(kind enums.IdentityKind) error {
	s.metrics.IncLogin(kind.String(), metrics.LoginOutcomeRejected)
	return pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
}

func blankCredentials(req LoginRequest) bool {
	return strings.TrimSpace(req.Email) == "" || req.Password == ""
}

// displayName is "first last" when either is set, else the email.
func displayName(admin *models.Admin) string {
	var parts []string
	for _, part := range []*string{admin.FirstName, admin.LastName} {
		if part != nil && strings.TrimSpace(*part) != "" {
			parts = append(parts, strings.TrimSpace(*part))
		}
	}
	if len(parts) == 0 {
		return admin.Email
	}
	return strings.Join(parts, " ")
}
