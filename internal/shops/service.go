package shops

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/angelmondragon/dashboard-backend/pkg/security"
)

// Service exposes shop management operations.
type Service interface {
	List(ctx context.Context, search string) ([]ShopDTO, error)
	Get(ctx context.Context, id int64) (*ShopDTO, error)
	Create(ctx context.Context, input CreateInput) (*ShopDTO, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*ShopDTO, error)
	Delete(ctx context.Context, id int64) error
}

type repository interface {
	List(ctx context.Context, search string) ([]models.Shop, error)
	FindByID(ctx context.Context, id int64) (*models.Shop, error)
	Create(ctx context.Context, shop *models.Shop) error
	Update(ctx context.Context, id int64, updates map[string]any) (*models.Shop, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo     repository
	password config.PasswordConfig
	now      func() time.Time
}

func NewService(repo repository, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("shop repository required")
	}
	return &service{repo: repo, password: passwordCfg, now: time.Now}, nil
}

func (s *service) List(ctx context.Context, search string) ([]ShopDTO, error) {
	rows, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]ShopDTO, 0, len(rows))
	for i := range rows {
		out = append(out, NewShopDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ShopDTO, error) {
	shop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := NewShopDTO(shop)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*ShopDTO, error) {
	shop := &models.Shop{
		Name:    strings.TrimSpace(input.Name),
		Email:   trimOptional(input.Email),
		Phone:   trimOptional(input.Phone),
		Address: trimOptional(input.Address),
	}
	if shop.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"name": "is required"})
	}

	hashed, err := s.hashOptional(input.Password)
	if err != nil {
		return nil, err
	}
	shop.Password = hashed

	if err := s.repo.Create(ctx, shop); err != nil {
		return nil, err
	}
	dto := NewShopDTO(shop)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*ShopDTO, error) {
	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"name": "is required"})
		}
		updates["name"] = name
	}
	if input.Email != nil {
		updates["email"] = trimOptional(input.Email)
	}
	if input.Phone != nil {
		updates["phone"] = trimOptional(input.Phone)
	}
	if input.Address != nil {
		updates["address"] = trimOptional(input.Address)
	}
	if input.Password != nil {
		hashed, err := s.hashOptional(input.Password)
		if err != nil {
			return nil, err
		}
		// a blank password keeps the current one
		if hashed != nil {
			updates["password"] = *hashed
		}
	}
	updates["updated_at"] = s.now().UTC()

	shop, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	dto := NewShopDTO(shop)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) hashOptional(password *string) (*string, error) {
	if password == nil || *password == "" {
		return nil, nil
	}
	hashed, err := security.HashPassword(*password, s.password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash shop password")
	}
	return &hashed, nil
}

func trimOptional(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
