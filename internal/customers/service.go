package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
)

// Service exposes customer management operations.
type Service interface {
	List(ctx context.Context, search string) ([]CustomerDTO, error)
	Get(ctx context.Context, id int64) (*CustomerDTO, error)
	Create(ctx context.Context, input CreateInput) (*CustomerDTO, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*CustomerDTO, error)
	Delete(ctx context.Context, id int64) error
}

type repository interface {
	List(ctx context.Context, search string) ([]models.Customer, error)
	FindByID(ctx context.Context, id int64) (*models.Customer, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, id int64, updates map[string]any) (*models.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo repository
}

func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customer repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, search string) ([]CustomerDTO, error) {
	rows, err := s.repo.List(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, err
	}
	out := make([]CustomerDTO, 0, len(rows))
	for i := range rows {
		out = append(out, NewCustomerDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*CustomerDTO, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := NewCustomerDTO(customer)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*CustomerDTO, error) {
	customer := &models.Customer{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Phone:   trimOptional(input.Phone),
		Address: trimOptional(input.Address),
	}
	details := map[string]string{}
	if customer.Name == "" {
		details["name"] = "is required"
	}
	if customer.Email == "" {
		details["email"] = "is required"
	}
	if len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	dto := NewCustomerDTO(customer)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*CustomerDTO, error) {
	updates := map[string]any{}
	details := map[string]string{}
	if input.Name != nil {
		if name := strings.TrimSpace(*input.Name); name == "" {
			details["name"] = "is required"
		} else {
			updates["name"] = name
		}
	}
	if input.Email != nil {
		if email := strings.TrimSpace(*input.Email); email == "" {
			details["email"] = "is required"
		} else {
			updates["email"] = email
		}
	}
	if len(details) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	if input.Phone != nil {
		updates["phone"] = trimOptional(input.Phone)
	}
	if input.Address != nil {
		updates["address"] = trimOptional(input.Address)
	}

	customer, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	dto := NewCustomerDTO(customer)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// trimOptional trims v and maps blank input to nil.
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
