package products

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

// Service exposes product management operations.
type Service interface {
	List(ctx context.Context, input ListInput) ([]ProductDTO, error)
	Get(ctx context.Context, id int64) (*ProductDTO, error)
	Create(ctx context.Context, input CreateInput) (*ProductDTO, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*ProductDTO, error)
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)
}

type repository interface {
	List(ctx context.Context, filters ListFilters) ([]models.Product, error)
	FindByID(ctx context.Context, id int64) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id int64, updates map[string]any) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
	Categories(ctx context.Context) ([]string, error)
}

type service struct {
	repo              repository
	lowStockThreshold int
	now               func() time.Time
}

// NewService constructs a product service instance.
func NewService(repo repository, lowStockThreshold int) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if lowStockThreshold < 0 {
		return nil, fmt.Errorf("low stock threshold must not be negative")
	}
	return &service{
		repo:              repo,
		lowStockThreshold: lowStockThreshold,
		now:               time.Now,
	}, nil
}

func (s *service) List(ctx context.Context, input ListInput) ([]ProductDTO, error) {
	sort, err := enums.ParseProductSort(strings.TrimSpace(input.Sort))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid sort").
			WithDetails(map[string]any{"sort": "must be one of price_asc, price_desc, stock_asc, stock_desc"})
	}

	rows, err := s.repo.List(ctx, ListFilters{
		Search:   strings.TrimSpace(input.Search),
		Category: strings.TrimSpace(input.Category),
		Sort:     sort,
	})
	if err != nil {
		return nil, err
	}

	out := make([]ProductDTO, 0, len(rows))
	for i := range rows {
		out = append(out, NewProductDTO(&rows[i], s.lowStockThreshold))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*ProductDTO, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := NewProductDTO(product, s.lowStockThreshold)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*ProductDTO, error) {
	name := strings.TrimSpace(input.Name)
	category := strings.TrimSpace(input.Category)
	if err := validateFields(&name, &category, &input.Price, &input.Stock); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:     name,
		Category: category,
		Price:    input.Price.Round(2),
		Stock:    input.Stock,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	dto := NewProductDTO(product, s.lowStockThreshold)
	return &dto, nil
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*ProductDTO, error) {
	updates := map[string]any{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		input.Name = &name
	}
	if input.Category != nil {
		category := strings.TrimSpace(*input.Category)
		input.Category = &category
	}
	if err := validateFields(input.Name, input.Category, input.Price, input.Stock); err != nil {
		return nil, err
	}

	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Price != nil {
		updates["price"] = input.Price.Round(2)
	}
	if input.Stock != nil {
		updates["stock"] = *input.Stock
	}
	updates["updated_at"] = s.now().UTC()

	product, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	dto := NewProductDTO(product, s.lowStockThreshold)
	return &dto, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// validateFields checks whichever fields are present.
func validateFields(name, category *string, price *decimal.Decimal, stock *int) error {
	details := map[string]string{}
	if name != nil && *name == "" {
		details["name"] = "is required"
	}
	if category != nil && *category == "" {
		details["category"] = "is required"
	}
	if price != nil && price.IsNegative() {
		details["price"] = "must be at least 0"
	}
	if stock != nil && *stock < 0 {
		details["stock"] = "must be at least 0"
	}
	if len(details) > 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").WithDetails(details)
	}
	return nil
}
