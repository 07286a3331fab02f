package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes order management operations.
type Service interface {
	List(ctx context.Context, status string) ([]OrderDTO, error)
	Get(ctx context.Context, id int64) (*OrderDTO, error)
	Create(ctx context.Context, input CreateInput) (*OrderDTO, error)
	Update(ctx context.Context, id int64, input UpdateInput) (*OrderDTO, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo *Repository
	tx   txRunner
	now  func() time.Time
}

// NewService builds an order service. Writes run in a transaction so the
// price read and the total written belong to the same snapshot.
func NewService(repo *Repository, tx txRunner) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	return &service{repo: repo, tx: tx, now: time.Now}, nil
}

func (s *service) List(ctx context.Context, status string) ([]OrderDTO, error) {
	var filter *enums.OrderStatus
	if raw := strings.TrimSpace(status); raw != "" {
		parsed, err := parseStatus(raw)
		if err != nil {
			return nil, err
		}
		filter = &parsed
	}

	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]OrderDTO, 0, len(rows))
	for i := range rows {
		out = append(out, NewOrderDTO(&rows[i]))
	}
	return out, nil
}

func (s *service) Get(ctx context.Context, id int64) (*OrderDTO, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dto := NewOrderDTO(row)
	return &dto, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*OrderDTO, error) {
	status := enums.OrderStatusPending
	if raw := strings.TrimSpace(input.Status); raw != "" {
		parsed, err := parseStatus(raw)
		if err != nil {
			return nil, err
		}
		status = parsed
	}
	if err := validateQuantity(input.Quantity); err != nil {
		return nil, err
	}

	order := &models.Order{
		CustomerID: input.CustomerID,
		ProductID:  input.ProductID,
		Quantity:   input.Quantity,
		Status:     status,
	}
	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		price, err := txRepo.ProductPrice(ctx, order.ProductID)
		if err != nil {
			return err
		}
		order.TotalAmount = lineTotal(price, order.Quantity)
		return txRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, order.ID)
}

func (s *service) Update(ctx context.Context, id int64, input UpdateInput) (*OrderDTO, error) {
	updates := map[string]any{}
	if input.Status != nil {
		parsed, err := parseStatus(strings.TrimSpace(*input.Status))
		if err != nil {
			return nil, err
		}
		updates["status"] = parsed
	}
	if input.Quantity != nil {
		if err := validateQuantity(*input.Quantity); err != nil {
			return nil, err
		}
	}

	err := s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		existing, err := txRepo.FindModel(ctx, id)
		if err != nil {
			return err
		}

		productID := existing.ProductID
		if input.ProductID != nil {
			productID = *input.ProductID
			updates["product_id"] = productID
		}
		quantity := existing.Quantity
		if input.Quantity != nil {
			quantity = *input.Quantity
			updates["quantity"] = quantity
		}
		if input.CustomerID != nil {
			updates["customer_id"] = *input.CustomerID
		}

		price, err := txRepo.ProductPrice(ctx, productID)
		if err != nil {
			return err
		}
		updates["total_amount"] = lineTotal(price, quantity)
		updates["updated_at"] = s.now().UTC()
		return txRepo.Update(ctx, id, updates)
	})
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// lineTotal is price times quantity, kept exact to the cent.
func lineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}

func parseStatus(raw string) (enums.OrderStatus, error) {
	status, err := enums.ParseOrderStatus(raw)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid order status").
			WithDetails(map[string]string{"status": "must be one of pending, processing, completed, cancelled"})
	}
	return status, nil
}

func validateQuantity(quantity int) error {
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"quantity": "must be at least 1"})
	}
	return nil
}
