package orders

import (
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/enums"
)

// OrderDTO is the order payload returned to clients, with the customer and
// product names embedded.
type OrderDTO struct {
	ID           int64             `json:"id"`
	CustomerID   int64             `json:"customer_id"`
	ProductID    int64             `json:"product_id"`
	Quantity     int               `json:"quantity"`
	TotalAmount  string            `json:"total_amount"`
	Status       enums.OrderStatus `json:"status"`
	CustomerName *string           `json:"customer_name"`
	ProductName  *string           `json:"product_name"`
	ProductPrice *string           `json:"product_price"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

func NewOrderDTO(row *OrderRow) OrderDTO {
	dto := OrderDTO{
		ID:           row.ID,
		CustomerID:   row.CustomerID,
		ProductID:    row.ProductID,
		Quantity:     row.Quantity,
		TotalAmount:  row.TotalAmount.StringFixed(2),
		Status:       row.Status,
		CustomerName: row.CustomerName,
		ProductName:  row.ProductName,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	if row.ProductPrice.Valid {
		price := row.ProductPrice.Decimal.StringFixed(2)
		dto.ProductPrice = &price
	}
	return dto
}

// CreateInput holds a new order. The total is always derived from the
// product price and is therefore not part of the input.
type CreateInput struct {
	CustomerID int64
	ProductID  int64
	Quantity   int
	Status     string
}

// UpdateInput holds optional order changes; nil fields are left untouched.
type UpdateInput struct {
	CustomerID *int64
	ProductID  *int64
	Quantity   *int
	Status     *string
}
