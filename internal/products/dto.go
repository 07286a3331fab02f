package products

import (
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"github.com/shopspring/decimal"
)

// ProductDTO is the product payload returned to clients. Price is rendered
// with two decimals; LowStock is derived from the configured threshold.
type ProductDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     string    `json:"price"`
	Stock     int       `json:"stock"`
	LowStock  bool      `json:"low_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewProductDTO maps a stored product.
func NewProductDTO(product *models.Product, lowStockThreshold int) ProductDTO {
	return ProductDTO{
		ID:        product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Price:     product.Price.StringFixed(2),
		Stock:     product.Stock,
		LowStock:  product.Stock < lowStockThreshold,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

// ListInput carries the raw list query parameters.
type ListInput struct {
	Search   string
	Category string
	Sort     string
}

// CreateInput holds the fields of a new product.
type CreateInput struct {
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int
}

// UpdateInput holds optional product changes; nil fields are left untouched.
type UpdateInput struct {
	Name     *string
	Category *string
	Price    *decimal.Decimal
	Stock    *int
}
