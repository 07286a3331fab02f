package shopproducts

import (
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
)

// ShopProductDTO is an association with the product fields projected onto it.
type ShopProductDTO struct {
	ID        int64     `json:"id"`
	ShopID    int64     `json:"shop_id"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     string    `json:"price"`
	Stock     int       `json:"stock"`
	LowStock  bool      `json:"low_stock"`
	CreatedAt time.Time `json:"created_at"`
}

func newShopProductDTO(row *Row, lowStockThreshold int) ShopProductDTO {
	return ShopProductDTO{
		ID:        row.ID,
		ShopID:    row.ShopID,
		ProductID: row.ProductID,
		Name:      row.Name,
		Category:  row.Category,
		Price:     row.Price.StringFixed(2),
		Stock:     row.Stock,
		LowStock:  row.Stock < lowStockThreshold,
		CreatedAt: row.CreatedAt,
	}
}

// AvailableProductDTO is a product the shop could add.
type AvailableProductDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Stock    int    `json:"stock"`
}

func newAvailableProductDTO(product *models.Product) AvailableProductDTO {
	return AvailableProductDTO{
		ID:       product.ID,
		Name:     product.Name,
		Category: product.Category,
		Price:    product.Price.StringFixed(2),
		Stock:    product.Stock,
	}
}

// LinkDTO is the association row returned after an add.
type LinkDTO struct {
	ID        int64     `json:"id"`
	ShopID    int64     `json:"shop_id"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}
