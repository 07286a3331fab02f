package models

import (
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	"github.com/shopspring/decimal"
)

// Order references one customer and one product. TotalAmount is always
// product price times quantity at the time of the last write.
type Order struct {
	ID          int64             `gorm:"column:id;primaryKey;autoIncrement"`
	CustomerID  int64             `gorm:"column:customer_id;not null"`
	ProductID   int64             `gorm:"column:product_id;not null"`
	Quantity    int               `gorm:"column:quantity;not null"`
	TotalAmount decimal.Decimal   `gorm:"column:total_amount;type:numeric(12,2);not null"`
	Status      enums.OrderStatus `gorm:"column:status;not null;default:pending"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string { return "orders" }
