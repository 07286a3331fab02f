package stats

import (
	"context"

	"github.com/angelmondragon/dashboard-backend/internal/repo"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CategoryStock is one product's category and stock.
type CategoryStock struct {
	Category string `gorm:"column:category"`
	Stock    int    `gorm:"column:stock"`
}

// StatusTotal is one order's status and total.
type StatusTotal struct {
	Status      enums.OrderStatus `gorm:"column:status"`
	TotalAmount decimal.Decimal   `gorm:"column:total_amount"`
}

// Repository runs the read-only aggregate queries behind the dashboard.
type Repository struct {
	repo.Base
}

func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(conn, "stats")}
}

func (r *Repository) count(ctx context.Context, model any, scopes ...func(*gorm.DB) *gorm.DB) (int64, error) {
	var total int64
	if err := r.DB(ctx).Model(model).Scopes(scopes...).Count(&total).Error; err != nil {
		return 0, r.Err(err)
	}
	return total, nil
}

func (r *Repository) CountProducts(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Product{})
}

func (r *Repository) CountCustomers(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Customer{})
}

func (r *Repository) CountOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.Order{})
}

func (r *Repository) CountLowStock(ctx context.Context, threshold int) (int64, error) {
	return r.count(ctx, &models.Product{}, func(db *gorm.DB) *gorm.DB {
		return db.Where("stock < ?", threshold)
	})
}

func (r *Repository) CountOrdersByStatus(ctx context.Context, status enums.OrderStatus) (int64, error) {
	return r.count(ctx, &models.Order{}, func(db *gorm.DB) *gorm.DB {
		return db.Where("status = ?", status)
	})
}

// OrderTotals returns the stored totals of orders in the given status.
// Summing happens in Go so the result stays an exact decimal on every driver.
func (r *Repository) OrderTotals(ctx context.Context, status enums.OrderStatus) ([]decimal.Decimal, error) {
	var totals []decimal.Decimal
	err := r.DB(ctx).Model(&models.Order{}).
		Where("status = ?", status).
		Pluck("total_amount", &totals).Error
	if err != nil {
		return nil, r.Err(err)
	}
	return totals, nil
}

// ProductStock lists every product's category and stock in insertion order.
func (r *Repository) ProductStock(ctx context.Context) ([]CategoryStock, error) {
	var rows []CategoryStock
	err := r.DB(ctx).Model(&models.Product{}).
		Select("category, stock").
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.Err(err)
	}
	return rows, nil
}

// OrderStatusTotals lists every order's status and total in insertion order.
func (r *Repository) OrderStatusTotals(ctx context.Context) ([]StatusTotal, error) {
	var rows []StatusTotal
	err := r.DB(ctx).Model(&models.Order{}).
		Select("status, total_amount").
		Order("id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.Err(err)
	}
	return rows, nil
}
