package orders

import (
	"context"
	"errors"

	"github.com/angelmondragon/dashboard-backend/internal/repo"
	"github.com/angelmondragon/dashboard-backend/pkg/db"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderRow is an order with its customer and product embedded for display.
type OrderRow struct {
	models.Order `gorm:"embedded"`
	CustomerName *string             `gorm:"column:customer_name"`
	ProductName  *string             `gorm:"column:product_name"`
	ProductPrice decimal.NullDecimal `gorm:"column:product_price"`
}

const orderRowSelect = `orders.id, orders.customer_id, orders.product_id, orders.quantity,
orders.total_amount, orders.status, orders.created_at, orders.updated_at,
customers.name AS customer_name, products.name AS product_name, products.price AS product_price`

// Repository persists orders.
type Repository struct {
	repo.Base
}

func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(conn, "order")}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(tx, r.Resource())}
}

func (r *Repository) rows(ctx context.Context) *gorm.DB {
	return r.DB(ctx).Table("orders").
		Select(orderRowSelect).
		Joins("LEFT JOIN customers ON customers.id = orders.customer_id").
		Joins("LEFT JOIN products ON products.id = orders.product_id")
}

// List returns orders newest first, optionally restricted to one status.
func (r *Repository) List(ctx context.Context, status *enums.OrderStatus) ([]OrderRow, error) {
	query := r.rows(ctx)
	if status != nil {
		query = query.Where("orders.status = ?", *status)
	}

	var rows []OrderRow
	if err := query.Order("orders.id DESC").Scan(&rows).Error; err != nil {
		return nil, r.Err(err)
	}
	return rows, nil
}

// FindByID loads one order with its embedded customer and product fields.
func (r *Repository) FindByID(ctx context.Context, id int64) (*OrderRow, error) {
	var rows []OrderRow
	if err := r.rows(ctx).Where("orders.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, r.Err(err)
	}
	if len(rows) == 0 {
		return nil, r.Err(gorm.ErrRecordNotFound)
	}
	return &rows[0], nil
}

// FindModel loads the bare order row.
func (r *Repository) FindModel(ctx context.Context, id int64) (*models.Order, error) {
	var order models.Order
	if err := r.DB(ctx).Where("id = ?", id).Take(&order).Error; err != nil {
		return nil, r.Err(err)
	}
	return &order, nil
}

// ProductPrice returns the current price of a product.
func (r *Repository) ProductPrice(ctx context.Context, productID int64) (decimal.Decimal, error) {
	var product models.Product
	err := r.DB(ctx).Select("id", "price").Where("id = ?", productID).Take(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "product not found").
			WithDetails(map[string]string{"product_id": "does not exist"})
	}
	if err != nil {
		return decimal.Zero, db.MapError(err, "product")
	}
	return product.Price, nil
}

func (r *Repository) Create(ctx context.Context, order *models.Order) error {
	if err := r.DB(ctx).Create(order).Error; err != nil {
		return r.Err(err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, id int64, updates map[string]any) error {
	res := r.DB(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return r.Err(res.Error)
	}
	if res.RowsAffected == 0 {
		return r.Err(gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Order{})
	if res.Error != nil {
		return r.Err(res.Error)
	}
	if res.RowsAffected == 0 {
		return r.Err(gorm.ErrRecordNotFound)
	}
	return nil
}
