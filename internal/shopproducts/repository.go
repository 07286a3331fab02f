package shopproducts

import (
	"context"
	"time"

	"github.com/angelmondragon/dashboard-backend/internal/repo"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Row is an association joined with the product it points at.
type Row struct {
	ID        int64           `gorm:"column:id"`
	ShopID    int64           `gorm:"column:shop_id"`
	ProductID int64           `gorm:"column:product_id"`
	CreatedAt time.Time       `gorm:"column:created_at"`
	Name      string          `gorm:"column:name"`
	Category  string          `gorm:"column:category"`
	Price     decimal.Decimal `gorm:"column:price"`
	Stock     int             `gorm:"column:stock"`
}

const rowSelect = `shop_products.id, shop_products.shop_id, shop_products.product_id, shop_products.created_at,
	products.name, products.category, products.price, products.stock`

// Repository persists shop to product associations.
type Repository struct {
	repo.Base
}

func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(conn, "shop product")}
}

// ListForShop returns the shop's products, newest association first.
func (r *Repository) ListForShop(ctx context.Context, shopID int64) ([]Row, error) {
	var rows []Row
	err := r.DB(ctx).Table("shop_products").
		Select(rowSelect).
		Joins("JOIN products ON products.id = shop_products.product_id").
		Where("shop_products.shop_id = ?", shopID).
		Order("shop_products.created_at DESC, shop_products.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, r.Err(err)
	}
	return rows, nil
}

// ListAvailable returns products the shop does not offer yet.
func (r *Repository) ListAvailable(ctx context.Context, shopID int64) ([]models.Product, error) {
	taken := r.DB(ctx).Model(&models.ShopProduct{}).Select("product_id").Where("shop_id = ?", shopID)

	var rows []models.Product
	err := r.DB(ctx).Model(&models.Product{}).
		Where("id NOT IN (?)", taken).
		Order("name ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, r.Err(err)
	}
	return rows, nil
}

// Add inserts the association. The store rejects a duplicate pair.
func (r *Repository) Add(ctx context.Context, shopID, productID int64) (*models.ShopProduct, error) {
	link := &models.ShopProduct{ShopID: shopID, ProductID: productID}
	if err := r.DB(ctx).Create(link).Error; err != nil {
		return nil, r.Err(err)
	}
	return link, nil
}

// Remove deletes the association if it exists and reports whether it did.
func (r *Repository) Remove(ctx context.Context, shopID, productID int64) (bool, error) {
	res := r.DB(ctx).
		Where("shop_id = ? AND product_id = ?", shopID, productID).
		Delete(&models.ShopProduct{})
	if res.Error != nil {
		return false, r.Err(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// ShopExists reports whether the shop row is present.
func (r *Repository) ShopExists(ctx context.Context, shopID int64) (bool, error) {
	var count int64
	if err := r.DB(ctx).Model(&models.Shop{}).Where("id = ?", shopID).Count(&count).Error; err != nil {
		return false, r.Err(err)
	}
	return count > 0, nil
}
