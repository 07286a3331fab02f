package models

import "time"

// ShopProduct links a shop to a product it offers. The (shop_id, product_id)
// pair is unique and rows cascade when either side is deleted.
type ShopProduct struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ShopID    int64     `gorm:"column:shop_id;not null"`
	ProductID int64     `gorm:"column:product_id;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ShopProduct) TableName() string { return "shop_products" }
