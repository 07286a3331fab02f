package shops

import (
	"context"
	"strings"

	"github.com/angelmondragon/dashboard-backend/internal/repo"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists shops.
type Repository struct {
	repo.Base
}

func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(conn, "shop")}
}

// List returns shops whose name contains search, newest first.
func (r *Repository) List(ctx context.Context, search string) ([]models.Shop, error) {
	query := repo.Contains(r.DB(ctx).Model(&models.Shop{}), search, "name")

	var rows []models.Shop
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, r.Err(err)
	}
	return rows, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Shop, error) {
	var shop models.Shop
	if err := r.DB(ctx).Where("id = ?", id).Take(&shop).Error; err != nil {
		return nil, r.Err(err)
	}
	return &shop, nil
}

// FindByEmail matches the login email ignoring case and surrounding spaces.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Shop, error) {
	var shop models.Shop
	err := r.DB(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Take(&shop).Error
	if err != nil {
		return nil, r.Err(err)
	}
	return &shop, nil
}

func (r *Repository) Create(ctx context.Context, shop *models.Shop) error {
	if err := r.DB(ctx).Create(shop).Error; err != nil {
		return r.Err(err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, id int64, updates map[string]any) (*models.Shop, error) {
	res := r.DB(ctx).Model(&models.Shop{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, r.Err(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, r.Err(gorm.ErrRecordNotFound)
	}
	return r.FindByID(ctx, id)
}

// Delete removes the shop. Its product associations go with it.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Shop{})
	if res.Error != nil {
		return r.Err(res.Error)
	}
	if res.RowsAffected == 0 {
		return r.Err(gorm.ErrRecordNotFound)
	}
	return nil
}
