package customers

import (
	"context"

	"github.com/angelmondragon/dashboard-backend/internal/repo"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists customers.
type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db, "customer")}
}

// List returns customers whose name or email contains search, newest first.
func (r *Repository) List(ctx context.Context, search string) ([]models.Customer, error) {
	query := repo.Contains(r.DB(ctx).Model(&models.Customer{}), search, "name", "email")

	var rows []models.Customer
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, r.Err(err)
	}
	return rows, nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Customer, error) {
	var customer models.Customer
	if err := r.DB(ctx).Where("id = ?", id).Take(&customer).Error; err != nil {
		return nil, r.Err(err)
	}
	return &customer, nil
}

func (r *Repository) Create(ctx context.Context, customer *models.Customer) error {
	if err := r.DB(ctx).Create(customer).Error; err != nil {
		return r.Err(err)
	}
	return nil
}

func (r *Repository) Update(ctx context.Context, id int64, updates map[string]any) (*models.Customer, error) {
	if len(updates) == 0 {
		return r.FindByID(ctx, id)
	}
	res := r.DB(ctx).Model(&models.Customer{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, r.Err(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, r.Err(gorm.ErrRecordNotFound)
	}
	return r.FindByID(ctx, id)
}

// Delete hard-deletes the customer. Customers still referenced by orders are
// rejected with CONFLICT.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Customer{})
	if res.Error != nil {
		return r.DeleteErr(res.Error, "customer has existing orders")
	}
	if res.RowsAffected == 0 {
		return r.Err(gorm.ErrRecordNotFound)
	}
	return nil
}
