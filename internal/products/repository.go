package products

import (
	"context"

	"github.com/angelmondragon/dashboard-backend/internal/repo"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	"gorm.io/gorm"
)

// ListFilters narrows a product listing. Zero values mean "no filter".
type ListFilters struct {
	Search   string
	Category string
	Sort     enums.ProductSort
}

// Repository persists products.
type Repository struct {
	repo.Base
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db, "product")}
}

// List returns products matching filters in the requested order.
func (r *Repository) List(ctx context.Context, filters ListFilters) ([]models.Product, error) {
	query := r.DB(ctx).Model(&models.Product{})
	query = repo.Contains(query, filters.Search, "name")
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}

	var rows []models.Product
	if err := query.Order(filters.Sort.OrderClause()).Find(&rows).Error; err != nil {
		return nil, r.Err(err)
	}
	return rows, nil
}

// FindByID loads a single product.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	if err := r.DB(ctx).Where("id = ?", id).Take(&product).Error; err != nil {
		return nil, r.Err(err)
	}
	return &product, nil
}

// Create inserts the product and fills in its generated fields.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	if err := r.DB(ctx).Create(product).Error; err != nil {
		return r.Err(err)
	}
	return nil
}

// Update applies the column updates and returns the stored row.
func (r *Repository) Update(ctx context.Context, id int64, updates map[string]any) (*models.Product, error) {
	res := r.DB(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, r.Err(res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, r.Err(gorm.ErrRecordNotFound)
	}
	return r.FindByID(ctx, id)
}

// Delete hard-deletes the product. Shop associations cascade; products still
// referenced by orders are rejected with CONFLICT.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	res := r.DB(ctx).Where("id = ?", id).Delete(&models.Product{})
	if res.Error != nil {
		return r.DeleteErr(res.Error, "product has existing orders")
	}
	if res.RowsAffected == 0 {
		return r.Err(gorm.ErrRecordNotFound)
	}
	return nil
}

// Categories returns the distinct product categories in name order.
func (r *Repository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := r.DB(ctx).Model(&models.Product{}).
		Distinct("category").
		Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, r.Err(err)
	}
	return categories, nil
}
