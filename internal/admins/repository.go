package admins

import (
	"context"
	"strings"

	"github.com/angelmondragon/dashboard-backend/internal/repo"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository persists dashboard administrators.
type Repository struct {
	repo.Base
}

func NewRepository(conn *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(conn, "admin")}
}

// FindByEmail matches the login email ignoring case and surrounding spaces.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.DB(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Take(&admin).Error
	if err != nil {
		return nil, r.Err(err)
	}
	return &admin, nil
}

func (r *Repository) Create(ctx context.Context, admin *models.Admin) error {
	if err := r.DB(ctx).Create(admin).Error; err != nil {
		return r.Err(err)
	}
	return nil
}
