package shops

import (
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
)

// ShopDTO is the shop payload returned to clients. The stored password is
// never part of it; HasLogin tells whether one is set.
type ShopDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	HasLogin  bool      `json:"has_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewShopDTO(shop *models.Shop) ShopDTO {
	return ShopDTO{
		ID:        shop.ID,
		Name:      shop.Name,
		Email:     shop.Email,
		Phone:     shop.Phone,
		Address:   shop.Address,
		HasLogin:  shop.Email != nil && shop.Password != nil && *shop.Password != "",
		CreatedAt: shop.CreatedAt,
		UpdatedAt: shop.UpdatedAt,
	}
}

// CreateInput holds a new shop. Password is plaintext and hashed before storage.
type CreateInput struct {
	Name     string
	Email    *string
	Password *string
	Phone    *string
	Address  *string
}

// UpdateInput holds optional shop changes; nil fields are left untouched.
// A blank Email or Phone clears the stored value.
type UpdateInput struct {
	Name     *string
	Email    *string
	Password *string
	Phone    *string
	Address  *string
}
