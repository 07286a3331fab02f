package customers

import (
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
)

type CustomerDTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCustomerDTO(customer *models.Customer) CustomerDTO {
	return CustomerDTO{
		ID:        customer.ID,
		Name:      customer.Name,
		Email:     customer.Email,
		Phone:     customer.Phone,
		Address:   customer.Address,
		CreatedAt: customer.CreatedAt,
	}
}

type CreateInput struct {
	Name    string
	Email   string
	Phone   *string
	Address *string
}

// UpdateInput holds optional customer changes; nil fields are left untouched.
type UpdateInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}
