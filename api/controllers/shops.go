package controllers

import (
	"net/http"

	"github.com/angelmondragon/dashboard-backend/api/responses"
	"github.com/angelmondragon/dashboard-backend/api/validators"
	shopsvc "github.com/angelmondragon/dashboard-backend/internal/shops"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
)

const shopIDParam = "shopId"

type createShopRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

type updateShopRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

// AdminListShops lists shops, optionally filtered by a name search.
func AdminListShops(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "shop") {
			return
		}
		list, err := svc.List(r.Context(), validators.SanitizeString(r.URL.Query().Get("search"), maxSearchLen))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AdminGetShop returns one shop by id.
func AdminGetShop(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "shop") {
			return
		}
		id, err := validators.ParseIDParam(r, shopIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shop, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, shop)
	}
}

// AdminCreateShop stores a new shop, hashing its password if one is given.
func AdminCreateShop(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "shop") {
			return
		}
		var payload createShopRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shop, err := svc.Create(r.Context(), shopsvc.CreateInput{
			Name:     validators.SanitizeString(payload.Name, maxNameLen),
			Email:    sanitizeOptional(payload.Email, maxNameLen),
			Password: payload.Password,
			Phone:    payload.Phone,
			Address:  payload.Address,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMutation(w, http.StatusCreated, shop, "Shop created successfully")
	}
}

// AdminUpdateShop applies a partial update. A blank password leaves the
// stored one unchanged.
func AdminUpdateShop(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "shop") {
			return
		}
		id, err := validators.ParseIDParam(r, shopIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateShopRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		shop, err := svc.Update(r.Context(), id, shopsvc.UpdateInput{
			Name:     sanitizeOptional(payload.Name, maxNameLen),
			Email:    sanitizeOptional(payload.Email, maxNameLen),
			Password: payload.Password,
			Phone:    payload.Phone,
			Address:  payload.Address,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMutation(w, http.StatusOK, shop, "Shop updated successfully")
	}
}

// AdminDeleteShop deletes a shop and its product links once the request carries confirm=true.
func AdminDeleteShop(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "shop") {
			return
		}
		id, err := validators.ParseIDParam(r, shopIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := validators.RequireConfirm(r); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMutation(w, http.StatusOK, deleted{ID: id}, "Shop deleted successfully")
	}
}
