package controllers

import (
	"net/http"

	"github.com/angelmondragon/dashboard-backend/api/responses"
	"github.com/angelmondragon/dashboard-backend/api/validators"
	customersvc "github.com/angelmondragon/dashboard-backend/internal/customers"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
)

const customerIDParam = "customerId"

type createCustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Email   string  `json:"email" validate:"required,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

type updateCustomerRequest struct {
	Name    *string `json:"name,omitempty"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// AdminListCustomers lists customers, optionally filtered by a name or email search.
func AdminListCustomers(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "customer") {
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

// AdminGetCustomer returns one customer by id.
func AdminGetCustomer(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "customer") {
			return
		}
		id, err := validators.ParseIDParam(r, customerIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		customer, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, customer)
	}
}

// AdminCreateCustomer stores a new customer.
func AdminCreateCustomer(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "customer") {
			return
		}
		var payload createCustomerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		customer, err := svc.Create(r.Context(), customersvc.CreateInput{
			Name:    validators.SanitizeString(payload.Name, maxNameLen),
			Email:   validators.SanitizeString(payload.Email, maxNameLen),
			Phone:   payload.Phone,
			Address: payload.Address,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMutation(w, http.StatusCreated, customer, "Customer created successfully")
	}
}

// AdminUpdateCustomer applies a partial customer update.
func AdminUpdateCustomer(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "customer") {
			return
		}
		id, err := validators.ParseIDParam(r, customerIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateCustomerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		customer, err := svc.Update(r.Context(), id, customersvc.UpdateInput{
			Name:    sanitizeOptional(payload.Name, maxNameLen),
			Email:   sanitizeOptional(payload.Email, maxNameLen),
			Phone:   payload.Phone,
			Address: payload.Address,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMutation(w, http.StatusOK, customer, "Customer updated successfully")
	}
}

// AdminDeleteCustomer deletes a customer once the request carries confirm=true.
func AdminDeleteCustomer(svc customersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "customer") {
			return
		}
		id, err := validators.ParseIDParam(r, customerIDParam)
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
		responses.WriteMutation(w, http.StatusOK, deleted{ID: id}, "Customer deleted successfully")
	}
}
