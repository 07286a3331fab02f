package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/angelmondragon/dashboard-backend/api/responses"
	"github.com/angelmondragon/dashboard-backend/api/validators"
	ordersvc "github.com/angelmondragon/dashboard-backend/internal/orders"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
)

const orderIDParam = "orderId"

// TotalAmount is decoded and ignored; totals come from the product price.
type createOrderRequest struct {
	CustomerID  int64           `json:"customer_id" validate:"required,min=1"`
	ProductID   int64           `json:"product_id" validate:"required,min=1"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	Status      string          `json:"status,omitempty"`
	TotalAmount json.RawMessage `json:"total_amount,omitempty"`
}

type updateOrderRequest struct {
	CustomerID  *int64          `json:"customer_id,omitempty" validate:"omitempty,min=1"`
	ProductID   *int64          `json:"product_id,omitempty" validate:"omitempty,min=1"`
	Quantity    *int            `json:"quantity,omitempty" validate:"omitempty,min=1"`
	Status      *string         `json:"status,omitempty"`
	TotalAmount json.RawMessage `json:"total_amount,omitempty"`
}

// AdminListOrders lists orders, optionally filtered by status.
func AdminListOrders(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "order") {
			return
		}
		list, err := svc.List(r.Context(), validators.SanitizeString(r.URL.Query().Get("status"), 20))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

// AdminGetOrder returns one order with its customer and product names.
func AdminGetOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "order") {
			return
		}
		id, err := validators.ParseIDParam(r, orderIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

// AdminCreateOrder stores a new order priced from the product.
func AdminCreateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "order") {
			return
		}
		var payload createOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.Create(r.Context(), ordersvc.CreateInput{
			CustomerID: payload.CustomerID,
			ProductID:  payload.ProductID,
			Quantity:   payload.Quantity,
			Status:     payload.Status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMutation(w, http.StatusCreated, order, "Order created successfully")
	}
}

// AdminUpdateOrder applies a partial order update and recomputes the total.
func AdminUpdateOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "order") {
			return
		}
		id, err := validators.ParseIDParam(r, orderIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload updateOrderRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		order, err := svc.Update(r.Context(), id, ordersvc.UpdateInput{
			CustomerID: payload.CustomerID,
			ProductID:  payload.ProductID,
			Quantity:   payload.Quantity,
			Status:     payload.Status,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMutation(w, http.StatusOK, order, "Order updated successfully")
	}
}

// AdminDeleteOrder deletes an order once the request carries confirm=true.
func AdminDeleteOrder(svc ordersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "order") {
			return
		}
		id, err := validators.ParseIDParam(r, orderIDParam)
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
		responses.WriteMutation(w, http.StatusOK, deleted{ID: id}, "Order deleted successfully")
	}
}
