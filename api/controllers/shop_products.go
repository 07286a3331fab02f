package controllers

import (
	"net/http"

	"github.com/angelmondragon/dashboard-backend/api/middleware"
	"github.com/angelmondragon/dashboard-backend/api/responses"
	"github.com/angelmondragon/dashboard-backend/api/validators"
	shopproductsvc "github.com/angelmondragon/dashboard-backend/internal/shopproducts"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
)

type addShopProductRequest struct {
	ProductID int64 `json:"product_id" validate:"required,min=1"`
}

// shopResolver picks the shop a request acts on: the path parameter for
// admins, the signed-in shop for the shop dashboard.
type shopResolver func(r *http.Request) (int64, error)

func shopFromPath(r *http.Request) (int64, error) {
	return validators.ParseIDParam(r, shopIDParam)
}

func shopFromSession(r *http.Request) (int64, error) {
	record, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return 0, pkgerrors.New(pkgerrors.CodeUnauthorized, "session context missing")
	}
	return record.ID, nil
}

func listShopProducts(svc shopproductsvc.Service, logg *logger.Logger, resolve shopResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "shop product") {
			return
		}
		shopID, err := resolve(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		list, err := svc.ListForShop(r.Context(), shopID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func listAvailableProducts(svc shopproductsvc.Service, logg *logger.Logger, resolve shopResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "shop product") {
			return
		}
		shopID, err := resolve(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		list, err := svc.ListAvailable(r.Context(), shopID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func addShopProduct(svc shopproductsvc.Service, logg *logger.Logger, resolve shopResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "shop product") {
			return
		}
		shopID, err := resolve(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var payload addShopProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		link, err := svc.Add(r.Context(), shopID, payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMutation(w, http.StatusCreated, link, "Product added to shop")
	}
}

func removeShopProduct(svc shopproductsvc.Service, logg *logger.Logger, resolve shopResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if unavailable(w, r, logg, svc == nil, "shop product") {
			return
		}
		shopID, err := resolve(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		productID, err := validators.ParseIDParam(r, productIDParam)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := validators.RequireConfirm(r); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Remove(r.Context(), shopID, productID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteMutation(w, http.StatusOK, map[string]int64{"shop_id": shopID, "product_id": productID}, "Product removed from shop")
	}
}

// AdminListShopProducts lists the products linked to the shop in the path.
func AdminListShopProducts(svc shopproductsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return listShopProducts(svc, logg, shopFromPath)
}

// AdminListAvailableShopProducts lists products not yet linked to the shop in the path.
func AdminListAvailableShopProducts(svc shopproductsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return listAvailableProducts(svc, logg, shopFromPath)
}

// AdminAddShopProduct links a product to the shop in the path.
func AdminAddShopProduct(svc shopproductsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return addShopProduct(svc, logg, shopFromPath)
}

// AdminRemoveShopProduct unlinks a product from the shop in the path.
func AdminRemoveShopProduct(svc shopproductsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return removeShopProduct(svc, logg, shopFromPath)
}

// ShopListProducts lists the signed-in shop's own products.
func ShopListProducts(svc shopproductsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return listShopProducts(svc, logg, shopFromSession)
}

// ShopListAvailableProducts lists products the signed-in shop has not added yet.
func ShopListAvailableProducts(svc shopproductsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return listAvailableProducts(svc, logg, shopFromSession)
}

// ShopAddProduct adds a product to the signed-in shop.
func ShopAddProduct(svc shopproductsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return addShopProduct(svc, logg, shopFromSession)
}

// ShopRemoveProduct removes a product from the signed-in shop.
func ShopRemoveProduct(svc shopproductsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return removeShopProduct(svc, logg, shopFromSession)
}
