package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/dashboard-backend/api/controllers"
	"github.com/angelmondragon/dashboard-backend/api/middleware"
	"github.com/angelmondragon/dashboard-backend/internal/auth"
	"github.com/angelmondragon/dashboard-backend/internal/customers"
	"github.com/angelmondragon/dashboard-backend/internal/orders"
	"github.com/angelmondragon/dashboard-backend/internal/products"
	"github.com/angelmondragon/dashboard-backend/internal/shopproducts"
	"github.com/angelmondragon/dashboard-backend/internal/shops"
	"github.com/angelmondragon/dashboard-backend/internal/stats"
	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
	"github.com/angelmondragon/dashboard-backend/pkg/metrics"
)

// Services bundles everything the router hands to controllers.
type Services struct {
	Auth         auth.Service
	Gate         middleware.SessionGate
	Products     products.Service
	Customers    customers.Service
	Orders       orders.Service
	Shops        shops.Service
	ShopProducts shopproducts.Service
	Stats        stats.Service
}

// Observability carries the readiness probes and the metrics registry.
type Observability struct {
	Probes   map[string]controllers.Pinger
	HTTP     *metrics.HTTPMetrics
	Gatherer prometheus.Gatherer
}

// NewRouter wires the health, metrics, admin and shop routes.
func NewRouter(cfg *config.Config, logg *logger.Logger, svc Services, obs Observability) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(obs.HTTP),
		middleware.CORS(cfg.CORS.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, obs.Probes))
	})
	if obs.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(obs.Gatherer, promhttp.HandlerOpts{}))
	}

	admin := enums.IdentityKindAdmin
	shop := enums.IdentityKindShop

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Post("/auth/login", controllers.Login(admin, svc.Auth, logg))
		r.Post("/auth/logout", controllers.Logout(admin, svc.Gate, svc.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(svc.Gate, admin, logg))
			r.Get("/auth/session", controllers.Session(admin, svc.Auth, logg))

			r.Get("/stats", controllers.AdminStatsSummary(svc.Stats, logg))
			r.Get("/stats/categories", controllers.AdminStatsCategories(svc.Stats, logg))
			r.Get("/stats/orders", controllers.AdminStatsOrders(svc.Stats, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.AdminListProducts(svc.Products, logg))
				r.Post("/", controllers.AdminCreateProduct(svc.Products, logg))
				r.Get("/categories", controllers.AdminProductCategories(svc.Products, logg))
				r.Get("/{productId}", controllers.AdminGetProduct(svc.Products, logg))
				r.Patch("/{productId}", controllers.AdminUpdateProduct(svc.Products, logg))
				r.Delete("/{productId}", controllers.AdminDeleteProduct(svc.Products, logg))
			})

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", controllers.AdminListCustomers(svc.Customers, logg))
				r.Post("/", controllers.AdminCreateCustomer(svc.Customers, logg))
				r.Get("/{customerId}", controllers.AdminGetCustomer(svc.Customers, logg))
				r.Patch("/{customerId}", controllers.AdminUpdateCustomer(svc.Customers, logg))
				r.Delete("/{customerId}", controllers.AdminDeleteCustomer(svc.Customers, logg))
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminListOrders(svc.Orders, logg))
				r.Post("/", controllers.AdminCreateOrder(svc.Orders, logg))
				r.Get("/{orderId}", controllers.AdminGetOrder(svc.Orders, logg))
				r.Patch("/{orderId}", controllers.AdminUpdateOrder(svc.Orders, logg))
				r.Delete("/{orderId}", controllers.AdminDeleteOrder(svc.Orders, logg))
			})

			r.Route("/shops", func(r chi.Router) {
				r.Get("/", controllers.AdminListShops(svc.Shops, logg))
				r.Post("/", controllers.AdminCreateShop(svc.Shops, logg))
				r.Route("/{shopId}", func(r chi.Router) {
					r.Get("/", controllers.AdminGetShop(svc.Shops, logg))
					r.Patch("/", controllers.AdminUpdateShop(svc.Shops, logg))
					r.Delete("/", controllers.AdminDeleteShop(svc.Shops, logg))
					r.Get("/products", controllers.AdminListShopProducts(svc.ShopProducts, logg))
					r.Post("/products", controllers.AdminAddShopProduct(svc.ShopProducts, logg))
					r.Get("/products/available", controllers.AdminListAvailableShopProducts(svc.ShopProducts, logg))
					r.Delete("/products/{productId}", controllers.AdminRemoveShopProduct(svc.ShopProducts, logg))
				})
			})
		})
	})

	r.Route("/api/shop/v1", func(r chi.Router) {
		r.Post("/auth/login", controllers.Login(shop, svc.Auth, logg))
		r.Post("/auth/logout", controllers.Logout(shop, svc.Gate, svc.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(svc.Gate, shop, logg))
			r.Get("/auth/session", controllers.Session(shop, svc.Auth, logg))
			r.Get("/products", controllers.ShopListProducts(svc.ShopProducts, logg))
			r.Post("/products", controllers.ShopAddProduct(svc.ShopProducts, logg))
			r.Get("/products/available", controllers.ShopListAvailableProducts(svc.ShopProducts, logg))
			r.Delete("/products/{productId}", controllers.ShopRemoveProduct(svc.ShopProducts, logg))
		})
	})

	return r
}
