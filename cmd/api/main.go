package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/dashboard-backend/api/controllers"
	"github.com/angelmondragon/dashboard-backend/api/routes"
	"github.com/angelmondragon/dashboard-backend/internal/admins"
	"github.com/angelmondragon/dashboard-backend/internal/auth"
	"github.com/angelmondragon/dashboard-backend/internal/customers"
	"github.com/angelmondragon/dashboard-backend/internal/orders"
	"github.com/angelmondragon/dashboard-backend/internal/products"
	"github.com/angelmondragon/dashboard-backend/internal/shopproducts"
	"github.com/angelmondragon/dashboard-backend/internal/shops"
	"github.com/angelmondragon/dashboard-backend/internal/stats"
	"github.com/angelmondragon/dashboard-backend/pkg/auth/session"
	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/db"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
	"github.com/angelmondragon/dashboard-backend/pkg/metrics"
	"github.com/angelmondragon/dashboard-backend/pkg/migrate"
	"github.com/angelmondragon/dashboard-backend/pkg/redis"
)

func main() {
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "api"})

	_ = godotenv.Load()

	cfg, err := config.Load()
	requireResource(context.Background(), logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)

	err = migrate.MaybeRunDev(ctx, cfg, logg, dbClient)
	requireResource(ctx, logg, "migrations", err)

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	requireResource(ctx, logg, "redis", err)

	sessions, err := session.NewStore(redisClient, cfg.Session, logg)
	requireResource(ctx, logg, "session store", err)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	conn := dbClient.DB()
	threshold := cfg.Dashboard.LowStockThreshold

	authService, err := auth.NewService(auth.ServiceParams{
		Admins:   admins.NewRepository(conn),
		Shops:    shops.NewRepository(conn),
		Sessions: sessions,
		Session:  cfg.Session,
		Metrics:  metrics.NewAuthMetrics(reg),
		Logger:   logg,
	})
	requireResource(ctx, logg, "auth service", err)

	gate, err := auth.NewGate(sessions, cfg.Session)
	requireResource(ctx, logg, "session gate", err)

	productService, err := products.NewService(products.NewRepository(conn), threshold)
	requireResource(ctx, logg, "product service", err)

	customerService, err := customers.NewService(customers.NewRepository(conn))
	requireResource(ctx, logg, "customer service", err)

	orderService, err := orders.NewService(orders.NewRepository(conn), dbClient)
	requireResource(ctx, logg, "order service", err)

	shopService, err := shops.NewService(shops.NewRepository(conn), cfg.Password)
	requireResource(ctx, logg, "shop service", err)

	shopProductService, err := shopproducts.NewService(shopproducts.NewRepository(conn), threshold)
	requireResource(ctx, logg, "shop product service", err)

	statsService, err := stats.NewService(stats.NewRepository(conn), threshold, metrics.NewStatsMetrics(reg))
	requireResource(ctx, logg, "stats service", err)

	handler := routes.NewRouter(cfg, logg, routes.Services{
		Auth:         authService,
		Gate:         gate,
		Products:     productService,
		Customers:    customerService,
		Orders:       orderService,
		Shops:        shopService,
		ShopProducts: shopProductService,
		Stats:        statsService,
	}, routes.Observability{
		Probes: map[string]controllers.Pinger{
			"db":    dbClient,
			"redis": redisClient,
		},
		HTTP:     metrics.NewHTTPMetrics(reg),
		Gatherer: reg,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":    cfg.App.Env,
		"addr":   addr,
		"driver": dbClient.Driver(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownWait)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "api server shutdown failed", err)
		}
	}

	if err := multierr.Combine(redisClient.Close(), dbClient.Close()); err != nil {
		logg.Error(ctx, "closing resources failed", err)
	}
	logg.Info(ctx, "api server stopped")
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, "resource not working: "+resource, err)
	os.Exit(1)
}
