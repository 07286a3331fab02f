package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/dashboard-backend/internal/admins"
	"github.com/angelmondragon/dashboard-backend/internal/shops"
	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/db"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	"github.com/angelmondragon/dashboard-backend/pkg/logger"
	"github.com/angelmondragon/dashboard-backend/pkg/security"
)

const generatedPasswordLength = 16

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed"})

	_ = godotenv.Load()

	kindFlag := flag.String("kind", "admin", "account kind: admin|shop")
	email := flag.String("email", "", "login email")
	name := flag.String("name", "", "shop name (for -kind=shop)")
	password := flag.String("password", "", "plaintext password; generated when empty")
	first := flag.String("first", "", "admin first name")
	last := flag.String("last", "", "admin last name")
	flag.Parse()

	kind, err := enums.ParseIdentityKind(*kindFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "unknown -kind value:", *kindFlag)
		os.Exit(1)
	}
	if strings.TrimSpace(*email) == "" {
		fmt.Fprintln(os.Stderr, "missing -email")
		os.Exit(1)
	}

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx = logg.WithFields(ctx, map[string]any{"env": cfg.App.Env, "kind": kind.String()})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	requireResource(ctx, logg, "database", err)
	defer dbClient.Close()

	secret := *password
	generated := secret == ""
	if generated {
		secret, err = security.GenerateTempPassword(generatedPasswordLength)
		requireResource(ctx, logg, "password generator", err)
	}

	switch kind {
	case enums.IdentityKindAdmin:
		svc, err := admins.NewService(admins.NewRepository(dbClient.DB()), cfg.Password)
		requireResource(ctx, logg, "admin service", err)
		admin, err := svc.Create(ctx, admins.CreateInput{
			Email:     *email,
			Password:  secret,
			FirstName: *first,
			LastName:  *last,
		})
		if err != nil {
			logg.Error(ctx, "seed admin failed", err)
			os.Exit(1)
		}
		fmt.Printf("created admin %d (%s)\n", admin.ID, admin.Email)

	case enums.IdentityKindShop:
		if strings.TrimSpace(*name) == "" {
			fmt.Fprintln(os.Stderr, "missing -name for shop")
			os.Exit(1)
		}
		svc, err := shops.NewService(shops.NewRepository(dbClient.DB()), cfg.Password)
		requireResource(ctx, logg, "shop service", err)
		shop, err := svc.Create(ctx, shops.CreateInput{
			Name:     *name,
			Email:    email,
			Password: &secret,
		})
		if err != nil {
			logg.Error(ctx, "seed shop failed", err)
			os.Exit(1)
		}
		fmt.Printf("created shop %d (%s)\n", shop.ID, shop.Name)
	}

	if generated {
		fmt.Println("generated password:", secret)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
