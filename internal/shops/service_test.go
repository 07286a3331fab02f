package shops

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/db/dbtest"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/angelmondragon/dashboard-backend/pkg/security"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(v string) *string { return &v }

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	conn := dbtest.Open(t)
	svc, err := NewService(NewRepository(conn), config.PasswordConfig{Scheme: config.PasswordSchemeSHA})
	require.NoError(t, err)
	return svc, conn
}

func TestCreateHashesPasswordAndHidesIt(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:     " Corner Store ",
		Email:    strPtr("corner@example.com"),
		Password: strPtr("password"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Corner Store", created.Name)
	assert.True(t, created.HasLogin)

	var stored models.Shop
	require.NoError(t, conn.First(&stored, created.ID).Error)
	require.NotNil(t, stored.Password)
	assert.Equal(t, security.HashCredential("password"), *stored.Password)

	withoutLogin, err := svc.Create(ctx, CreateInput{Name: "Kiosk"})
	require.NoError(t, err)
	assert.False(t, withoutLogin.HasLogin)
	assert.Nil(t, withoutLogin.Email)
}

func TestCreateRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateInput{Name: "One", Email: strPtr("shop@example.com")})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateInput{Name: "Two", Email: strPtr("shop@example.com")})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeConflict))

	_, err = svc.Create(ctx, CreateInput{Name: "  "})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestUpdateRefreshesTimestampAndKeepsPasswordOnBlank(t *testing.T) {
	conn := dbtest.Open(t)
	fixed := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	svc := &service{
		repo:     NewRepository(conn),
		password: config.PasswordConfig{},
		now:      func() time.Time { return fixed },
	}
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Corner", Email: strPtr("c@example.com"), Password: strPtr("first")})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateInput{Phone: strPtr("555-0102"), Password: strPtr("")})
	require.NoError(t, err)
	assert.Equal(t, "555-0102", *updated.Phone)
	assert.True(t, updated.UpdatedAt.Equal(fixed))

	var stored models.Shop
	require.NoError(t, conn.First(&stored, created.ID).Error)
	assert.Equal(t, security.HashCredential("first"), *stored.Password)

	_, err = svc.Update(ctx, created.ID, UpdateInput{Password: strPtr("second")})
	require.NoError(t, err)
	require.NoError(t, conn.First(&stored, created.ID).Error)
	assert.Equal(t, security.HashCredential("second"), *stored.Password)

	_, err = svc.Update(ctx, 999, UpdateInput{Name: strPtr("Ghost")})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestListSearchesName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"Corner Store", "Book Nook", "Corner 100%"} {
		_, err := svc.Create(ctx, CreateInput{Name: name})
		require.NoError(t, err)
	}

	matches, err := svc.List(ctx, "corner")
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "Corner 100%", matches[0].Name)

	literal, err := svc.List(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, literal, 1)
}

func TestDeleteCascadesAssociations(t *testing.T) {
	svc, conn := newTestService(t)
	ctx := context.Background()

	shop, err := svc.Create(ctx, CreateInput{Name: "Corner"})
	require.NoError(t, err)
	product := models.Product{Name: "Tea", Category: "Drinks", Price: decimal.RequireFromString("3.50"), Stock: 5}
	require.NoError(t, conn.Create(&product).Error)
	require.NoError(t, conn.Create(&models.ShopProduct{ShopID: shop.ID, ProductID: product.ID}).Error)

	require.NoError(t, svc.Delete(ctx, shop.ID))

	var count int64
	require.NoError(t, conn.Model(&models.ShopProduct{}).Count(&count).Error)
	assert.Zero(t, count)

	assert.True(t, pkgerrors.IsCode(svc.Delete(ctx, shop.ID), pkgerrors.CodeNotFound))
}

func TestFindByEmailIgnoresCase(t *testing.T) {
	conn := dbtest.Open(t)
	repo := NewRepository(conn)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.Shop{Name: "Corner", Email: strPtr("Corner@Example.com")}))

	shop, err := repo.FindByEmail(ctx, "  corner@example.COM ")
	require.NoError(t, err)
	assert.Equal(t, "Corner", shop.Name)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}
