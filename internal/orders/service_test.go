package orders

import (
	"context"
	"testing"

	"github.com/angelmondragon/dashboard-backend/pkg/config"
	"github.com/angelmondragon/dashboard-backend/pkg/db"
	"github.com/angelmondragon/dashboard-backend/pkg/db/dbtest"
	"github.com/angelmondragon/dashboard-backend/pkg/db/models"
	"github.com/angelmondragon/dashboard-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/dashboard-backend/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	conn     *gorm.DB
	svc      Service
	customer models.Customer
	tea      models.Product
	lamp     models.Product
}

func setupOrders(t *testing.T) *fixture {
	t.Helper()
	conn := dbtest.Open(t)
	svc, err := NewService(NewRepository(conn), db.NewFromGorm(conn, config.DBDriverSQLite))
	require.NoError(t, err)

	f := &fixture{conn: conn, svc: svc}
	f.customer = models.Customer{Name: "Ana Lopez", Email: "ana@example.com"}
	require.NoError(t, conn.Create(&f.customer).Error)
	f.tea = models.Product{Name: "Tea", Category: "Drinks", Price: decimal.RequireFromString("19.99"), Stock: 10}
	require.NoError(t, conn.Create(&f.tea).Error)
	f.lamp = models.Product{Name: "Lamp", Category: "Home", Price: decimal.RequireFromString("45.50"), Stock: 4}
	require.NoError(t, conn.Create(&f.lamp).Error)
	return f
}

func TestCreateDerivesTotalFromProductPrice(t *testing.T) {
	f := setupOrders(t)
	ctx := context.Background()

	order, err := f.svc.Create(ctx, CreateInput{CustomerID: f.customer.ID, ProductID: f.tea.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, "59.97", order.TotalAmount)
	assert.Equal(t, enums.OrderStatusPending, order.Status)
	require.NotNil(t, order.CustomerName)
	assert.Equal(t, "Ana Lopez", *order.CustomerName)
	require.NotNil(t, order.ProductName)
	assert.Equal(t, "Tea", *order.ProductName)
	require.NotNil(t, order.ProductPrice)
	assert.Equal(t, "19.99", *order.ProductPrice)

	var stored models.Order
	require.NoError(t, f.conn.First(&stored, order.ID).Error)
	assert.True(t, stored.TotalAmount.Equal(decimal.RequireFromString("59.97")))
}

func TestUpdateRecomputesTotalWithEffectiveValues(t *testing.T) {
	f := setupOrders(t)
	ctx := context.Background()

	order, err := f.svc.Create(ctx, CreateInput{CustomerID: f.customer.ID, ProductID: f.tea.ID, Quantity: 3, Status: "processing"})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusProcessing, order.Status)

	quantity := 2
	updated, err := f.svc.Update(ctx, order.ID, UpdateInput{Quantity: &quantity})
	require.NoError(t, err)
	assert.Equal(t, "39.98", updated.TotalAmount, "existing product with new quantity")

	productID := f.lamp.ID
	updated, err = f.svc.Update(ctx, order.ID, UpdateInput{ProductID: &productID})
	require.NoError(t, err)
	assert.Equal(t, "91.00", updated.TotalAmount, "new product with existing quantity")
	assert.Equal(t, "Lamp", *updated.ProductName)

	require.NoError(t, f.conn.Model(&models.Product{}).Where("id = ?", f.lamp.ID).Update("price", decimal.RequireFromString("50.00")).Error)
	status := "completed"
	updated, err = f.svc.Update(ctx, order.ID, UpdateInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, enums.OrderStatusCompleted, updated.Status)
	assert.Equal(t, "100.00", updated.TotalAmount, "total follows the current price on every write")
}

func TestCreateRejectsBadInput(t *testing.T) {
	f := setupOrders(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, CreateInput{CustomerID: f.customer.ID, ProductID: f.tea.ID, Quantity: 0})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = f.svc.Create(ctx, CreateInput{CustomerID: f.customer.ID, ProductID: f.tea.ID, Quantity: 1, Status: "shipped"})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = f.svc.Create(ctx, CreateInput{CustomerID: f.customer.ID, ProductID: 999, Quantity: 1})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
	assert.Equal(t, "product not found", pkgerrors.As(err).Message())

	_, err = f.svc.Create(ctx, CreateInput{CustomerID: 999, ProductID: f.tea.ID, Quantity: 1})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation), "unknown customer violates the foreign key")

	var count int64
	require.NoError(t, f.conn.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestListFiltersByStatus(t *testing.T) {
	f := setupOrders(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, CreateInput{CustomerID: f.customer.ID, ProductID: f.tea.ID, Quantity: 1})
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, CreateInput{CustomerID: f.customer.ID, ProductID: f.lamp.ID, Quantity: 1, Status: "completed"})
	require.NoError(t, err)

	all, err := f.svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	completed, err := f.svc.List(ctx, "completed")
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, second.ID, completed[0].ID)

	_, err = f.svc.List(ctx, "lost")
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))
}

func TestGetUpdateDeleteMissingOrder(t *testing.T) {
	f := setupOrders(t)
	ctx := context.Background()

	_, err := f.svc.Get(ctx, 42)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, "order not found", pkgerrors.As(err).Message())

	quantity := 2
	_, err = f.svc.Update(ctx, 42, UpdateInput{Quantity: &quantity})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))

	assert.True(t, pkgerrors.IsCode(f.svc.Delete(ctx, 42), pkgerrors.CodeNotFound))

	order, err := f.svc.Create(ctx, CreateInput{CustomerID: f.customer.ID, ProductID: f.tea.ID, Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, f.svc.Delete(ctx, order.ID))
}

func TestNewServiceValidatesDeps(t *testing.T) {
	_, err := NewService(nil, nil)
	assert.Error(t, err)
	_, err = NewService(NewRepository(nil), nil)
	assert.Error(t, err)
}
