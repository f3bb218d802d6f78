package repository

import (
	"context"
	"testing"
	"time"

	"sales-service/internal/model"
	"sales-service/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderDetailRepo_CRUD(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderDetailRepo(db)
	ctx := context.Background()
	d := testutil.SeedDataset(t, db)

	detail := &model.OrderDetail{OrderID: d.EmptyOrder.ID, ProductID: d.Cable.ID, Quantity: 7}
	require.NoError(t, repo.Insert(ctx, detail))

	got, err := repo.Get(ctx, detail.ID)
	require.NoError(t, err)
	assert.Equal(t, *detail, *got)

	require.NoError(t, repo.Replace(ctx, detail.ID, &model.OrderDetail{OrderID: d.EmptyOrder.ID, ProductID: d.Mouse.ID, Quantity: 1}))
	got, err = repo.Get(ctx, detail.ID)
	require.NoError(t, err)
	assert.Equal(t, d.Mouse.ID, got.ProductID)
	assert.Equal(t, 1, got.Quantity)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	require.NoError(t, repo.Delete(ctx, detail.ID))
	assert.ErrorIs(t, repo.Delete(ctx, detail.ID), ErrNotFound)
}

func TestOrderDetailRepo_InsertRequiresReferences(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderDetailRepo(db)
	ctx := context.Background()
	d := testutil.SeedDataset(t, db)

	err := repo.Insert(ctx, &model.OrderDetail{OrderID: 999, ProductID: d.Mouse.ID, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "order 999")

	err = repo.Insert(ctx, &model.OrderDetail{OrderID: d.Order1.ID, ProductID: 999, Quantity: 1})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "product 999")

	testutil.AssertRowCount(t, db, "order_details", 4)
}

func TestOrderDetailRepo_ForOrder(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderDetailRepo(db)
	ctx := context.Background()
	d := testutil.SeedDataset(t, db)

	items, err := repo.ForOrder(ctx, d.Order1.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.LineItem{
		{ProductID: d.Mouse.ID, ProductName: "Mouse", Quantity: 2},
		{ProductID: d.Cable.ID, ProductName: "Cable", Quantity: 1},
	}, items)

	items, err = repo.ForOrder(ctx, d.EmptyOrder.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderDetailRepo_ForAllOrders(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderDetailRepo(db)
	d := testutil.SeedDataset(t, db)

	items, err := repo.ForAllOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, d.Order1.ID, items[0].OrderID)
	assert.Equal(t, "Mouse", items[0].ProductName)
	assert.Equal(t, d.Order3.ID, items[3].OrderID)
	assert.Equal(t, "Keyboard", items[3].ProductName)
	assert.Equal(t, 4, items[3].Quantity)
}

func TestOrderDetailRepo_TotalQuantity(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderDetailRepo(db)
	ctx := context.Background()
	d := testutil.SeedDataset(t, db)

	total, err := repo.TotalQuantity(ctx, d.Order1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	total, err = repo.TotalQuantity(ctx, d.EmptyOrder.ID)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestOrderDetailRepo_ProductsForClient(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderDetailRepo(db)
	ctx := context.Background()
	d := testutil.SeedDataset(t, db)

	names, err := repo.ProductNamesForClient(ctx, d.Ana.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Cable", "Mouse"}, names, "mouse bought in two orders appears once")

	totals, err := repo.ProductTotalsForClient(ctx, d.Ana.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.ProductQuantity{
		{ProductID: d.Mouse.ID, ProductName: "Mouse", TotalQuantity: 5},
		{ProductID: d.Cable.ID, ProductName: "Cable", TotalQuantity: 1},
	}, totals)

	names, err = repo.ProductNamesForClient(ctx, d.Carla.ID)
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestOrderDetailRepo_ProductTotalsTieBreakByName(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderDetailRepo(db)

	client := testutil.CreateClient(t, db, "Tie", "tie@example.com")
	zeta := testutil.CreateProduct(t, db, "Zeta", "1.00", "")
	alpha := testutil.CreateProduct(t, db, "Alpha", "1.00", "")
	order := testutil.CreateOrder(t, db, client.ID, testutil.Date(2025, time.July, 1))
	testutil.CreateOrderDetail(t, db, order.ID, zeta.ID, 2)
	testutil.CreateOrderDetail(t, db, order.ID, alpha.ID, 2)

	totals, err := repo.ProductTotalsForClient(context.Background(), client.ID)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "Alpha", totals[0].ProductName)
	assert.Equal(t, "Zeta", totals[1].ProductName)
}

func TestOrderDetailRepo_Buyers(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderDetailRepo(db)
	ctx := context.Background()
	d := testutil.SeedDataset(t, db)

	// Carla buys one mouse so the product has two buyers
	carlaOrder := testutil.CreateOrder(t, db, d.Carla.ID, testutil.Date(2025, time.August, 1))
	testutil.CreateOrderDetail(t, db, carlaOrder.ID, d.Mouse.ID, 1)

	buyers, err := repo.BuyersOfProduct(ctx, d.Mouse.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.Buyer{
		{ID: d.Ana.ID, Name: "Ana Torres", Email: "ana@example.com"},
		{ID: d.Carla.ID, Name: "carla ruiz", Email: "carla@example.com"},
	}, buyers, "Ana bought the mouse in two orders and is listed once")

	totals, err := repo.BuyerTotalsForProduct(ctx, d.Mouse.ID)
	require.NoError(t, err)
	assert.Equal(t, []model.BuyerQuantity{
		{ID: d.Ana.ID, Name: "Ana Torres", Email: "ana@example.com", TotalQuantity: 5},
		{ID: d.Carla.ID, Name: "carla ruiz", Email: "carla@example.com", TotalQuantity: 1},
	}, totals)

	unsold := testutil.CreateProduct(t, db, "Unsold", "3.00", "")
	buyers, err = repo.BuyersOfProduct(ctx, unsold.ID)
	require.NoError(t, err)
	assert.Empty(t, buyers)
}
