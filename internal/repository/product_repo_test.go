package repository

import (
	"context"
	"testing"
	"time"

	"sales-service/internal/model"
	"sales-service/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productIDs(products []model.Product) []uint {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestProductRepo_InsertGetRoundTrip(t *testing.T) {
	repo := NewProductRepo(testutil.NewDB(t))
	ctx := context.Background()
	description := "Wireless"

	product := &model.Product{Name: "Mouse", Description: &description, Price: decimal.RequireFromString("19.99")}
	require.NoError(t, repo.Insert(ctx, product))
	require.NotZero(t, product.ID)

	got, err := repo.Get(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)
	assert.Equal(t, "Mouse", got.Name)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Wireless", *got.Description)
	assert.True(t, product.Price.Equal(got.Price), "price %s != %s", product.Price, got.Price)
}

func TestProductRepo_ReplaceClearsDescription(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()
	existing := testutil.CreateProduct(t, db, "Desk", "150.00", "Oak")

	require.NoError(t, repo.Replace(ctx, existing.ID, &model.Product{Name: "Desk", Price: decimal.RequireFromString("120.50")}))

	got, err := repo.Get(ctx, existing.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Description)
	assert.True(t, decimal.RequireFromString("120.50").Equal(got.Price))
}

func TestProductRepo_DeleteRestrictedByOrderLines(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	client := testutil.CreateClient(t, db, "Ana", "ana@example.com")
	used := testutil.CreateProduct(t, db, "Used", "10.00", "")
	unused := testutil.CreateProduct(t, db, "Unused", "10.00", "")
	order := testutil.CreateOrder(t, db, client.ID, testutil.Date(2025, time.February, 1))
	testutil.CreateOrderDetail(t, db, order.ID, used.ID, 1)

	assert.ErrorIs(t, repo.Delete(ctx, used.ID), ErrReferenced)
	require.NoError(t, repo.Delete(ctx, unused.ID))
	assert.ErrorIs(t, repo.Delete(ctx, unused.ID), ErrNotFound)
	testutil.AssertRowCount(t, db, "products", 1)
}

func TestProductRepo_PricedAboveIsStrict(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProductRepo(db)

	testutil.CreateProduct(t, db, "Exactly", "20.00", "")
	above := testutil.CreateProduct(t, db, "Above", "20.01", "")
	testutil.CreateProduct(t, db, "Below", "19.99", "")
	far := testutil.CreateProduct(t, db, "Far", "300.00", "")

	got, err := repo.PricedAbove(context.Background(), decimal.NewFromInt(20))
	require.NoError(t, err)
	assert.Equal(t, []uint{above.ID, far.ID}, productIDs(got))
}

func TestProductRepo_MostExpensive(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	_, err := repo.MostExpensive(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	testutil.CreateProduct(t, db, "Cheap", "5.00", "")
	first := testutil.CreateProduct(t, db, "Gold", "99.90", "")
	testutil.CreateProduct(t, db, "Gold Twin", "99.90", "")

	got, err := repo.MostExpensive(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID, "ties resolve to the lowest id")
}

func TestProductRepo_PriceStats(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()

	stats, err := repo.PriceStats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.ProductCount)
	assert.True(t, stats.AveragePrice.IsZero())

	testutil.CreateProduct(t, db, "A", "10.00", "")
	testutil.CreateProduct(t, db, "B", "20.50", "")

	stats, err = repo.PriceStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.ProductCount)
	assert.True(t, decimal.RequireFromString("15.25").Equal(stats.AveragePrice), "average %s", stats.AveragePrice)
}

func TestProductRepo_WithoutDescription(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewProductRepo(db)
	ctx := context.Background()
	empty := ""

	null := testutil.CreateProduct(t, db, "Null", "1.00", "")
	blank := &model.Product{Name: "Blank", Description: &empty, Price: decimal.NewFromInt(1)}
	require.NoError(t, repo.Insert(ctx, blank))
	testutil.CreateProduct(t, db, "Described", "1.00", "Has text")

	got, err := repo.WithoutDescription(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{null.ID, blank.ID}, productIDs(got))
}
