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

func TestOrderRepo_InsertGetRoundTrip(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderRepo(db)
	ctx := context.Background()
	client := testutil.CreateClient(t, db, "Ana", "ana@example.com")

	placed := time.Date(2025, time.May, 3, 14, 30, 0, 0, time.UTC)
	order := &model.Order{ClientID: client.ID, OrderDate: placed}
	require.NoError(t, repo.Insert(ctx, order))
	require.NotZero(t, order.ID)

	got, err := repo.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, client.ID, got.ClientID)
	assert.True(t, placed.Equal(got.OrderDate), "order date %s != %s", got.OrderDate, placed)
}

func TestOrderRepo_InsertRequiresClient(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderRepo(db)

	err := repo.Insert(context.Background(), &model.Order{ClientID: 77, OrderDate: time.Now().UTC()})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "client 77")
	testutil.AssertRowCount(t, db, "orders", 0)
}

func TestOrderRepo_Replace(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderRepo(db)
	ctx := context.Background()
	ana := testutil.CreateClient(t, db, "Ana", "ana@example.com")
	bruno := testutil.CreateClient(t, db, "Bruno", "bruno@example.com")
	order := testutil.CreateOrder(t, db, ana.ID, testutil.Date(2025, time.January, 1))

	moved := testutil.Date(2025, time.February, 2)
	require.NoError(t, repo.Replace(ctx, order.ID, &model.Order{ClientID: bruno.ID, OrderDate: moved}))

	got, err := repo.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, bruno.ID, got.ClientID)
	assert.True(t, moved.Equal(got.OrderDate))

	err = repo.Replace(ctx, order.ID, &model.Order{ClientID: 999, OrderDate: moved})
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Replace(ctx, order.ID+1, &model.Order{ClientID: ana.ID, OrderDate: moved})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderRepo_DeleteCascadesLineItems(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderRepo(db)
	ctx := context.Background()
	d := testutil.SeedDataset(t, db)

	require.NoError(t, repo.Delete(ctx, d.Order1.ID))

	testutil.AssertRowCount(t, db, "orders", 3)
	testutil.AssertRowCount(t, db, "order_details", 2)
	assert.ErrorIs(t, repo.Delete(ctx, d.Order1.ID), ErrNotFound)
}

func TestOrderRepo_AfterIsStrict(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderRepo(db)
	d := testutil.SeedDataset(t, db)

	got, err := repo.After(context.Background(), testutil.Date(2025, time.May, 1))
	require.NoError(t, err)

	ids := make([]uint, 0, len(got))
	for _, o := range got {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []uint{d.Order3.ID, d.EmptyOrder.ID}, ids, "an order placed exactly at the bound is excluded")
}

func TestOrderRepo_ListWithClients(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewOrderRepo(db)
	d := testutil.SeedDataset(t, db)

	rows, err := repo.ListWithClients(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, d.Order1.ID, rows[0].OrderID)
	assert.Equal(t, d.Ana.ID, rows[0].ClientID)
	assert.Equal(t, "Ana Torres", rows[0].Name)
	assert.Equal(t, "ana@example.com", rows[0].Email)
	assert.True(t, d.Order1.OrderDate.Equal(rows[0].OrderDate))
	assert.Equal(t, d.Bruno.ID, rows[3].ClientID)
}
