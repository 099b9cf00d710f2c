package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makankart/models"
	"makankart/storage"
)

func sampleItems() []models.CartLineItem {
	return []models.CartLineItem{
		{
			ProductID: 1,
			Name:      "Nasi Lemak",
			UnitPrice: decimal.NewFromInt(10),
			Quantity:  2,
			Customization: &models.Customization{
				RemovedIngredients: []string{"sambal"},
			},
		},
	}
}

func TestMemoryAdapterCartRoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewMemoryAdapter()

	loaded, err := adapter.LoadCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Empty(t, loaded, "unknown cart loads empty")

	require.NoError(t, adapter.SaveCart(ctx, "cart-1", sampleItems()))

	loaded, err = adapter.LoadCart(ctx, "cart-1")
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Nasi Lemak", loaded[0].Name)
}

func TestMemoryAdapterIsolatesCallers(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewMemoryAdapter()

	items := sampleItems()
	require.NoError(t, adapter.SaveCart(ctx, "cart-1", items))

	// Mutating what we saved or loaded must not leak into the store.
	items[0].Quantity = 99
	items[0].Customization.RemovedIngredients[0] = "nothing"

	loaded, err := adapter.LoadCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded[0].Quantity)
	assert.Equal(t, []string{"sambal"}, loaded[0].Customization.RemovedIngredients)

	loaded[0].Quantity = 42

	again, err := adapter.LoadCart(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, 2, again[0].Quantity)
}

func TestMemoryAdapterOrderHistory(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewMemoryAdapter()

	history, err := adapter.LoadOrderHistory(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, history)

	order := models.Order{
		ID:        "1001",
		UserID:    "user-1",
		Items:     sampleItems(),
		Status:    models.OrderStatusProcessing,
		CreatedAt: time.Now(),
	}
	require.NoError(t, adapter.AppendOrder(ctx, order))
	require.NoError(t, adapter.AppendOrder(ctx, models.Order{ID: "1002", UserID: "user-1"}))

	history, err = adapter.LoadOrderHistory(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "1001", history[0].ID)
	assert.Equal(t, "1002", history[1].ID)

	other, err := adapter.LoadOrderHistory(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}
