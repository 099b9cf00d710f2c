package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makankart/models"
	"makankart/storage"
)

func setupRedis(t *testing.T) (*storage.RedisAdapter, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	return storage.NewRedisAdapter(client), mock
}

func TestRedisLoadCart(t *testing.T) {
	ctx := context.Background()
	items := sampleItems()
	jsonData, err := json.Marshal(items)
	require.NoError(t, err)

	t.Run("Success - Cart Found", func(t *testing.T) {
		// Arrange
		adapter, mock := setupRedis(t)
		mock.ExpectGet(storage.CartKey("cart-1")).SetVal(string(jsonData))

		// Act
		loaded, err := adapter.LoadCart(ctx, "cart-1")

		// Assert
		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, items[0].Name, loaded[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Missing Key Loads Empty", func(t *testing.T) {
		// Arrange
		adapter, mock := setupRedis(t)
		mock.ExpectGet(storage.CartKey("cart-1")).RedisNil()

		// Act
		loaded, err := adapter.LoadCart(ctx, "cart-1")

		// Assert
		require.NoError(t, err)
		assert.Nil(t, loaded)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		adapter, mock := setupRedis(t)
		mock.ExpectGet(storage.CartKey("cart-1")).SetErr(errors.New("connection refused"))

		// Act
		loaded, err := adapter.LoadCart(ctx, "cart-1")

		// Assert
		assert.Error(t, err)
		assert.Nil(t, loaded)
	})

	t.Run("Failure - Corrupt Payload", func(t *testing.T) {
		// Arrange
		adapter, mock := setupRedis(t)
		mock.ExpectGet(storage.CartKey("cart-1")).SetVal("{not json")

		// Act
		_, err := adapter.LoadCart(ctx, "cart-1")

		// Assert
		assert.Error(t, err)
	})
}

func TestRedisSaveCart(t *testing.T) {
	ctx := context.Background()
	items := sampleItems()
	jsonData, err := json.Marshal(items)
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		adapter, mock := setupRedis(t)
		mock.ExpectSet(storage.CartKey("cart-1"), jsonData, 0).SetVal("OK")

		// Act
		err := adapter.SaveCart(ctx, "cart-1", items)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		adapter, mock := setupRedis(t)
		mock.ExpectSet(storage.CartKey("cart-1"), jsonData, 0).SetErr(errors.New("connection refused"))

		// Act
		err := adapter.SaveCart(ctx, "cart-1", items)

		// Assert
		assert.Error(t, err)
	})
}

func TestRedisOrderHistory(t *testing.T) {
	ctx := context.Background()
	order := models.Order{ID: "1001", UserID: "user-1", Status: models.OrderStatusProcessing}
	jsonData, err := json.Marshal(order)
	require.NoError(t, err)

	t.Run("Append Then Load", func(t *testing.T) {
		// Arrange
		adapter, mock := setupRedis(t)
		mock.ExpectRPush(storage.OrdersKey("user-1"), jsonData).SetVal(1)
		mock.ExpectLRange(storage.OrdersKey("user-1"), 0, -1).SetVal([]string{string(jsonData)})

		// Act
		appendErr := adapter.AppendOrder(ctx, order)
		history, loadErr := adapter.LoadOrderHistory(ctx, "user-1")

		// Assert
		require.NoError(t, appendErr)
		require.NoError(t, loadErr)
		require.Len(t, history, 1)
		assert.Equal(t, "1001", history[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Append Error", func(t *testing.T) {
		// Arrange
		adapter, mock := setupRedis(t)
		mock.ExpectRPush(storage.OrdersKey("user-1"), jsonData).SetErr(errors.New("connection refused"))

		// Act
		err := adapter.AppendOrder(ctx, order)

		// Assert
		assert.Error(t, err)
	})
}
