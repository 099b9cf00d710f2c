package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"makankart/config"
	"makankart/models"
)

// RedisAdapter persists the cart as one JSON blob per session and the
// order history as a list per user, mirroring how a browser front end
// keeps them in localStorage/IndexedDB.
type RedisAdapter struct {
	client redis.UniversalClient
}

func NewRedisAdapter(client redis.UniversalClient) *RedisAdapter {
	return &RedisAdapter{client: client}
}

// NewRedisAdapterFromConfig dials redis using the connection section of
// the engine config.
func NewRedisAdapterFromConfig(cfg *config.RedisConnect) *RedisAdapter {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) LoadCart(ctx context.Context, cartID string) ([]models.CartLineItem, error) {
	data, err := r.client.Get(ctx, CartKey(cartID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get cart %s from redis: %w", cartID, err)
	}

	var items []models.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart %s: %w", cartID, err)
	}

	return items, nil
}

func (r *RedisAdapter) SaveCart(ctx context.Context, cartID string, items []models.CartLineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart %s: %w", cartID, err)
	}

	// TTL 0: the cart survives until cleared, like a localStorage entry.
	if err := r.client.Set(ctx, CartKey(cartID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set cart %s in redis: %w", cartID, err)
	}

	return nil
}

func (r *RedisAdapter) LoadOrderHistory(ctx context.Context, userID string) ([]models.Order, error) {
	raw, err := r.client.LRange(ctx, OrdersKey(userID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read order history for %s: %w", userID, err)
	}

	orders := make([]models.Order, 0, len(raw))

	for _, entry := range raw {
		var order models.Order
		if err := json.Unmarshal([]byte(entry), &order); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order for %s: %w", userID, err)
		}

		orders = append(orders, order)
	}

	return orders, nil
}

func (r *RedisAdapter) AppendOrder(ctx context.Context, order models.Order) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order %s: %w", order.ID, err)
	}

	if err := r.client.RPush(ctx, OrdersKey(order.UserID), data).Err(); err != nil {
		return fmt.Errorf("failed to append order %s in redis: %w", order.ID, err)
	}

	return nil
}

func (r *RedisAdapter) Close() error {
	return r.client.Close()
}
