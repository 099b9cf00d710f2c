package storage

import (
	"context"
	"sync"

	"makankart/models"
)

// MemoryAdapter keeps carts and order history in process memory. It is
// the default backend for embedding and tests. Values are deep-copied
// on the way in and out so callers never share slices with the store.
type MemoryAdapter struct {
	mu     sync.Mutex
	carts  map[string][]models.CartLineItem
	orders map[string][]models.Order
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		carts:  make(map[string][]models.CartLineItem),
		orders: make(map[string][]models.Order),
	}
}

func (m *MemoryAdapter) LoadCart(_ context.Context, cartID string) ([]models.CartLineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return cloneItems(m.carts[cartID]), nil
}

func (m *MemoryAdapter) SaveCart(_ context.Context, cartID string, items []models.CartLineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.carts[cartID] = cloneItems(items)

	return nil
}

func (m *MemoryAdapter) LoadOrderHistory(_ context.Context, userID string) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	orders := make([]models.Order, 0, len(m.orders[userID]))
	for _, order := range m.orders[userID] {
		orders = append(orders, cloneOrder(order))
	}

	return orders, nil
}

func (m *MemoryAdapter) AppendOrder(_ context.Context, order models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders[order.UserID] = append(m.orders[order.UserID], cloneOrder(order))

	return nil
}

func cloneOrder(order models.Order) models.Order {
	order.Items = cloneItems(order.Items)

	if order.Promo != nil {
		promo := *order.Promo
		order.Promo = &promo
	}

	if order.Service.Address != nil {
		address := *order.Service.Address
		order.Service.Address = &address
	}

	return order
}

func cloneItems(items []models.CartLineItem) []models.CartLineItem {
	if items == nil {
		return nil
	}

	clones := make([]models.CartLineItem, 0, len(items))
	for _, item := range items {
		clones = append(clones, item.Clone())
	}

	return clones
}
