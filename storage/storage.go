package storage

import (
	"context"

	"makankart/models"
)

// Adapter abstracts the key-value/document store behind the cart and
// order history. The engine never assumes a particular backend; the
// in-memory state stays authoritative for the session even when an
// adapter call fails.
type Adapter interface {
	LoadCart(ctx context.Context, cartID string) ([]models.CartLineItem, error)
	SaveCart(ctx context.Context, cartID string, items []models.CartLineItem) error
	LoadOrderHistory(ctx context.Context, userID string) ([]models.Order, error)
	AppendOrder(ctx context.Context, order models.Order) error
}

func CartKey(cartID string) string {
	return "cart:" + cartID
}

func OrdersKey(userID string) string {
	return "orders:" + userID
}
