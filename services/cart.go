package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"makankart/config"
	appErrors "makankart/errors"
	"makankart/events"
	"makankart/metrics"
	"makankart/models"
	"makankart/storage"
)

// CartStore owns the ordered line items of one session. All mutations
// update memory first, then persist and notify, so UI reads are always
// consistent with the latest mutation even when the adapter fails.
type CartStore struct {
	cartID  string
	items   []models.CartLineItem
	qtyCap  int
	adapter storage.Adapter
	bus     *events.Bus
}

// NewCartStore restores the persisted cart for cartID, or starts a new
// session cart when cartID is empty. A failed or corrupt restore starts
// empty rather than blocking the session.
func NewCartStore(ctx context.Context, cfg *config.Config, adapter storage.Adapter, bus *events.Bus) (*CartStore, error) {
	return NewCartStoreWithID(ctx, cfg, adapter, bus, "")
}

func NewCartStoreWithID(ctx context.Context, cfg *config.Config, adapter storage.Adapter, bus *events.Bus, cartID string) (*CartStore, error) {
	rates, err := cfg.Pricing.Rates()
	if err != nil {
		return nil, err
	}

	store := &CartStore{
		cartID:  cartID,
		qtyCap:  rates.QuantityCap,
		adapter: adapter,
		bus:     bus,
	}

	if store.cartID == "" {
		store.cartID = uuid.NewString()

		return store, nil
	}

	items, err := adapter.LoadCart(ctx, store.cartID)
	if err != nil {
		slog.Error("failed to restore cart, starting empty",
			slog.String("cart_id", store.cartID),
			slog.String("error", err.Error()),
		)
		metrics.PersistenceFailure("load_cart")

		return store, nil
	}

	store.items = items

	return store, nil
}

func (s *CartStore) ID() string {
	return s.cartID
}

// Items returns a defensive copy in insertion order.
func (s *CartStore) Items() []models.CartLineItem {
	items := make([]models.CartLineItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item.Clone())
	}

	return items
}

// ItemCount is the sum of quantities, the number a nav badge shows.
func (s *CartStore) ItemCount() int {
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}

	return count
}

// AddItem merges into an existing line for the same product or appends
// a new one capturing the product's discounted price.
func (s *CartStore) AddItem(ctx context.Context, product models.Product, quantity int) error {
	return s.AddItemWithCustomization(ctx, product, quantity, nil)
}

// AddItemWithCustomization is AddItem for lines configured on the
// product page. When the product is already in the cart only the
// quantity grows; the first add's customization is kept.
func (s *CartStore) AddItemWithCustomization(ctx context.Context, product models.Product, quantity int, custom *models.Customization) error {
	if quantity < 1 {
		quantity = 1
	}

	if idx := s.indexOf(product.ID); idx >= 0 {
		s.items[idx].Quantity = s.clampQuantity(s.items[idx].Quantity + quantity)

		return s.persistAndNotify(ctx, "add_item")
	}

	item := models.CartLineItem{
		ProductID:     product.ID,
		Name:          product.Name,
		UnitPrice:     product.EffectivePrice(),
		Quantity:      s.clampQuantity(quantity),
		Customization: custom,
	}

	s.items = append(s.items, item.Clone())

	return s.persistAndNotify(ctx, "add_item")
}

// UpdateQuantity sets a line's quantity, clamped to at least 1.
// Removing a line is only ever done through RemoveItem.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	idx := s.indexOf(productID)
	if idx < 0 {
		return appErrors.NotFoundError(appErrors.CodeItemNotFound, "Item not found in the cart")
	}

	s.items[idx].Quantity = s.clampQuantity(quantity)

	return s.persistAndNotify(ctx, "update_quantity")
}

// RemoveItem deletes the line if present; a repeat call is a no-op.
func (s *CartStore) RemoveItem(ctx context.Context, productID int64) error {
	idx := s.indexOf(productID)
	if idx < 0 {
		return nil
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)

	return s.persistAndNotify(ctx, "remove_item")
}

// Clear empties the cart unconditionally.
func (s *CartStore) Clear(ctx context.Context) error {
	s.items = nil

	return s.persistAndNotify(ctx, "clear")
}

// Reload replaces the in-memory items with the persisted state. This is
// the storage-change path: another tab wrote the cart, so re-read in
// full, never merge.
func (s *CartStore) Reload(ctx context.Context) error {
	items, err := s.adapter.LoadCart(ctx, s.cartID)
	if err != nil {
		metrics.PersistenceFailure("reload")

		return appErrors.PersistenceError("Failed to reload cart").WithError(err)
	}

	s.items = items
	s.notify()

	return nil
}

func (s *CartStore) indexOf(productID int64) int {
	for i, item := range s.items {
		if item.ProductID == productID {
			return i
		}
	}

	return -1
}

func (s *CartStore) clampQuantity(quantity int) int {
	if quantity < 1 {
		return 1
	}

	if s.qtyCap > 0 && quantity > s.qtyCap {
		return s.qtyCap
	}

	return quantity
}

// persistAndNotify writes the mutated cart through the adapter and
// publishes the change. The in-memory state is already updated and is
// not rolled back on a write failure.
func (s *CartStore) persistAndNotify(ctx context.Context, op string) error {
	metrics.CartMutation(op)

	err := s.adapter.SaveCart(ctx, s.cartID, s.items)

	// Listeners follow the in-memory state, which is already mutated,
	// so the notification goes out even when the write failed.
	s.notify()

	if err != nil {
		slog.Error("failed to persist cart",
			slog.String("cart_id", s.cartID),
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		metrics.PersistenceFailure(op)

		return appErrors.PersistenceError("Failed to persist cart").WithError(err)
	}

	return nil
}

func (s *CartStore) notify() {
	if s.bus == nil {
		return
	}

	s.bus.PublishCartChanged(events.CartChanged{
		ItemCount: s.ItemCount(),
		Items:     s.Items(),
	})
}

// Snapshot freezes the current items with a timestamp for display and
// order assembly.
func (s *CartStore) Snapshot() models.Cart {
	id, err := uuid.Parse(s.cartID)
	if err != nil {
		id = uuid.Nil
	}

	return models.Cart{
		ID:        id,
		Items:     s.Items(),
		UpdatedAt: time.Now(),
	}
}
