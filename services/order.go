package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/go-playground/validator/v10"

	appErrors "makankart/errors"
	"makankart/events"
	"makankart/metrics"
	"makankart/models"
	"makankart/storage"
)

// UserService is the opaque user-credential collaborator. The assembler
// only ever asks who the current user is.
type UserService interface {
	CurrentUserID(ctx context.Context) (string, bool)
}

// OrderAssembler snapshots the cart and its totals into an immutable
// order, persists it, and only then clears the cart. Losing the order
// record while wrongly clearing the cart is the failure mode this
// ordering exists to prevent.
type OrderAssembler struct {
	cart     *CartStore
	pricing  *PricingEngine
	promos   *PromoResolver
	adapter  storage.Adapter
	users    UserService
	bus      *events.Bus
	node     *snowflake.Node
	validate *validator.Validate
}

func NewOrderAssembler(cart *CartStore, pricing *PricingEngine, promos *PromoResolver, adapter storage.Adapter, users UserService, bus *events.Bus) (*OrderAssembler, error) {
	node, err := snowflake.NewNode(1)
	if err != nil {
		return nil, err
	}

	return &OrderAssembler{
		cart:     cart,
		pricing:  pricing,
		promos:   promos,
		adapter:  adapter,
		users:    users,
		bus:      bus,
		node:     node,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

// PlaceOrder checks out the current cart with the given service
// details.
func (a *OrderAssembler) PlaceOrder(ctx context.Context, details models.ServiceDetails) (*models.Order, error) {
	userID, ok := a.users.CurrentUserID(ctx)
	if !ok {
		return nil, appErrors.UnauthorizedError(appErrors.CodeNotAuthenticated, "Sign in to place an order")
	}

	items := a.cart.Items()
	if len(items) == 0 {
		return nil, appErrors.StateError(appErrors.CodeEmptyCart, "Cannot place an order with an empty cart")
	}

	if err := a.validate.Struct(details); err != nil {
		return nil, appErrors.ValidationError(appErrors.CodeMissingField, "Missing required fields for "+string(details.Method)).WithError(err)
	}

	totals := a.pricing.Quote(items, a.promos.DiscountState(), details.Method)

	order := models.Order{
		ID:          a.node.Generate().String(),
		UserID:      userID,
		Items:       items,
		Totals:      totals,
		Service:     details,
		Promo:       a.promos.Active(),
		BulkApplied: totals.BulkDiscount.IsPositive(),
		Status:      models.OrderStatusProcessing,
		CreatedAt:   time.Now(),
	}

	if err := a.adapter.AppendOrder(ctx, order); err != nil {
		slog.Error("failed to persist order, cart left intact",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
		metrics.PersistenceFailure("append_order")

		return nil, appErrors.PersistenceError("Failed to save the order").WithError(err)
	}

	// The order is durable; clearing the cart may fail without losing
	// anything the session cannot rebuild.
	if err := a.cart.Clear(ctx); err != nil {
		slog.Warn("order placed but cart clear did not persist",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	a.promos.Remove()
	metrics.OrderPlaced()

	if a.bus != nil {
		a.bus.PublishOrderPlaced(events.OrderPlaced{
			OrderID: order.ID,
			UserID:  order.UserID,
			Total:   order.Totals.Total,
		})
	}

	return &order, nil
}

// History reads the persisted orders for a user, newest last.
func (a *OrderAssembler) History(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := a.adapter.LoadOrderHistory(ctx, userID)
	if err != nil {
		return nil, appErrors.PersistenceError("Failed to load order history").WithError(err)
	}

	return orders, nil
}
