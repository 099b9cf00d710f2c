package events

import (
	"github.com/asaskevich/EventBus"
	"github.com/shopspring/decimal"

	"makankart/models"
)

const (
	TopicCartChanged = "cart:changed"
	TopicOrderPlaced = "order:placed"
)

// CartChanged is published after every cart mutation; the nav badge and
// any other listener reads ItemCount without re-querying the store.
type CartChanged struct {
	ItemCount int
	Items     []models.CartLineItem
}

// OrderPlaced is published once an order has been persisted and the
// cart cleared.
type OrderPlaced struct {
	OrderID string
	UserID  string
	Total   decimal.Decimal
}

// Bus is a typed facade over EventBus, replacing ad-hoc DOM-style event
// dispatches with an explicit subscription interface. Publishing is
// synchronous: there is exactly one logical writer per session.
type Bus struct {
	bus EventBus.Bus
}

func NewBus() *Bus {
	return &Bus{bus: EventBus.New()}
}

func (b *Bus) SubscribeCartChanged(fn func(CartChanged)) error {
	return b.bus.Subscribe(TopicCartChanged, fn)
}

func (b *Bus) UnsubscribeCartChanged(fn func(CartChanged)) error {
	return b.bus.Unsubscribe(TopicCartChanged, fn)
}

func (b *Bus) SubscribeOrderPlaced(fn func(OrderPlaced)) error {
	return b.bus.Subscribe(TopicOrderPlaced, fn)
}

func (b *Bus) UnsubscribeOrderPlaced(fn func(OrderPlaced)) error {
	return b.bus.Unsubscribe(TopicOrderPlaced, fn)
}

func (b *Bus) PublishCartChanged(event CartChanged) {
	b.bus.Publish(TopicCartChanged, event)
}

func (b *Bus) PublishOrderPlaced(event OrderPlaced) {
	b.bus.Publish(TopicOrderPlaced, event)
}
