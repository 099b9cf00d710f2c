package models

import "time"

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
)

type ServiceMethod string

const (
	ServiceMethodDineIn   ServiceMethod = "dine_in"
	ServiceMethodPickup   ServiceMethod = "pickup"
	ServiceMethodDelivery ServiceMethod = "delivery"
)

type Address struct {
	Line1      string `json:"line1" validate:"required"`
	City       string `json:"city" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
}

// ServiceDetails carries the fields a checkout needs for the chosen
// service method. Which fields are required depends on the method.
type ServiceDetails struct {
	Method      ServiceMethod `json:"method" validate:"required,oneof=dine_in pickup delivery"`
	TableNumber string        `json:"table_number,omitempty" validate:"required_if=Method dine_in"`
	Phone       string        `json:"phone,omitempty" validate:"required_if=Method pickup,required_if=Method delivery"`
	Address     *Address      `json:"address,omitempty" validate:"required_if=Method delivery"`
}

// Order is an immutable snapshot taken at checkout. Line items, totals
// and the promo descriptor are deep copies so later cart mutation can
// never alter a placed order. There is no update or delete path.
type Order struct {
	ID          string           `json:"id"`
	UserID      string           `json:"user_id"`
	Items       []CartLineItem   `json:"items"`
	Totals      CartTotals       `json:"totals"`
	Service     ServiceDetails   `json:"service"`
	Promo       *PromoDescriptor `json:"promo,omitempty"`
	BulkApplied bool             `json:"bulk_applied"`
	Status      OrderStatus      `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}
