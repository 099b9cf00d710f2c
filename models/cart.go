package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Customization captures per-line tweaks made on the product page.
type Customization struct {
	RemovedIngredients []string `json:"removed_ingredients,omitempty"`
	Extras             []Extra  `json:"extras,omitempty"`
	Instructions       string   `json:"instructions,omitempty"`
}

// CartLineItem is one product entry in the cart, uniquely keyed by
// product id. UnitPrice is the discounted price captured when the item
// was added, not the catalogue price.
type CartLineItem struct {
	ProductID     int64           `json:"product_id"`
	Name          string          `json:"name"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	Customization *Customization  `json:"customization,omitempty"`
}

// ExtrasTotal sums the per-unit price of the line's added extras.
func (i CartLineItem) ExtrasTotal() decimal.Decimal {
	total := decimal.Zero

	if i.Customization == nil {
		return total
	}

	for _, extra := range i.Customization.Extras {
		total = total.Add(extra.Price)
	}

	return total
}

// LineTotal is (unit price + extras) x quantity.
func (i CartLineItem) LineTotal() decimal.Decimal {
	perUnit := i.UnitPrice.Add(i.ExtrasTotal())

	return perUnit.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Clone deep-copies the line so order snapshots cannot be altered by
// later cart mutation.
func (i CartLineItem) Clone() CartLineItem {
	clone := i

	if i.Customization != nil {
		custom := Customization{
			Instructions: i.Customization.Instructions,
		}
		custom.RemovedIngredients = append([]string(nil), i.Customization.RemovedIngredients...)
		custom.Extras = append([]Extra(nil), i.Customization.Extras...)
		clone.Customization = &custom
	}

	return clone
}

// Cart is the ordered collection of line items for one session.
// Insertion order matters for display only, never for pricing.
type Cart struct {
	ID        uuid.UUID      `json:"id"`
	Items     []CartLineItem `json:"items"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// DiscountState is the session-scoped discount context fed to the
// pricing engine. The bulk discount is derived per quote and never
// stored here.
type DiscountState struct {
	Promo *PromoDescriptor `json:"promo,omitempty"`
}

// CartTotals is a derived value, recomputed on demand. All amounts keep
// full precision; rounding happens only at the presentation boundary.
type CartTotals struct {
	ItemCount     int             `json:"item_count"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	BulkDiscount  decimal.Decimal `json:"bulk_discount"`
	PromoDiscount decimal.Decimal `json:"promo_discount"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	Tax           decimal.Decimal `json:"tax"`
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	Total         decimal.Decimal `json:"total"`
}
