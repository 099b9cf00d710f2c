package models

import "github.com/shopspring/decimal"

// Product is read-only reference data owned by the menu catalogue; the
// cart never mutates it.
type Product struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Price           decimal.Decimal `json:"price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"` // 0-100, zero means no discount
	Image           string          `json:"image,omitempty"`
	Category        string          `json:"category,omitempty"`
	Ingredients     []string        `json:"ingredients,omitempty"`
	Extras          []Extra         `json:"extras,omitempty"`
}

// Extra is an add-on ingredient with its own price.
type Extra struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// EffectivePrice is the unit price a cart line captures at add time: the
// product discount is applied here, once, and the original price is not
// retained on the line.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DiscountPercent.IsZero() {
		return p.Price
	}

	hundred := decimal.NewFromInt(100)
	factor := hundred.Sub(p.DiscountPercent).Div(hundred)

	return p.Price.Mul(factor)
}
