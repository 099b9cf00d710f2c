package models

import "github.com/shopspring/decimal"

// PromoDescriptor is a redeemed promo code. Exactly one of Rate and
// Amount is non-zero: Rate is a fraction of the subtotal (0.10 = 10%),
// Amount is a fixed deduction.
type PromoDescriptor struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// DiscountOn resolves the descriptor against a subtotal, before any
// clamping the pricing engine applies.
func (p PromoDescriptor) DiscountOn(subtotal decimal.Decimal) decimal.Decimal {
	if !p.Rate.IsZero() {
		return subtotal.Mul(p.Rate)
	}

	return p.Amount
}
