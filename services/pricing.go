package service

import (
	"github.com/shopspring/decimal"

	"makankart/config"
	"makankart/models"
)

// PricingEngine derives CartTotals from cart contents and discount
// state. It is pure: no stored state beyond the configured rates, so
// quoting twice without a mutation yields identical totals.
//
// Ordering: the service charge is computed on the gross subtotal; tax
// is computed on the subtotal after both discounts. Discounts together
// never exceed the subtotal, and the delivery fee is waived once the
// discounted subtotal reaches the free-delivery threshold.
type PricingEngine struct {
	rates *config.Rates
}

func NewPricingEngine(cfg *config.Config) (*PricingEngine, error) {
	rates, err := cfg.Pricing.Rates()
	if err != nil {
		return nil, err
	}

	return &PricingEngine{rates: rates}, nil
}

func (e *PricingEngine) Quote(items []models.CartLineItem, discount models.DiscountState, method models.ServiceMethod) models.CartTotals {
	totals := models.CartTotals{
		Subtotal:      decimal.Zero,
		BulkDiscount:  decimal.Zero,
		PromoDiscount: decimal.Zero,
		ServiceCharge: decimal.Zero,
		Tax:           decimal.Zero,
		DeliveryFee:   decimal.Zero,
		Total:         decimal.Zero,
	}

	for _, item := range items {
		totals.ItemCount += item.Quantity
		totals.Subtotal = totals.Subtotal.Add(item.LineTotal())
	}

	if totals.Subtotal.IsZero() {
		return totals
	}

	// Bulk discount: recomputed fresh on every quote, applied at most
	// once.
	if totals.Subtotal.GreaterThanOrEqual(e.rates.BulkThreshold) {
		totals.BulkDiscount = totals.Subtotal.Mul(e.rates.BulkRate)
	}

	remaining := totals.Subtotal.Sub(totals.BulkDiscount)

	if discount.Promo != nil {
		promo := discount.Promo.DiscountOn(totals.Subtotal)
		if promo.GreaterThan(remaining) {
			promo = remaining
		}

		totals.PromoDiscount = promo
	}

	discounted := totals.Subtotal.Sub(totals.BulkDiscount).Sub(totals.PromoDiscount)

	totals.ServiceCharge = totals.Subtotal.Mul(e.rates.ServiceChargeRate)
	totals.Tax = discounted.Mul(e.rates.TaxRate)

	if method == models.ServiceMethodDelivery && discounted.LessThan(e.rates.FreeDeliveryThreshold) {
		totals.DeliveryFee = e.rates.DeliveryFee
	}

	totals.Total = discounted.
		Add(totals.ServiceCharge).
		Add(totals.Tax).
		Add(totals.DeliveryFee)

	if totals.Total.IsNegative() {
		totals.Total = decimal.Zero
	}

	return totals
}
