package service

import (
	"strings"

	"github.com/shopspring/decimal"

	appErrors "makankart/errors"
	"makankart/models"
)

// PromoResolver validates user-entered codes against a static table and
// tracks the at-most-one active descriptor for the session. Applying a
// valid code while one is active replaces it; a rejected code leaves
// the active descriptor untouched.
type PromoResolver struct {
	codes  map[string]models.PromoDescriptor
	active *models.PromoDescriptor
}

// NewPromoResolver builds a resolver over the built-in code table.
func NewPromoResolver() *PromoResolver {
	return NewPromoResolverWithTable([]models.PromoDescriptor{
		{Code: "SAVE10", Description: "10% off your order", Rate: decimal.NewFromFloat(0.10)},
		{Code: "WELCOME15", Description: "15% off for new customers", Rate: decimal.NewFromFloat(0.15)},
		{Code: "MAKAN5", Description: "RM 5 off your order", Amount: decimal.NewFromInt(5)},
	})
}

func NewPromoResolverWithTable(table []models.PromoDescriptor) *PromoResolver {
	codes := make(map[string]models.PromoDescriptor, len(table))
	for _, descriptor := range table {
		codes[normalizeCode(descriptor.Code)] = descriptor
	}

	return &PromoResolver{codes: codes}
}

// Apply resolves a code and makes it the active descriptor.
func (r *PromoResolver) Apply(code string) (*models.PromoDescriptor, error) {
	normalized := normalizeCode(code)
	if normalized == "" {
		return nil, appErrors.ValidationError(appErrors.CodeEmptyCode, "No promo code provided")
	}

	descriptor, ok := r.codes[normalized]
	if !ok {
		return nil, appErrors.NotFoundError(appErrors.CodeInvalidCode, "Promo code is not valid")
	}

	r.active = &descriptor

	return r.Active(), nil
}

// Remove clears the active descriptor.
func (r *PromoResolver) Remove() {
	r.active = nil
}

// Active returns a copy of the active descriptor, or nil.
func (r *PromoResolver) Active() *models.PromoDescriptor {
	if r.active == nil {
		return nil
	}

	descriptor := *r.active

	return &descriptor
}

// DiscountState is the resolver's contribution to a pricing quote.
func (r *PromoResolver) DiscountState() models.DiscountState {
	return models.DiscountState{Promo: r.Active()}
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
