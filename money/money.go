// Package money is the presentation boundary for amounts and dates.
// Internal pricing keeps full precision; the single rounding site is
// here.
package money

import (
	"time"

	"github.com/shopspring/decimal"
)

const symbol = "RM"

const dateLayout = "02 Jan 2006, 3:04 PM"

// FormatAmount renders an amount as "RM 12.50", rounding half-up to two
// decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return symbol + " " + amount.Round(2).StringFixed(2)
}

// Round2 rounds an amount the same way FormatAmount displays it, for
// callers that need the displayed number rather than the string.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// FormatDate renders an order timestamp for receipts and history rows.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
