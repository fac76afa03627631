package domain

import "github.com/shopspring/decimal"

// FreeLabel is shown instead of a zero price.
const FreeLabel = "Free"

// PriceLabel formats a price for display. Zero is always "Free".
func PriceLabel(price decimal.Decimal, symbol string) string {
	if price.IsZero() {
		return FreeLabel
	}
	return symbol + price.String()
}
