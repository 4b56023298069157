// Package pricing computes GST and state-based shipping for storefront orders.
//
// All amounts are in the store's base currency (INR) and use decimal
// arithmetic. The functions are pure.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// TaxRate is the flat GST rate applied to every order subtotal.
	TaxRate = decimal.RequireFromString("0.18")

	// FreeShippingThreshold is the subtotal from which shipping is free.
	FreeShippingThreshold = decimal.NewFromInt(500)

	// DefaultShipping applies to states missing from the rate table.
	DefaultShipping = decimal.NewFromInt(60)
)

// shippingRates is keyed by lower-cased state name.
var shippingRates = map[string]decimal.Decimal{
	"maharashtra": decimal.NewFromInt(40),
	"karnataka":   decimal.NewFromInt(40),
	"tamil nadu":  decimal.NewFromInt(50),
	"delhi":       decimal.NewFromInt(45),
	"gujarat":     decimal.NewFromInt(45),
}

// CalculateTax returns subtotal × 18% rounded to 2 decimal places.
func CalculateTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate).Round(2)
}

// CalculateShipping returns the shipping cost for a subtotal delivered to
// the given state. Orders at or above FreeShippingThreshold ship free.
func CalculateShipping(subtotal decimal.Decimal, state string) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(FreeShippingThreshold) {
		return decimal.Zero
	}
	if rate, ok := shippingRates[strings.ToLower(strings.TrimSpace(state))]; ok {
		return rate
	}
	return DefaultShipping
}

// Breakdown is the full price composition of an order.
type Breakdown struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Total    decimal.Decimal
}

// Gross returns subtotal + tax + shipping, the amount a coupon is
// validated against.
func (b Breakdown) Gross() decimal.Decimal {
	return b.Subtotal.Add(b.Tax).Add(b.Shipping)
}

// Quote computes tax and shipping for subtotal without any discount.
func Quote(subtotal decimal.Decimal, state string) Breakdown {
	b := Breakdown{
		Subtotal: subtotal,
		Tax:      CalculateTax(subtotal),
		Shipping: CalculateShipping(subtotal, state),
		Discount: decimal.Zero,
	}
	b.Total = b.Gross()
	return b
}

// WithDiscount returns a copy of b with the discount applied. The discount
// is floored at zero and capped at the gross amount so the total never goes
// negative.
func (b Breakdown) WithDiscount(discount decimal.Decimal) Breakdown {
	gross := b.Gross()
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(gross) {
		discount = gross
	}
	b.Discount = discount.Round(2)
	b.Total = gross.Sub(b.Discount)
	return b
}
