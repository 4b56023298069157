package coupon

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Discount computes the discount c grants on amount. Percentage discounts are
// capped by MaximumDiscountAmount when set, and every discount is capped at
// amount itself and rounded to 2 decimal places.
func Discount(c *Coupon, amount decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		d = amount.Mul(c.Value).Div(hundred)
		if c.MaximumDiscountAmount != nil && d.GreaterThan(*c.MaximumDiscountAmount) {
			d = *c.MaximumDiscountAmount
		}
	case DiscountFixedAmount:
		d = c.Value
	default:
		return decimal.Zero
	}

	if d.GreaterThan(amount) {
		d = amount
	}
	return floorAtZero(d).Round(2)
}

// floorAtZero clamps negative values to zero.
func floorAtZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
